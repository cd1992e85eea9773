package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pb-server/models"
)

func newFallbackSelectionService() *SelectionService {
	return NewSelectionService(newFallbackScoreService())
}

func scored(preference float64) *models.ComponentScores {
	return &models.ComponentScores{PreferenceScore: preference}
}

func TestBestFlight_EmptyListReturnsNil(t *testing.T) {
	sel := newFallbackSelectionService()
	assert.Nil(t, sel.BestFlight(nil))
	assert.Nil(t, sel.BestFlight([]models.FlightOption{}))
}

func TestBestFlight_PicksHighestPreference(t *testing.T) {
	sel := newFallbackSelectionService()

	flights := []models.FlightOption{
		{ID: "FL-A", Outbound: models.FlightSegment{DurationMinutes: 480}, PricePerPerson: usd(900)},
		{ID: "FL-B", Outbound: models.FlightSegment{DurationMinutes: 840, Stops: 1}, PricePerPerson: usd(600)},
	}

	best := sel.BestFlight(flights)
	if best == nil {
		t.Fatal("expected a winner")
	}
	assert.Equal(t, "FL-A", best.ID)

	// Argmax property: the winner's preference score dominates the list.
	for _, f := range flights {
		assert.GreaterOrEqual(t, best.Scores.PreferenceScore, f.Scores.PreferenceScore)
	}

	// Determinism: a second run picks the same option.
	assert.Equal(t, best.ID, sel.BestFlight(flights).ID)
}

func TestBestFlight_LazyScoringScoresWholeList(t *testing.T) {
	sel := newFallbackSelectionService()

	flights := []models.FlightOption{
		{ID: "FL-A", Outbound: models.FlightSegment{DurationMinutes: 480}, PricePerPerson: usd(900)},
		{ID: "FL-B", Outbound: models.FlightSegment{DurationMinutes: 600}, PricePerPerson: usd(700)},
	}
	sel.BestFlight(flights)

	for _, f := range flights {
		assert.NotNil(t, f.Scores, "every option must carry scores after selection")
	}
}

func TestBestFlight_AlreadyScoredListNotRescored(t *testing.T) {
	sel := newFallbackSelectionService()

	// Scores are pre-set; selection must trust them, including a legitimate
	// 0.0 on the first element.
	flights := []models.FlightOption{
		{ID: "FL-A", Scores: scored(0.0)},
		{ID: "FL-B", Scores: scored(0.9)},
	}
	best := sel.BestFlight(flights)
	assert.Equal(t, "FL-B", best.ID)
	assert.Equal(t, 0.0, flights[0].Scores.PreferenceScore)
	assert.Equal(t, 0.9, flights[1].Scores.PreferenceScore)
}

func TestBestFlight_PartiallyScoredListScoresOnlyMissing(t *testing.T) {
	sel := newFallbackSelectionService()

	flights := []models.FlightOption{
		{ID: "FL-A", Outbound: models.FlightSegment{DurationMinutes: 480}, PricePerPerson: usd(900)},
		{ID: "FL-B", Scores: scored(0.99)},
	}
	best := sel.BestFlight(flights)
	assert.Equal(t, "FL-B", best.ID)
	assert.Equal(t, 0.99, flights[1].Scores.PreferenceScore, "pre-set scores must not be recomputed")
	assert.NotNil(t, flights[0].Scores)
}

func TestBestHotel_TieKeepsFirst(t *testing.T) {
	sel := newFallbackSelectionService()

	hotels := []models.HotelOption{
		{ID: "HO-1", Name: "First", Scores: scored(0.7)},
		{ID: "HO-2", Name: "Second", Scores: scored(0.7)},
	}
	assert.Equal(t, "HO-1", sel.BestHotel(hotels).ID)
}

func TestBestHotel_DoesNotReorderInput(t *testing.T) {
	sel := newFallbackSelectionService()

	hotels := []models.HotelOption{
		{ID: "HO-1", Name: "Budget", Rating: 2, PricePerNight: usd(80)},
		{ID: "HO-2", Name: "Grand", Rating: 5, PricePerNight: usd(300), Amenities: []string{"wifi", "spa"}},
		{ID: "HO-3", Name: "Mid", Rating: 3.5, PricePerNight: usd(150)},
	}
	sel.BestHotel(hotels)

	assert.Equal(t, "HO-1", hotels[0].ID)
	assert.Equal(t, "HO-2", hotels[1].ID)
	assert.Equal(t, "HO-3", hotels[2].ID)
	assert.Len(t, hotels, 3)
}

func TestBestTransfer_UniformScoresKeepFirst(t *testing.T) {
	sel := newFallbackSelectionService()

	transfers := []models.TransportOption{
		{ID: "TR-1"},
		{ID: "TR-2"},
		{ID: "TR-3"},
	}
	best := sel.BestTransfer(transfers)
	assert.Equal(t, "TR-1", best.ID)
	assert.NotNil(t, best.Scores)

	assert.Nil(t, sel.BestTransfer(nil))
}

func slotAt(timeOfDay string) models.TimeSlot {
	return models.TimeSlot{Date: "2025-07-02", Time: timeOfDay, AvailableSpots: 10}
}

func TestBestActivitiesByDaypart_AssignsToEveryMatchingBucket(t *testing.T) {
	sel := newFallbackSelectionService()

	// Slots at 23:30 and 07:00: night bucket (wrap) and morning bucket.
	spanning := models.ActivityOption{
		ID: "AC-SPAN", Name: "Spanning", Rating: 4.5, ReviewCount: 100,
		PricePerPerson: usd(40), DurationMinutes: 120,
		AvailableTimes: []models.TimeSlot{slotAt("23:30"), slotAt("07:00")},
	}
	afternoonOnly := models.ActivityOption{
		ID: "AC-NOON", Name: "Afternoon", Rating: 4.0, ReviewCount: 100,
		PricePerPerson: usd(40), DurationMinutes: 120,
		AvailableTimes: []models.TimeSlot{slotAt("13:15")},
	}

	winners := sel.BestActivitiesByDaypart([]models.ActivityOption{spanning, afternoonOnly})

	// Winners come out in bucket-definition order: morning, afternoon, night.
	if assert.Len(t, winners, 3) {
		assert.Equal(t, "AC-SPAN", winners[0].ID)
		assert.Equal(t, "AC-NOON", winners[1].ID)
		assert.Equal(t, "AC-SPAN", winners[2].ID)
	}
}

func TestBestActivitiesByDaypart_NightWrapBoundaries(t *testing.T) {
	sel := newFallbackSelectionService()

	tests := []struct {
		name      string
		slot      string
		wantNight bool
	}{
		{"21:00 starts night", "21:00", true},
		{"23:59 is night", "23:59", true},
		{"00:00 wraps into night", "00:00", true},
		{"05:59 is still night", "05:59", true},
		{"06:00 is morning", "06:00", false},
		{"20:59 is evening_late", "20:59", false},
	}

	night := dayparts[len(dayparts)-1]
	if night.name != "night" {
		t.Fatalf("expected night to be the last daypart, got %q", night.name)
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			activity := models.ActivityOption{
				ID: "AC-1", Rating: 4, ReviewCount: 50,
				PricePerPerson: usd(30), DurationMinutes: 60,
				AvailableTimes: []models.TimeSlot{slotAt(test.slot)},
			}
			assert.Equal(t, test.wantNight, activityInDaypart(&activity, night))

			// Every slot lands in exactly one bucket.
			winners := sel.BestActivitiesByDaypart([]models.ActivityOption{activity})
			assert.Len(t, winners, 1)
		})
	}
}

func TestBestActivitiesByDaypart_BestPerBucket(t *testing.T) {
	sel := newFallbackSelectionService()

	weak := models.ActivityOption{
		ID: "AC-WEAK", Rating: 2.0, ReviewCount: 100,
		PricePerPerson: usd(90), DurationMinutes: 60,
		AvailableTimes: []models.TimeSlot{slotAt("10:00")},
	}
	strong := models.ActivityOption{
		ID: "AC-STRONG", Rating: 4.9, ReviewCount: 100,
		PricePerPerson: usd(20), DurationMinutes: 60,
		AvailableTimes: []models.TimeSlot{slotAt("11:00")},
	}

	winners := sel.BestActivitiesByDaypart([]models.ActivityOption{weak, strong})
	if assert.Len(t, winners, 1) {
		assert.Equal(t, "AC-STRONG", winners[0].ID)
	}
}

func TestBestActivitiesByDaypart_EmptyInput(t *testing.T) {
	sel := newFallbackSelectionService()
	assert.Empty(t, sel.BestActivitiesByDaypart(nil))
}

func TestParseSlotTime(t *testing.T) {
	tests := []struct {
		value   string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"noon", 0, false},
		{"", 0, false},
	}

	for _, test := range tests {
		minutes, ok := parseSlotTime(test.value)
		assert.Equal(t, test.ok, ok, "parseSlotTime(%q) ok", test.value)
		if test.ok {
			assert.Equal(t, test.minutes, minutes, "parseSlotTime(%q)", test.value)
		}
	}
}
