package services

import (
	"strconv"
	"strings"

	"pb-server/models"
)

// daypart is a named time-of-day range in minutes since midnight,
// start-inclusive, end-exclusive. A wrapping daypart covers [start, 1440)
// plus [0, end).
type daypart struct {
	name  string
	start int
	end   int
	wraps bool
}

// dayparts in definition order; winners are emitted in this order.
var dayparts = []daypart{
	{name: "morning", start: 6 * 60, end: 9 * 60},
	{name: "morning_late", start: 9 * 60, end: 12 * 60},
	{name: "afternoon", start: 12 * 60, end: 14*60 + 30},
	{name: "afternoon_late", start: 14*60 + 30, end: 17 * 60},
	{name: "evening", start: 17 * 60, end: 19 * 60},
	{name: "evening_late", start: 19 * 60, end: 21 * 60},
	{name: "night", start: 21 * 60, end: 6 * 60, wraps: true},
}

// SelectionService picks the best option out of homogeneous candidate lists,
// scoring lazily where scores are missing.
type SelectionService struct {
	scoreService *ScoreService
}

// NewSelectionService constructs a SelectionService with its scoring dependency.
func NewSelectionService(scoreService *ScoreService) *SelectionService {
	return &SelectionService{scoreService: scoreService}
}

// BestFlight returns the flight with the highest preference score, or nil for
// an empty list. Options without scores are scored first; ties keep the
// earliest option.
func (sel *SelectionService) BestFlight(flights []models.FlightOption) *models.FlightOption {
	if len(flights) == 0 {
		return nil
	}

	if flights[0].Scores == nil {
		for i := range flights {
			if flights[i].Scores == nil {
				sel.scoreService.SetFlightScores(&flights[i])
			}
		}
	}

	best := 0
	for i := 1; i < len(flights); i++ {
		if preferenceOf(flights[i].Scores) > preferenceOf(flights[best].Scores) {
			best = i
		}
	}
	return &flights[best]
}

// BestHotel returns the hotel with the highest preference score, or nil for
// an empty list.
func (sel *SelectionService) BestHotel(hotels []models.HotelOption) *models.HotelOption {
	if len(hotels) == 0 {
		return nil
	}

	if hotels[0].Scores == nil {
		for i := range hotels {
			if hotels[i].Scores == nil {
				sel.scoreService.SetHotelScores(&hotels[i])
			}
		}
	}

	best := 0
	for i := 1; i < len(hotels); i++ {
		if preferenceOf(hotels[i].Scores) > preferenceOf(hotels[best].Scores) {
			best = i
		}
	}
	return &hotels[best]
}

// BestTransfer returns the transfer with the highest preference score, or nil
// for an empty list. Transfer scores are uniform today, so the scan keeps the
// first option.
func (sel *SelectionService) BestTransfer(transfers []models.TransportOption) *models.TransportOption {
	if len(transfers) == 0 {
		return nil
	}

	if transfers[0].Scores == nil {
		for i := range transfers {
			if transfers[i].Scores == nil {
				sel.scoreService.SetTransferScores(&transfers[i])
			}
		}
	}

	best := 0
	for i := 1; i < len(transfers); i++ {
		if preferenceOf(transfers[i].Scores) > preferenceOf(transfers[best].Scores) {
			best = i
		}
	}
	return &transfers[best]
}

// BestActivitiesByDaypart scores every activity and returns the best-scoring
// activity per daypart, in daypart order. An activity with slots spanning
// several dayparts competes in each of them; dayparts with no assigned
// activity contribute nothing.
func (sel *SelectionService) BestActivitiesByDaypart(activities []models.ActivityOption) []models.ActivityOption {
	for i := range activities {
		sel.scoreService.SetActivityScores(&activities[i])
	}

	var winners []models.ActivityOption
	for _, dp := range dayparts {
		best := -1
		for i := range activities {
			if !activityInDaypart(&activities[i], dp) {
				continue
			}
			if best < 0 || preferenceOf(activities[i].Scores) > preferenceOf(activities[best].Scores) {
				best = i
			}
		}
		if best >= 0 {
			winners = append(winners, activities[best])
		}
	}
	return winners
}

func activityInDaypart(activity *models.ActivityOption, dp daypart) bool {
	for _, slot := range activity.AvailableTimes {
		minutes, ok := parseSlotTime(slot.Time)
		if !ok {
			continue
		}
		if dp.wraps {
			if minutes >= dp.start || minutes < dp.end {
				return true
			}
		} else if minutes >= dp.start && minutes < dp.end {
			return true
		}
	}
	return false
}

// parseSlotTime converts an "HH:MM" slot time into minutes since midnight.
func parseSlotTime(value string) (int, bool) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

func preferenceOf(scores *models.ComponentScores) float64 {
	if scores == nil {
		return 0
	}
	return scores.PreferenceScore
}
