package services

import (
	"time"

	"pb-server/models"
)

// Scoring modes. Normal is the preference blend, budget weighs price heavier,
// duration weighs flight time heavier.
const (
	SCORE_MODE_NORMAL   = "normal"
	SCORE_MODE_BUDGET   = "budget"
	SCORE_MODE_DURATION = "duration"
)

// Reference constants used to normalize raw attributes into roughly [0,1]
// contributions before weighting.
const (
	REF_FLIGHT_PRICE_USD    = 1000.0
	REF_FLIGHT_DURATION_MIN = 720.0
	REF_FLIGHT_CONNECTIONS  = 2.0

	REF_HOTEL_PRICE_USD = 1500.0
	REF_HOTEL_RATING    = 5.0
	REF_HOTEL_AMENITIES = 10.0

	// Assumed ceiling on activity cost per minute. Not a true normalized
	// bound: cheaper-per-minute activities approach 1 after inversion.
	REF_ACTIVITY_PRICE_PER_MINUTE = 1000.0

	ACTIVITY_REVIEW_CREDIBILITY_THRESHOLD = 20
)

// Timestamp layouts accepted for flight segments, tried in order.
var flightTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ScoreService computes ComponentScores for options. Calc methods are pure
// with respect to the option; Set methods annotate the option in place.
type ScoreService struct {
	currencyService *CurrencyService
}

// NewScoreService constructs a ScoreService with its currency dependency.
func NewScoreService(currencyService *CurrencyService) *ScoreService {
	return &ScoreService{currencyService: currencyService}
}

// CalcFlightScores computes scores for a flight based on its outbound segment.
func (ss *ScoreService) CalcFlightScores(flight *models.FlightOption) models.ComponentScores {
	flightTime := GetFlightTime(&flight.Outbound)
	connections := float64(flight.Outbound.Stops)
	price := ss.currencyService.ToUSD(flight.PricePerPerson)

	return models.ComponentScores{
		PriceScore:       CalcFlightScore(flightTime, connections, price, SCORE_MODE_BUDGET),
		QualityScore:     0, // can be extended
		ConvenienceScore: 0, // can be extended
		PreferenceScore:  CalcFlightScore(flightTime, connections, price, SCORE_MODE_NORMAL),
	}
}

// SetFlightScores annotates the flight with its computed scores.
func (ss *ScoreService) SetFlightScores(flight *models.FlightOption) {
	scores := ss.CalcFlightScores(flight)
	flight.Scores = &scores
}

// CalcHotelScores computes scores for a hotel based on rating, price, amenities.
func (ss *ScoreService) CalcHotelScores(hotel *models.HotelOption) models.ComponentScores {
	rating := hotel.Rating
	pricePerNight := ss.currencyService.ToUSD(hotel.PricePerNight)
	amenitiesCount := len(hotel.Amenities)
	if amenitiesCount > int(REF_HOTEL_AMENITIES) {
		amenitiesCount = int(REF_HOTEL_AMENITIES)
	}

	return models.ComponentScores{
		PriceScore:       CalcHotelScore(rating, pricePerNight, amenitiesCount, SCORE_MODE_BUDGET),
		QualityScore:     0, // can be extended
		ConvenienceScore: 0, // can be extended
		PreferenceScore:  CalcHotelScore(rating, pricePerNight, amenitiesCount, SCORE_MODE_NORMAL),
	}
}

// SetHotelScores annotates the hotel with its computed scores.
func (ss *ScoreService) SetHotelScores(hotel *models.HotelOption) {
	scores := ss.CalcHotelScores(hotel)
	hotel.Scores = &scores
}

// CalcActivityScores computes scores for an activity. Price is normalized to
// cost per minute so short and long activities compare fairly; rating weighs
// heavier once the review count gives it credibility.
func (ss *ScoreService) CalcActivityScores(activity *models.ActivityOption) models.ComponentScores {
	price := ss.currencyService.ToUSD(activity.PricePerPerson)

	durationMinutes := activity.DurationMinutes
	if durationMinutes < 1 {
		durationMinutes = 1
	}
	relativePrice := price / float64(durationMinutes)

	invertedPrice := REF_ACTIVITY_PRICE_PER_MINUTE - relativePrice
	if invertedPrice < 0 {
		invertedPrice = 0
	}

	ratingFactor := 0.5
	if activity.ReviewCount > ACTIVITY_REVIEW_CREDIBILITY_THRESHOLD {
		ratingFactor = 0.7
	}

	priceComponent := invertedPrice / REF_ACTIVITY_PRICE_PER_MINUTE

	return models.ComponentScores{
		PriceScore:       priceComponent*0.7 + activity.Rating*0.3,
		QualityScore:     0, // can be extended
		ConvenienceScore: 0, // can be extended
		PreferenceScore:  activity.Rating*ratingFactor + priceComponent*(1-ratingFactor),
	}
}

// SetActivityScores annotates the activity with its computed scores.
func (ss *ScoreService) SetActivityScores(activity *models.ActivityOption) {
	scores := ss.CalcActivityScores(activity)
	activity.Scores = &scores
}

// CalcTransferScores returns uniform scores for a transfer. Real transfer
// scoring is not specified yet; uniform scores keep transfers flowing
// through the same selection path as flights and hotels.
func (ss *ScoreService) CalcTransferScores(transfer *models.TransportOption) models.ComponentScores {
	return models.ComponentScores{
		PriceScore:       0.5,
		QualityScore:     0.5,
		ConvenienceScore: 0.5,
		PreferenceScore:  0.5,
	}
}

// SetTransferScores annotates the transfer with its computed scores.
func (ss *ScoreService) SetTransferScores(transfer *models.TransportOption) {
	scores := ss.CalcTransferScores(transfer)
	transfer.Scores = &scores
}

// CalcFlightScore computes the normalized 0-1 flight score for one mode.
// Lower price, duration and connection counts push the score toward 1.
func CalcFlightScore(flightTime, connections, price float64, mode string) float64 {
	var raw float64
	switch mode {
	case SCORE_MODE_NORMAL:
		raw = 0.5*(price/REF_FLIGHT_PRICE_USD) +
			0.35*(flightTime/REF_FLIGHT_DURATION_MIN) +
			0.15*(connections/REF_FLIGHT_CONNECTIONS)
	case SCORE_MODE_BUDGET:
		raw = 0.7*(price/REF_FLIGHT_PRICE_USD) +
			0.25*(flightTime/REF_FLIGHT_DURATION_MIN) +
			0.05*(connections/REF_FLIGHT_CONNECTIONS)
	default: // duration
		raw = 0.3*(price/REF_FLIGHT_PRICE_USD) +
			0.65*(flightTime/REF_FLIGHT_DURATION_MIN) +
			0.05*(connections/REF_FLIGHT_CONNECTIONS)
	}

	if raw > 1 {
		raw = 1
	}
	return 1 - raw
}

// CalcHotelScore computes the normalized 0-1 hotel score for one mode,
// clamped into [0, 1].
func CalcHotelScore(rating, pricePerNight float64, amenitiesCount int, mode string) float64 {
	amenities := float64(amenitiesCount)

	var score float64
	switch mode {
	case SCORE_MODE_BUDGET:
		score = 0.3*(rating/REF_HOTEL_RATING) +
			0.6*(1-pricePerNight/REF_HOTEL_PRICE_USD) +
			0.1*(amenities/REF_HOTEL_AMENITIES)
	default: // normal
		score = 0.5*(rating/REF_HOTEL_RATING) +
			0.3*(1-pricePerNight/REF_HOTEL_PRICE_USD) +
			0.2*(amenities/REF_HOTEL_AMENITIES)
	}

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// GetFlightTime returns the segment duration in minutes. The explicit
// duration field wins when positive; otherwise the duration is derived from
// the timestamps. Unparsable timestamps yield 0 so a malformed record scores
// worst-case instead of failing the batch.
func GetFlightTime(segment *models.FlightSegment) float64 {
	if segment.DurationMinutes > 0 {
		return float64(segment.DurationMinutes)
	}

	departure, okDep := parseFlightTime(segment.DepartureTime)
	arrival, okArr := parseFlightTime(segment.ArrivalTime)
	if !okDep || !okArr {
		return 0
	}

	minutes := arrival.Sub(departure).Minutes()
	if minutes < 0 {
		return 0
	}
	return minutes
}

func parseFlightTime(value string) (time.Time, bool) {
	for _, layout := range flightTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
