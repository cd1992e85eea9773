package models

import "fmt"

// Money is an amount tagged with an ISO 4217 currency code.
type Money struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
}

func (m Money) ToString() string {
	return fmt.Sprintf("%.2f %s", m.Amount, m.Currency)
}

// Location identifies a city, optionally with its IATA airport code.
type Location struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	AirportCode string  `json:"airport_code,omitempty"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
}

// TimeSlot is a bookable slot on a given date, time in "HH:MM".
type TimeSlot struct {
	Date           string `json:"date"`
	Time           string `json:"time"`
	AvailableSpots int    `json:"available_spots"`
}

// ComponentScores holds the per-factor scores computed for an option.
// Each component is intended to lie in [0, 1]; higher is better.
type ComponentScores struct {
	PriceScore       float64 `json:"price_score"`
	QualityScore     float64 `json:"quality_score"`
	ConvenienceScore float64 `json:"convenience_score"`
	PreferenceScore  float64 `json:"preference_score"`
}
