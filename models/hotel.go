package models

import "fmt"

// HotelOption is a candidate hotel for a stay section.
type HotelOption struct {
	ID string `json:"id"`

	Name               string   `json:"name"`
	Description        string   `json:"description,omitempty"`
	Location           Location `json:"location"`
	DistanceToCenterKm float64  `json:"distance_to_center_km,omitempty"`

	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`

	PricePerNight Money `json:"price_per_night"`
	TotalPrice    Money `json:"total_price"`

	Amenities  []string `json:"amenities"`
	StarRating int      `json:"star_rating,omitempty"`

	// Scores is nil until the option has been scored.
	Scores *ComponentScores `json:"scores,omitempty"`

	BookingURL string `json:"booking_url,omitempty"`
	Provider   string `json:"provider,omitempty"`
	Available  bool   `json:"available"`
}

func (h *HotelOption) ToString() string {
	return fmt.Sprintf("HotelOption(id=%s, name=%s, rating=%.1f, price=%s)",
		h.ID, h.Name, h.Rating, h.PricePerNight.ToString())
}
