package models

// ActivityOption is a candidate activity for a stay section.
type ActivityOption struct {
	ID string `json:"id"`

	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Location    Location `json:"location"`

	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`

	PricePerPerson Money `json:"price_per_person"`

	DurationMinutes int        `json:"duration_minutes"`
	AvailableTimes  []TimeSlot `json:"available_times"`

	// Scores is nil until the option has been scored.
	Scores *ComponentScores `json:"scores,omitempty"`

	BookingURL string `json:"booking_url,omitempty"`
	Provider   string `json:"provider,omitempty"`
	Available  bool   `json:"available"`
}
