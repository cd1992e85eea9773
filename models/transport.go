package models

// Transport modes, matching the upstream enum values.
const (
	MODE_UNKNOWN = iota
	MODE_RENTAL_CAR
	MODE_TAXI
	MODE_RIDESHARE
	MODE_TRAIN
	MODE_BUS
	MODE_FERRY
	MODE_PRIVATE_TRANSFER
	MODE_PUBLIC_TRANSIT
)

// TransportOption is a candidate ground transfer between two locations.
type TransportOption struct {
	ID string `json:"id"`

	Mode     int    `json:"mode"`
	Provider string `json:"provider,omitempty"`

	Origin      Location `json:"origin"`
	Destination Location `json:"destination"`
	DistanceKm  float64  `json:"distance_km,omitempty"`

	DepartureTime   string `json:"departure_time,omitempty"`
	ArrivalTime     string `json:"arrival_time,omitempty"`
	DurationMinutes int    `json:"duration_minutes"`

	TotalPrice     Money `json:"total_price"`
	PricePerPerson Money `json:"price_per_person"`

	// Scores is nil until the option has been scored.
	Scores *ComponentScores `json:"scores,omitempty"`

	BookingURL string `json:"booking_url,omitempty"`
	Available  bool   `json:"available"`
}
