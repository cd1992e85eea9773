package models

import "fmt"

// FlightSegment is one leg of a flight option. DurationMinutes is
// authoritative when positive; otherwise the duration is derived from the
// departure/arrival timestamps (ISO 8601, offset optional).
type FlightSegment struct {
	Origin      Location `json:"origin"`
	Destination Location `json:"destination"`

	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`

	DurationMinutes int `json:"duration_minutes"`
	Stops           int `json:"stops"`

	Airline      string `json:"airline,omitempty"`
	FlightNumber string `json:"flight_number,omitempty"`
	CabinClass   string `json:"cabin_class,omitempty"`
}

// FlightOption is a candidate flight with an outbound and optional return leg.
type FlightOption struct {
	ID string `json:"id"`

	Outbound FlightSegment  `json:"outbound"`
	Return   *FlightSegment `json:"return,omitempty"`

	TotalPrice     Money `json:"total_price"`
	PricePerPerson Money `json:"price_per_person"`

	// Scores is nil until the option has been scored.
	Scores *ComponentScores `json:"scores,omitempty"`

	BookingURL string `json:"booking_url,omitempty"`
	Provider   string `json:"provider,omitempty"`
	Available  bool   `json:"available"`
}

func (f *FlightOption) ToString() string {
	return fmt.Sprintf("FlightOption(id=%s, from=%s, to=%s, price=%s)",
		f.ID, f.Outbound.Origin.City, f.Outbound.Destination.City, f.PricePerPerson.ToString())
}
