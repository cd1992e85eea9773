package models

import (
	"encoding/json"
	"fmt"
)

// SectionType tags one stage of a trip.
type SectionType string

const (
	SECTION_FLIGHT   SectionType = "flight"
	SECTION_STAY     SectionType = "stay"
	SECTION_TRANSFER SectionType = "transfer"
)

// FlightResponse bundles the candidate flights collected for a flight section.
type FlightResponse struct {
	Options []FlightOption `json:"options"`
}

// TransferResponse bundles the candidate transfers for a transfer section.
type TransferResponse struct {
	Options []TransportOption `json:"options"`
}

// StayResponse bundles the candidate hotels and activities for a stay section.
type StayResponse struct {
	HotelOptions    []HotelOption    `json:"hotel_options"`
	ActivityOptions []ActivityOption `json:"activity_options"`
}

// TripSectionResponse is one section of a collected trip. Exactly one of
// Flight, Stay, Transfer is non-nil, resolved from the wire "type" tag at
// decode time so downstream code never probes the payload shape.
type TripSectionResponse struct {
	Type     SectionType
	Flight   *FlightResponse
	Stay     *StayResponse
	Transfer *TransferResponse
}

// sectionEnvelope is the wire shape of every tagged section.
type sectionEnvelope struct {
	Type SectionType     `json:"type"`
	Data json.RawMessage `json:"data"`
}

func (s *TripSectionResponse) UnmarshalJSON(b []byte) error {
	var env sectionEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return fmt.Errorf("failed to unmarshal trip section envelope: %w", err)
	}
	s.Type = env.Type
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}

	switch env.Type {
	case SECTION_FLIGHT:
		s.Flight = &FlightResponse{}
		return json.Unmarshal(env.Data, s.Flight)
	case SECTION_STAY:
		s.Stay = &StayResponse{}
		return json.Unmarshal(env.Data, s.Stay)
	case SECTION_TRANSFER:
		s.Transfer = &TransferResponse{}
		return json.Unmarshal(env.Data, s.Transfer)
	}

	// Unknown section types keep their tag and carry no payload; the
	// builder drops them.
	return nil
}

func (s TripSectionResponse) MarshalJSON() ([]byte, error) {
	var data interface{}
	switch s.Type {
	case SECTION_FLIGHT:
		data = s.Flight
	case SECTION_STAY:
		data = s.Stay
	case SECTION_TRANSFER:
		data = s.Transfer
	}
	return json.Marshal(struct {
		Type SectionType `json:"type"`
		Data interface{} `json:"data"`
	}{s.Type, data})
}

// TripResponse is the ordered list of collected sections the builder consumes.
type TripResponse struct {
	Sections []TripSectionResponse `json:"sections"`
}

// FinalStayOption pairs the chosen hotel with the activities picked for the
// stay. The wire name of the activity list is singular upstream.
type FinalStayOption struct {
	Hotel      HotelOption      `json:"hotel"`
	Activities []ActivityOption `json:"activity"`
}

// FinalTripSection is one emitted stage of the built package. Exactly one of
// Flight, Stay, Transfer is non-nil, matching Type.
type FinalTripSection struct {
	Type     SectionType
	Flight   *FlightOption
	Stay     *FinalStayOption
	Transfer *TransportOption
}

func (s *FinalTripSection) UnmarshalJSON(b []byte) error {
	var env sectionEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return fmt.Errorf("failed to unmarshal final trip section envelope: %w", err)
	}
	s.Type = env.Type
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}

	switch env.Type {
	case SECTION_FLIGHT:
		s.Flight = &FlightOption{}
		return json.Unmarshal(env.Data, s.Flight)
	case SECTION_STAY:
		s.Stay = &FinalStayOption{}
		return json.Unmarshal(env.Data, s.Stay)
	case SECTION_TRANSFER:
		s.Transfer = &TransportOption{}
		return json.Unmarshal(env.Data, s.Transfer)
	}
	return nil
}

func (s FinalTripSection) MarshalJSON() ([]byte, error) {
	var data interface{}
	switch s.Type {
	case SECTION_FLIGHT:
		data = s.Flight
	case SECTION_STAY:
		data = s.Stay
	case SECTION_TRANSFER:
		data = s.Transfer
	}
	return json.Marshal(struct {
		Type SectionType `json:"type"`
		Data interface{} `json:"data"`
	}{s.Type, data})
}

// FinalTripLayout is the built package: the winning option per surviving
// section, in input order.
type FinalTripLayout struct {
	Sections []FinalTripSection `json:"sections"`
}
