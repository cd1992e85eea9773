package util

import (
	"encoding/json"
	"fmt"
	"os"

	"pb-server/models"
)

// ReadTripResponseFromJSON loads a TripResponse from JSON on disk.
func ReadTripResponseFromJSON(filePath string) (*models.TripResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.TripResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal TripResponse: %w", err)
	}
	return &resp, nil
}

// ReadExchangeRatesResponseFromJSON loads an ExchangeRatesResponse from JSON on disk.
func ReadExchangeRatesResponseFromJSON(filePath string) (*models.ExchangeRatesResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.ExchangeRatesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ExchangeRatesResponse: %w", err)
	}
	return &resp, nil
}

// PrintFinalTripLayoutPartially logs a one-line summary per emitted section.
func PrintFinalTripLayoutPartially(layout *models.FinalTripLayout) {
	fmt.Printf("FinalTripLayout with %d sections\n", len(layout.Sections))
	for _, section := range layout.Sections {
		switch section.Type {
		case models.SECTION_FLIGHT:
			fmt.Printf(" - flight %s: %s -> %s\n", section.Flight.ID,
				section.Flight.Outbound.Origin.City, section.Flight.Outbound.Destination.City)
		case models.SECTION_STAY:
			fmt.Printf(" - stay %s (%d activities)\n", section.Stay.Hotel.Name, len(section.Stay.Activities))
		case models.SECTION_TRANSFER:
			fmt.Printf(" - transfer %s\n", section.Transfer.ID)
		}
	}
}
