package exchange

import (
	"fmt"

	"pb-server/config"
	"pb-server/models"
	"pb-server/util"
)

// ExchangeRateApiClientMock embeds mocked logic for the exchange rate api client
type ExchangeRateApiClientMock struct {
}

// NewExchangeRateApiClientMock creates a new instance of ExchangeRateApiClientMock
func NewExchangeRateApiClientMock() *ExchangeRateApiClientMock {
	return &ExchangeRateApiClientMock{}
}

// GetLatestRates reads a canned rates response from the resources folder.
func (c *ExchangeRateApiClientMock) GetLatestRates(baseCurrency string) (*models.ExchangeRatesResponse, error) {
	response, err := util.ReadExchangeRatesResponseFromJSON(
		config.GetResourcePath(config.EXCHANGE_RATES_RESPONSE_RESOURCE))

	if err != nil {
		fmt.Println("Could not read exchange rates response from json")
		return nil, err
	}

	return response, nil
}
