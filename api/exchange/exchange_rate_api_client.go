package exchange

import (
	"fmt"

	"pb-server/api"
	"pb-server/models"
)

// ExchangeRateApiClient embeds the common HTTPClient
type ExchangeRateApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewExchangeRateApiClient creates a new instance of ExchangeRateApiClient
func NewExchangeRateApiClient(httpClient *api.HTTPClient) *ExchangeRateApiClient {
	return &ExchangeRateApiClient{
		HTTPClient: httpClient,
	}
}

// GetLatestRates retrieves the latest rates relative to the base currency and
// decodes the response into the ExchangeRatesResponse struct
func (c *ExchangeRateApiClient) GetLatestRates(baseCurrency string) (*models.ExchangeRatesResponse, error) {
	var response models.ExchangeRatesResponse
	err := c.Request("GET", "/latest/"+baseCurrency, nil, nil, &response)
	if err != nil {
		return nil, err
	}
	if response.Result != "" && response.Result != "success" {
		return nil, fmt.Errorf("exchange rate API returned result %q", response.Result)
	}
	return &response, nil
}
