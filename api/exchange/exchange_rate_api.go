package exchange

import (
	"pb-server/models"
)

// ExchangeRateAPI defines the interface for interacting with the exchange
// rate source. Rates in the response are relative to the requested base.
type ExchangeRateAPI interface {
	GetLatestRates(baseCurrency string) (*models.ExchangeRatesResponse, error)
}
