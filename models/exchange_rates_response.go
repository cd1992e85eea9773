package models

// ExchangeRatesResponse is the payload of the base-USD exchange rate API.
// Rates are relative to the base: "EUR": 0.92 means 1 USD = 0.92 EUR.
type ExchangeRatesResponse struct {
	Result   string             `json:"result"`
	BaseCode string             `json:"base_code"`
	Rates    map[string]float64 `json:"rates"`
}

// RateSnapshot is the cached rate table, stored as multipliers to USD
// ("EUR": 1.08 means 1 EUR = 1.08 USD) together with the fetch timestamp
// (unix seconds).
type RateSnapshot struct {
	Timestamp int64              `json:"timestamp"`
	Rates     map[string]float64 `json:"rates"`
}
