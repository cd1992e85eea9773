package services

import (
	"log"
	"sync"
	"time"

	"pb-server/api/exchange"
	"pb-server/config"
	"pb-server/dao/redis"
	"pb-server/models"
)

// FALLBACK_RATES_TO_USD is the static multiplier-to-USD table used when both
// the cache and the rate API are unavailable.
var FALLBACK_RATES_TO_USD = map[string]float64{
	"USD": 1.0,
	"EUR": 1.1746,
	"GBP": 1.3477,
	"AUD": 0.6673,
	"NZD": 0.5767,
	"CAD": 0.7288,
	"CHF": 1.2626,
	"JPY": 0.00638,
	"CNY": 0.1429,
	"INR": 0.01111,
	"SGD": 0.7780,
	"HKD": 0.1284,
	"SEK": 0.1086,
	"ILS": 0.3139,
	"MXN": 0.0559,
	"ZAR": 0.0607,
}

// CurrencyService maintains the multiplier-to-USD rate table: loaded once
// from the cache or the rate API, then read for every price normalization.
// The snapshot is replaced wholesale under the write lock, so concurrent
// readers always see a complete table.
type CurrencyService struct {
	ratesDao        *redis.RedisRatesDAO
	exchangeRateApi exchange.ExchangeRateAPI

	mu       sync.RWMutex
	snapshot *models.RateSnapshot
}

// NewCurrencyService constructs a CurrencyService and loads its rate table.
func NewCurrencyService(
	ratesDao *redis.RedisRatesDAO,
	exchangeRateApi exchange.ExchangeRateAPI) *CurrencyService {

	cs := &CurrencyService{
		ratesDao:        ratesDao,
		exchangeRateApi: exchangeRateApi,
	}
	cs.loadRates()
	return cs
}

// loadRates tries the cached snapshot first; if it is missing, corrupt or
// older than the TTL, rates are fetched from the API.
func (cs *CurrencyService) loadRates() {
	snapshot, err := cs.ratesDao.GetRateSnapshot()
	if err != nil {
		log.Printf("[CurrencyService] Failed to load cached rates: %v", err)
	}
	if snapshot != nil && len(snapshot.Rates) > 0 {
		cs.setSnapshot(snapshot)
		log.Println("[CurrencyService] Loaded currency rates from cache.")

		age := time.Since(time.Unix(snapshot.Timestamp, 0))
		if age < config.CURRENCY_CACHE_TTL_HOURS*time.Hour {
			log.Println("[CurrencyService] Cache is fresh.")
			return
		}
		log.Println("[CurrencyService] Cache is stale. Attempting update from API...")
	}

	if err := cs.Refresh(); err != nil {
		log.Printf("[CurrencyService] Refresh failed: %v", err)
	}
}

// Refresh fetches fresh rates from the API, inverts them to multipliers to
// USD and swaps in a new snapshot. On failure a previously loaded snapshot is
// kept; with no snapshot at all the static fallback table takes over. The
// returned error is informational only: the service is always usable after.
func (cs *CurrencyService) Refresh() error {
	log.Println("[CurrencyService] Fetching currency rates from API...")
	response, err := cs.exchangeRateApi.GetLatestRates(config.EXCHANGE_RATE_BASE_CURRENCY)
	if err != nil {
		if cs.getSnapshot() != nil {
			log.Printf("[CurrencyService] Error fetching rates: %v. Using stale cache.", err)
		} else {
			log.Printf("[CurrencyService] Error fetching rates: %v. Cache empty. Using fallback.", err)
			cs.setSnapshot(&models.RateSnapshot{
				Timestamp: time.Now().Unix(),
				Rates:     FALLBACK_RATES_TO_USD,
			})
		}
		return err
	}

	// The API returns "1 USD = X foreign units"; the snapshot stores
	// "1 foreign unit = Y USD", so each rate is inverted.
	rates := make(map[string]float64, len(response.Rates))
	for currency, rate := range response.Rates {
		if rate > 0 {
			rates[currency] = 1.0 / rate
		}
	}

	snapshot := &models.RateSnapshot{
		Timestamp: time.Now().Unix(),
		Rates:     rates,
	}
	cs.setSnapshot(snapshot)

	if err := cs.ratesDao.SetRateSnapshot(snapshot); err != nil {
		log.Printf("[CurrencyService] Failed to save rate cache: %v", err)
	} else {
		log.Println("[CurrencyService] Successfully fetched and cached rates.")
	}
	return nil
}

// GetRate returns the multiplier converting one unit of the given currency
// into USD. Unknown codes default to 1.0.
func (cs *CurrencyService) GetRate(currencyCode string) float64 {
	snapshot := cs.getSnapshot()
	if snapshot != nil {
		if rate, ok := snapshot.Rates[currencyCode]; ok {
			return rate
		}
	}
	if rate, ok := FALLBACK_RATES_TO_USD[currencyCode]; ok {
		return rate
	}
	return 1.0
}

// ToUSD converts a Money amount into its USD equivalent.
func (cs *CurrencyService) ToUSD(price models.Money) float64 {
	return price.Amount * cs.GetRate(price.Currency)
}

func (cs *CurrencyService) getSnapshot() *models.RateSnapshot {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.snapshot
}

func (cs *CurrencyService) setSnapshot(snapshot *models.RateSnapshot) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.snapshot = snapshot
}
