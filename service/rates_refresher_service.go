package services

import (
	"log"
	"time"
)

// RatesRefresherService periodically refreshes the currency rate table so a
// long-lived process does not keep serving rates past the cache TTL.
type RatesRefresherService struct {
	currencyService *CurrencyService
}

// NewRatesRefresherService constructs a new Refresher with dependencies.
func NewRatesRefresherService(currencyService *CurrencyService) *RatesRefresherService {
	return &RatesRefresherService{
		currencyService: currencyService,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (rr *RatesRefresherService) StartPeriodicJob(interval time.Duration) {
	go rr.startPeriodicJob(interval)
}

func (rr *RatesRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[RatesRefresherService] Running periodic rates refresher job.")
		if err := rr.currencyService.Refresh(); err != nil {
			log.Printf("[RatesRefresherService] Refresh returned error: %v", err)
		} else {
			log.Println("[RatesRefresherService] Refresh completed successfully.")
		}
	}
}
