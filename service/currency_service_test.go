package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	redisdao "pb-server/dao/redis"
	"pb-server/db"
	"pb-server/models"
)

// stubExchangeRateAPI returns a canned response or a canned error.
type stubExchangeRateAPI struct {
	response *models.ExchangeRatesResponse
	err      error
	calls    int
}

func (s *stubExchangeRateAPI) GetLatestRates(baseCurrency string) (*models.ExchangeRatesResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func newRatesDao() (*redisdao.RedisRatesDAO, db.RedisClient) {
	client := db.NewMockRedisClient(context.Background())
	return redisdao.NewRedisRatesDAO(client), client
}

func seedSnapshot(t *testing.T, client db.RedisClient, snapshot *models.RateSnapshot) {
	t.Helper()
	data, err := json.Marshal(snapshot)
	if err != nil {
		t.Fatalf("failed to marshal snapshot: %v", err)
	}
	if err := client.Set(redisdao.CURRENCY_RATES_KEY_V1, string(data)); err != nil {
		t.Fatalf("failed to seed snapshot: %v", err)
	}
}

func TestCurrencyService_FetchInvertsRates(t *testing.T) {
	dao, client := newRatesDao()
	api := &stubExchangeRateAPI{
		response: &models.ExchangeRatesResponse{
			Result:   "success",
			BaseCode: "USD",
			Rates:    map[string]float64{"USD": 1.0, "EUR": 0.5, "JPY": 160.0, "BAD": 0.0},
		},
	}

	cs := NewCurrencyService(dao, api)

	// 1 USD = 0.5 EUR, so 1 EUR = 2 USD.
	assert.InDelta(t, 2.0, cs.GetRate("EUR"), 1e-9)
	assert.InDelta(t, 1.0/160.0, cs.GetRate("JPY"), 1e-9)
	assert.Equal(t, 1.0, cs.GetRate("USD"))

	// Non-positive rates are dropped, leaving the default multiplier.
	assert.Equal(t, 1.0, cs.GetRate("BAD"))

	// The fetched snapshot must have been persisted.
	str, err := client.Get(redisdao.CURRENCY_RATES_KEY_V1)
	if err != nil {
		t.Fatalf("expected persisted snapshot, got error: %v", err)
	}
	var persisted models.RateSnapshot
	if err := json.Unmarshal([]byte(str), &persisted); err != nil {
		t.Fatalf("failed to unmarshal persisted snapshot: %v", err)
	}
	assert.InDelta(t, 2.0, persisted.Rates["EUR"], 1e-9)
}

func TestCurrencyService_FetchFailureFallsBackToStaticTable(t *testing.T) {
	dao, _ := newRatesDao()
	api := &stubExchangeRateAPI{err: errors.New("network unreachable")}

	cs := NewCurrencyService(dao, api)

	assert.Equal(t, 1.0, cs.GetRate("USD"))
	assert.InDelta(t, 1.1746, cs.GetRate("EUR"), 1e-9)
	assert.InDelta(t, 0.3139, cs.GetRate("ILS"), 1e-9)

	// Unknown code with no live rates and no fallback entry.
	assert.Equal(t, 1.0, cs.GetRate("XYZ"))
}

func TestCurrencyService_FreshCacheSkipsFetch(t *testing.T) {
	dao, client := newRatesDao()
	seedSnapshot(t, client, &models.RateSnapshot{
		Timestamp: time.Now().Unix(),
		Rates:     map[string]float64{"EUR": 3.0},
	})
	api := &stubExchangeRateAPI{err: errors.New("should not be called")}

	cs := NewCurrencyService(dao, api)

	assert.Equal(t, 0, api.calls, "fresh cache must not trigger a fetch")
	assert.InDelta(t, 3.0, cs.GetRate("EUR"), 1e-9)
}

func TestCurrencyService_StaleCacheKeptWhenFetchFails(t *testing.T) {
	dao, client := newRatesDao()
	staleTimestamp := time.Now().Add(-48 * time.Hour).Unix()
	seedSnapshot(t, client, &models.RateSnapshot{
		Timestamp: staleTimestamp,
		Rates:     map[string]float64{"EUR": 3.0},
	})
	api := &stubExchangeRateAPI{err: errors.New("network unreachable")}

	cs := NewCurrencyService(dao, api)

	assert.Equal(t, 1, api.calls, "stale cache must trigger a fetch attempt")
	assert.InDelta(t, 3.0, cs.GetRate("EUR"), 1e-9, "stale rates must survive a failed fetch")
}

func TestCurrencyService_StaleCacheRefreshedWhenFetchSucceeds(t *testing.T) {
	dao, client := newRatesDao()
	seedSnapshot(t, client, &models.RateSnapshot{
		Timestamp: time.Now().Add(-48 * time.Hour).Unix(),
		Rates:     map[string]float64{"EUR": 3.0},
	})
	api := &stubExchangeRateAPI{
		response: &models.ExchangeRatesResponse{
			Result:   "success",
			BaseCode: "USD",
			Rates:    map[string]float64{"EUR": 0.5},
		},
	}

	cs := NewCurrencyService(dao, api)

	assert.InDelta(t, 2.0, cs.GetRate("EUR"), 1e-9)
}

func TestCurrencyService_ToUSD(t *testing.T) {
	dao, _ := newRatesDao()
	api := &stubExchangeRateAPI{
		response: &models.ExchangeRatesResponse{
			Result:   "success",
			BaseCode: "USD",
			Rates:    map[string]float64{"EUR": 0.5},
		},
	}

	cs := NewCurrencyService(dao, api)

	assert.InDelta(t, 200.0, cs.ToUSD(models.Money{Currency: "EUR", Amount: 100.0}), 1e-9)
	// Converting an amount already in USD is the identity.
	assert.InDelta(t, 100.0, cs.ToUSD(models.Money{Currency: "USD", Amount: 100.0}), 1e-9)
}
