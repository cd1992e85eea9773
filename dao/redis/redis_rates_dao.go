package redis

import (
	"encoding/json"
	"fmt"
	"log"

	"pb-server/db"
	"pb-server/models"
)

// CURRENCY_RATES_KEY_V1 holds the cached rate snapshot.
const CURRENCY_RATES_KEY_V1 = "currency_rates_v1"

// RedisRatesDAO handles currency rate snapshot persistence using Redis.
type RedisRatesDAO struct {
	client db.RedisClient
}

// NewRedisRatesDAO initializes a RedisRatesDAO with the Redis client.
func NewRedisRatesDAO(client db.RedisClient) *RedisRatesDAO {
	return &RedisRatesDAO{client: client}
}

// SetRateSnapshot caches the given rate snapshot, replacing any previous one.
func (dao *RedisRatesDAO) SetRateSnapshot(snapshot *models.RateSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal rate snapshot: %w", err)
	}
	if err := dao.client.Set(CURRENCY_RATES_KEY_V1, string(data)); err != nil {
		return fmt.Errorf("failed to set rate snapshot in redis: %w", err)
	}
	return nil
}

// GetRateSnapshot retrieves the cached rate snapshot. Returns (nil, nil) on a
// cache miss so callers can distinguish "no cache yet" from a real failure.
func (dao *RedisRatesDAO) GetRateSnapshot() (*models.RateSnapshot, error) {
	str, err := dao.client.Get(CURRENCY_RATES_KEY_V1)
	if err != nil {
		log.Printf("[RedisRatesDAO] No cached rate snapshot: %v", err)
		return nil, nil
	}
	var snapshot models.RateSnapshot
	if err := json.Unmarshal([]byte(str), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rate snapshot JSON: %w", err)
	}
	return &snapshot, nil
}

// DeleteRateSnapshot removes the cached snapshot.
func (dao *RedisRatesDAO) DeleteRateSnapshot() error {
	if err := dao.client.Del(CURRENCY_RATES_KEY_V1); err != nil {
		return fmt.Errorf("failed to delete rate snapshot key %s: %w", CURRENCY_RATES_KEY_V1, err)
	}
	log.Printf("[RedisRatesDAO] Deleted cached rate snapshot")
	return nil
}
