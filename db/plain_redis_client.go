package db

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// PlainRedisClient struct holds the Redis client and context
type PlainRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewPlainRedisClient initializes a new Redis client with default options
func NewPlainRedisClient(ctx context.Context, client *redis.Client) *PlainRedisClient {
	// Test the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	fmt.Println("Connected to Redis")

	return &PlainRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *PlainRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *PlainRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// Keys returns all keys matching the given pattern
func (r *PlainRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// Del removes the given key
func (r *PlainRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *PlainRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *PlainRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}
