package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultRateCacheKey is where the last live token rate is stored.
const DefaultRateCacheKey = "rates:ton_usdt"

// RateCache implements ports.RateCache using Redis. The rate is stored as
// its shortest decimal string so it survives the round trip unchanged.
type RateCache struct {
	client *goredis.Client
	key    string
}

// NewRateCache creates a Redis-backed token rate cache.
func NewRateCache(client *goredis.Client) *RateCache {
	return &RateCache{
		client: client,
		key:    DefaultRateCacheKey,
	}
}

// Get returns the cached rate. A missing key is a miss, not an error.
func (c *RateCache) Get(ctx context.Context) (float64, bool, error) {
	val, err := c.client.Get(ctx, c.key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("redis rate cache get: %w", err)
	}

	rate, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false, fmt.Errorf("redis rate cache decode %q: %w", val, err)
	}
	return rate, true, nil
}

// Set stores rate for ttl.
func (c *RateCache) Set(ctx context.Context, rate float64, ttl time.Duration) error {
	val := strconv.FormatFloat(rate, 'g', -1, 64)
	if err := c.client.Set(ctx, c.key, val, ttl).Err(); err != nil {
		return fmt.Errorf("redis rate cache set: %w", err)
	}
	return nil
}
