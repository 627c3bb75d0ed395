// Package redis backs the converter's optional shared state: the last live
// token rate (RateCache) and the per-client request counters
// (RateLimitStore). Both are skipped entirely when redis.enabled is false.
package redis

import (
	"context"
	"fmt"

	"stars-converter/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// NewClient connects to the Redis instance shared by the rate cache and the
// rate limiter. The client is closed again if the ping fails, so callers
// only ever hold a reachable client.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr(), err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Msg("Redis ready for rate cache and rate limits")

	return client, nil
}
