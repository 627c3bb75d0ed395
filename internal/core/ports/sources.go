package ports

import (
	"context"
	"time"
)

// TokenRateSource fetches the token price in usdt from the external feed.
// Implementations report every failure; recovering from it is the rate
// provider's job.
type TokenRateSource interface {
	FetchTokenRate(ctx context.Context) (float64, error)
}

// RateCache keeps the last live token rate for a bounded time.
type RateCache interface {
	// Get returns the cached rate. ok is false on a miss.
	Get(ctx context.Context) (rate float64, ok bool, err error)
	Set(ctx context.Context, rate float64, ttl time.Duration) error
}

// Metrics receives the counters the services report.
type Metrics interface {
	ObserveRateFetch(outcome string)
	SetTokenRate(rate float64)
	ObserveOverflow(source string)
	ObserveConversion(base string, neutral bool)
}
