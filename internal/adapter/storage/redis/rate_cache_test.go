package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateCache_GetSet(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewRateCache(client)
	ctx := context.Background()

	t.Run("miss on empty cache", func(t *testing.T) {
		rate, ok, err := cache.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, rate)
	})

	t.Run("round trips the exact rate", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, 3.1415926535, 10*time.Minute))

		rate, ok, err := cache.Get(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 3.1415926535, rate)

		got, err := mr.Get(DefaultRateCacheKey)
		require.NoError(t, err)
		assert.Equal(t, "3.1415926535", got)
		assert.Equal(t, 10*time.Minute, mr.TTL(DefaultRateCacheKey))
	})

	t.Run("expires after ttl", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, 3.15, time.Minute))
		mr.FastForward(2 * time.Minute)

		_, ok, err := cache.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("garbage value is an error", func(t *testing.T) {
		require.NoError(t, mr.Set(DefaultRateCacheKey, "not-a-number"))

		_, ok, err := cache.Get(ctx)
		require.Error(t, err)
		assert.False(t, ok)
	})
}

func TestRateCache_RedisDown(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewRateCache(client)
	mr.Close()

	_, _, err := cache.Get(context.Background())
	assert.Error(t, err)
	assert.Error(t, cache.Set(context.Background(), 1.35, time.Minute))
}

func TestHealthCheck(t *testing.T) {
	mr, client := newTestClient(t)
	hc := NewHealthCheck(client)

	assert.Equal(t, "redis", hc.Name())
	assert.NoError(t, hc.Ping(context.Background()))

	mr.Close()
	assert.Error(t, hc.Ping(context.Background()))
}
