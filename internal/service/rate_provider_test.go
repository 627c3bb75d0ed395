package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"stars-converter/internal/core/domain"
	"stars-converter/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func testProviderConfig() RateProviderConfig {
	return RateProviderConfig{
		StarsToUSDT:       testStarsToUSDT,
		FallbackTokenRate: 1.35,
		CacheTTL:          10 * time.Minute,
	}
}

func TestRateProvider_FetchTokenRate_Live(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockTokenRateSource(ctrl)
	cache := mocks.NewMockRateCache(ctrl)
	metrics := mocks.NewMockMetrics(ctrl)

	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any()).Return(0.0, false, nil),
		source.EXPECT().FetchTokenRate(gomock.Any()).Return(3.15, nil),
		cache.EXPECT().Set(gomock.Any(), 3.15, 10*time.Minute).Return(nil),
	)
	metrics.EXPECT().ObserveRateFetch(FetchOutcomeLive)

	p := NewRateProvider(source, cache, testProviderConfig(), metrics, newTestLogger())
	rate, src := p.FetchTokenRate(context.Background())

	assert.Equal(t, 3.15, rate)
	assert.Equal(t, domain.RateSourceLive, src)
}

func TestRateProvider_FetchTokenRate_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockTokenRateSource(ctrl)
	cache := mocks.NewMockRateCache(ctrl)
	metrics := mocks.NewMockMetrics(ctrl)

	cache.EXPECT().Get(gomock.Any()).Return(2.9, true, nil)
	metrics.EXPECT().ObserveRateFetch(FetchOutcomeCache)

	p := NewRateProvider(source, cache, testProviderConfig(), metrics, newTestLogger())
	rate, src := p.FetchTokenRate(context.Background())

	assert.Equal(t, 2.9, rate)
	assert.Equal(t, domain.RateSourceCache, src)
}

func TestRateProvider_FetchTokenRate_FallbackNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockTokenRateSource(ctrl)
	cache := mocks.NewMockRateCache(ctrl)

	cache.EXPECT().Get(gomock.Any()).Return(0.0, false, nil)
	source.EXPECT().FetchTokenRate(gomock.Any()).Return(0.0, errors.New("connection refused"))
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	p := NewRateProvider(source, cache, testProviderConfig(), nil, newTestLogger())
	rate, src := p.FetchTokenRate(context.Background())

	assert.Equal(t, 1.35, rate)
	assert.Equal(t, domain.RateSourceFallback, src)
}

func TestRateProvider_FetchTokenRate_CacheErrorsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockTokenRateSource(ctrl)
	cache := mocks.NewMockRateCache(ctrl)

	cache.EXPECT().Get(gomock.Any()).Return(0.0, false, errors.New("redis down"))
	source.EXPECT().FetchTokenRate(gomock.Any()).Return(3.15, nil)
	cache.EXPECT().Set(gomock.Any(), 3.15, gomock.Any()).Return(errors.New("redis down"))

	p := NewRateProvider(source, cache, testProviderConfig(), nil, newTestLogger())
	rate, src := p.FetchTokenRate(context.Background())

	assert.Equal(t, 3.15, rate)
	assert.Equal(t, domain.RateSourceLive, src)
}

func TestRateProvider_FetchTokenRate_NoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockTokenRateSource(ctrl)
	source.EXPECT().FetchTokenRate(gomock.Any()).Return(3.15, nil)

	p := NewRateProvider(source, nil, testProviderConfig(), nil, newTestLogger())
	rate, src := p.FetchTokenRate(context.Background())

	assert.Equal(t, 3.15, rate)
	assert.Equal(t, domain.RateSourceLive, src)
}

func TestRateProvider_SnapshotBeforeRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := NewRateProvider(mocks.NewMockTokenRateSource(ctrl), nil, testProviderConfig(), nil, newTestLogger())

	snap, ok := p.Snapshot()
	assert.False(t, ok)
	assert.Nil(t, snap)
	assert.Nil(t, p.Table())
}

func TestRateProvider_Refresh_PublishesTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockTokenRateSource(ctrl)
	metrics := mocks.NewMockMetrics(ctrl)

	source.EXPECT().FetchTokenRate(gomock.Any()).Return(testTokenRate, nil)
	metrics.EXPECT().ObserveRateFetch(FetchOutcomeLive)
	metrics.EXPECT().SetTokenRate(testTokenRate)

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p := NewRateProvider(source, nil, testProviderConfig(), metrics, newTestLogger())
	p.now = func() time.Time { return fixed }

	snap, err := p.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, testTokenRate, snap.TokenRate)
	assert.Equal(t, domain.RateSourceLive, snap.Source)
	assert.Equal(t, fixed, snap.FetchedAt)
	assert.InDelta(t, testStarsToUSDT/testTokenRate, snap.Table.StarsToTON, 1e-15)
	assert.Equal(t, testStarsToUSDT, snap.Table.StarsToUSDT)
	assert.InDelta(t, testTokenRate/testStarsToUSDT, snap.Table.TONToStars, 1e-9)
	assert.Equal(t, testTokenRate, snap.Table.TONToUSDT)
	assert.InDelta(t, 1/testStarsToUSDT, snap.Table.USDTToStars, 1e-9)
	assert.InDelta(t, 1/testTokenRate, snap.Table.USDTToTON, 1e-15)

	current, ok := p.Snapshot()
	require.True(t, ok)
	assert.Same(t, snap, current)
	assert.Equal(t, snap.Table, *p.Table())
}

func TestRateProvider_Refresh_FallbackStillPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockTokenRateSource(ctrl)
	source.EXPECT().FetchTokenRate(gomock.Any()).Return(0.0, errors.New("status 503"))

	p := NewRateProvider(source, nil, testProviderConfig(), nil, newTestLogger())
	snap, err := p.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.RateSourceFallback, snap.Source)
	assert.Equal(t, 1.35, snap.TokenRate)
	assert.True(t, snap.Table.Valid())
}

func TestRateProvider_FetchTokenRate_UnusableRateFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockTokenRateSource(ctrl)
	cache := mocks.NewMockRateCache(ctrl)
	metrics := mocks.NewMockMetrics(ctrl)

	// Positive and finite, but stars_to_ton = k/r overflows.
	cache.EXPECT().Get(gomock.Any()).Return(0.0, false, nil)
	source.EXPECT().FetchTokenRate(gomock.Any()).Return(1e-320, nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	metrics.EXPECT().ObserveRateFetch(FetchOutcomeFallback)

	p := NewRateProvider(source, cache, testProviderConfig(), metrics, newTestLogger())
	rate, src := p.FetchTokenRate(context.Background())

	assert.Equal(t, 1.35, rate)
	assert.Equal(t, domain.RateSourceFallback, src)
}

func TestRateProvider_FetchTokenRate_UnusableCachedRateIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockTokenRateSource(ctrl)
	cache := mocks.NewMockRateCache(ctrl)

	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any()).Return(1e-320, true, nil),
		source.EXPECT().FetchTokenRate(gomock.Any()).Return(3.15, nil),
		cache.EXPECT().Set(gomock.Any(), 3.15, 10*time.Minute).Return(nil),
	)

	p := NewRateProvider(source, cache, testProviderConfig(), nil, newTestLogger())
	rate, src := p.FetchTokenRate(context.Background())

	assert.Equal(t, 3.15, rate)
	assert.Equal(t, domain.RateSourceLive, src)
}

func TestRateProvider_Run_FirstRefreshWithUnusableRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockTokenRateSource(ctrl)
	source.EXPECT().FetchTokenRate(gomock.Any()).Return(1e-320, nil)

	p := NewRateProvider(source, nil, testProviderConfig(), nil, newTestLogger())
	p.Run(context.Background(), 0)

	snap, ok := p.Snapshot()
	require.True(t, ok)
	assert.Equal(t, domain.RateSourceFallback, snap.Source)
	assert.Equal(t, 1.35, snap.TokenRate)
	assert.True(t, snap.Table.Valid())

	conv := NewConversionService(domain.DefaultMaxInputValue, nil).
		Convert("1000", domain.CurrencyStars, p.Table())
	assert.Equal(t, domain.DisplayAmounts{
		Stars:  "1000",
		TON:    "11.1111",
		USDT:   "15",
		Active: domain.CurrencyStars,
	}, conv.Display)
}

func TestRateProvider_Refresh_KeepsPreviousWhenFallbackUnusable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockTokenRateSource(ctrl)
	gomock.InOrder(
		source.EXPECT().FetchTokenRate(gomock.Any()).Return(testTokenRate, nil),
		source.EXPECT().FetchTokenRate(gomock.Any()).Return(0.0, errors.New("status 503")),
	)

	cfg := testProviderConfig()
	cfg.FallbackTokenRate = 1e-320
	p := NewRateProvider(source, nil, cfg, nil, newTestLogger())
	first, err := p.Refresh(context.Background())
	require.NoError(t, err)

	_, err = p.Refresh(context.Background())
	require.Error(t, err)

	current, ok := p.Snapshot()
	require.True(t, ok)
	assert.Same(t, first, current)
}

func TestRateProvider_Run_OnceWithoutInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockTokenRateSource(ctrl)
	source.EXPECT().FetchTokenRate(gomock.Any()).Return(testTokenRate, nil).Times(1)

	p := NewRateProvider(source, nil, testProviderConfig(), nil, newTestLogger())
	p.Run(context.Background(), 0)

	_, ok := p.Snapshot()
	assert.True(t, ok)
}

func TestRateProvider_Run_RefreshesUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var mu sync.Mutex
	calls := 0
	source := mocks.NewMockTokenRateSource(ctrl)
	source.EXPECT().FetchTokenRate(gomock.Any()).DoAndReturn(func(context.Context) (float64, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return testTokenRate + float64(calls), nil
	}).MinTimes(3)

	p := NewRateProvider(source, nil, testProviderConfig(), nil, newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls >= 3
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	snap, ok := p.Snapshot()
	require.True(t, ok)
	assert.Greater(t, snap.TokenRate, testTokenRate)
}

func TestRateProvider_HealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockTokenRateSource(ctrl)
	source.EXPECT().FetchTokenRate(gomock.Any()).Return(0.0, errors.New("down"))

	p := NewRateProvider(source, nil, testProviderConfig(), nil, newTestLogger())
	assert.Equal(t, "rates", p.Name())
	assert.Error(t, p.Ping(context.Background()))

	_, err := p.Refresh(context.Background())
	require.NoError(t, err)
	assert.NoError(t, p.Ping(context.Background()))
}
