package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"stars-converter/internal/core/domain"
	"stars-converter/internal/core/ports"

	"github.com/rs/zerolog"
)

// Rate fetch outcomes reported to metrics.
const (
	FetchOutcomeLive     = "live"
	FetchOutcomeCache    = "cache"
	FetchOutcomeFallback = "fallback"
)

var errRatesNotReady = errors.New("rate table not published yet")

// RateProviderConfig holds the constants the rate table is built from.
type RateProviderConfig struct {
	StarsToUSDT       float64
	FallbackTokenRate float64
	CacheTTL          time.Duration
}

// RateProvider implements ports.RateService. It resolves the token rate
// without ever failing and publishes complete rate tables atomically.
type RateProvider struct {
	source   ports.TokenRateSource
	cache    ports.RateCache // nil = no caching
	cfg      RateProviderConfig
	metrics  ports.Metrics
	log      zerolog.Logger
	now      func() time.Time
	snapshot atomic.Pointer[domain.RateSnapshot]
}

// NewRateProvider creates a rate provider. cache and metrics may be nil.
func NewRateProvider(
	source ports.TokenRateSource,
	cache ports.RateCache,
	cfg RateProviderConfig,
	metrics ports.Metrics,
	log zerolog.Logger,
) *RateProvider {
	return &RateProvider{
		source:  source,
		cache:   cache,
		cfg:     cfg,
		metrics: metricsOrNop(metrics),
		log:     log,
		now:     time.Now,
	}
}

// FetchTokenRate returns the token price in usdt. It makes a single
// attempt at the source (after consulting the cache) and substitutes the
// configured fallback on any failure, including a rate the table cannot be
// derived from. Only rates that build a valid table are cached.
func (p *RateProvider) FetchTokenRate(ctx context.Context) (float64, domain.RateSource) {
	if p.cache != nil {
		rate, ok, err := p.cache.Get(ctx)
		switch {
		case err != nil:
			p.log.Warn().Err(err).Msg("rate cache read failed, asking source")
		case ok && p.usable(rate):
			p.metrics.ObserveRateFetch(FetchOutcomeCache)
			return rate, domain.RateSourceCache
		case ok:
			p.log.Warn().Float64("token_rate", rate).Msg("cached token rate unusable, asking source")
		}
	}

	rate, err := p.source.FetchTokenRate(ctx)
	if err == nil && !p.usable(rate) {
		err = fmt.Errorf("token rate %v does not yield a valid rate table", rate)
	}
	if err != nil {
		p.log.Warn().
			Err(err).
			Float64("fallback_rate", p.cfg.FallbackTokenRate).
			Msg("token rate fetch failed, using fallback")
		p.metrics.ObserveRateFetch(FetchOutcomeFallback)
		return p.cfg.FallbackTokenRate, domain.RateSourceFallback
	}

	p.metrics.ObserveRateFetch(FetchOutcomeLive)
	if p.cache != nil {
		if err := p.cache.Set(ctx, rate, p.cfg.CacheTTL); err != nil {
			p.log.Warn().Err(err).Msg("rate cache write failed")
		}
	}
	return rate, domain.RateSourceLive
}

func (p *RateProvider) usable(tokenRate float64) bool {
	_, err := p.BuildRateTable(tokenRate)
	return err == nil
}

// BuildRateTable derives the six rates from the configured stars price and
// tokenRate.
func (p *RateProvider) BuildRateTable(tokenRate float64) (domain.RateTable, error) {
	return domain.BuildRateTable(p.cfg.StarsToUSDT, tokenRate)
}

// Refresh resolves the token rate once, builds the table and publishes it.
// The build only fails when the fallback rate itself is unusable; the
// previous snapshot then stays in place.
func (p *RateProvider) Refresh(ctx context.Context) (*domain.RateSnapshot, error) {
	rate, source := p.FetchTokenRate(ctx)

	table, err := p.BuildRateTable(rate)
	if err != nil {
		p.log.Error().Err(err).Float64("token_rate", rate).Msg("cannot build rate table")
		return nil, fmt.Errorf("building rate table: %w", err)
	}

	snap := &domain.RateSnapshot{
		Table:     table,
		TokenRate: rate,
		Source:    source,
		FetchedAt: p.now().UTC(),
	}
	p.snapshot.Store(snap)
	p.metrics.SetTokenRate(rate)

	p.log.Info().
		Float64("token_rate", rate).
		Str("source", string(source)).
		Msg("rate table published")

	return snap, nil
}

// Snapshot returns the current snapshot; ok is false before the first
// successful Refresh.
func (p *RateProvider) Snapshot() (*domain.RateSnapshot, bool) {
	snap := p.snapshot.Load()
	return snap, snap != nil
}

// Table returns the current rate table, or nil while none is published.
func (p *RateProvider) Table() *domain.RateTable {
	snap := p.snapshot.Load()
	if snap == nil {
		return nil
	}
	table := snap.Table
	return &table
}

// Ping implements ports.HealthChecker: the provider is healthy once a
// table has been published.
func (p *RateProvider) Ping(context.Context) error {
	if p.snapshot.Load() == nil {
		return errRatesNotReady
	}
	return nil
}

// Name returns the dependency name.
func (p *RateProvider) Name() string {
	return "rates"
}

// Run refreshes once and then, if interval is positive, again on every
// tick until ctx is done.
func (p *RateProvider) Run(ctx context.Context, interval time.Duration) {
	_, _ = p.Refresh(ctx)
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = p.Refresh(ctx)
		}
	}
}
