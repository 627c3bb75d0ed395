package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stars-converter/config"
	httpHandler "stars-converter/internal/adapter/http/handler"
	"stars-converter/internal/adapter/http/middleware"
	"stars-converter/internal/adapter/metrics"
	"stars-converter/internal/adapter/ratesource"
	redisStorage "stars-converter/internal/adapter/storage/redis"
	"stars-converter/internal/core/ports"
	"stars-converter/internal/service"
	"stars-converter/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("CONVERTER_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Stars Converter")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	checkers := []ports.HealthChecker{}

	// Redis is optional: without it there is no rate cache and no rate limiting.
	var (
		rateCache ports.RateCache
		limiter   middleware.Limiter
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		rateCache = redisStorage.NewRateCache(rdb)
		limiter = redisStorage.NewRateLimitStore(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Warn().Msg("Redis disabled, running without rate cache and rate limiting")
	}

	// Rates
	source := ratesource.NewClient(cfg.Rates.Endpoint, cfg.Rates.Timeout, nil, logger.Component(log, "ratesource"))
	provider := service.NewRateProvider(source, rateCache, service.RateProviderConfig{
		StarsToUSDT:       cfg.Rates.StarsToUSDT,
		FallbackTokenRate: cfg.Rates.FallbackTokenRate,
		CacheTTL:          cfg.Rates.CacheTTL,
	}, m, logger.Component(log, "rates"))
	checkers = append(checkers, provider)

	// Conversions are served with neutral output until the first table lands.
	go provider.Run(ctx, cfg.Rates.RefreshInterval)

	// Core services
	conversionSvc := service.NewConversionService(cfg.Input.MaxValue, m)
	widgetSvc := service.NewWidgetService(
		service.NewSanitizer(cfg.Input.MaxValue),
		conversionSvc,
		provider,
		service.OverflowFeedback{
			MarkerDuration:     cfg.Input.MarkerDuration,
			VetoMarkerDuration: cfg.Input.VetoMarkerDuration,
			HapticPattern:      cfg.Input.HapticPattern(),
		},
		m,
		logger.Component(log, "widget"),
	)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		RateSvc:        provider,
		ConversionSvc:  conversionSvc,
		WidgetSvc:      widgetSvc,
		RateLimitStore: limiter,
		HealthCheckers: checkers,
		Metrics:        m,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		CORSMaxAge:     cfg.CORS.MaxAge,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
