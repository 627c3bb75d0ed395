package handler

import (
	"net/http"
	"time"

	"stars-converter/internal/adapter/http/middleware"
	"stars-converter/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// defaultMaxBodyBytes is plenty for a widget event with a pasted payload.
const defaultMaxBodyBytes = 64 << 10

// MetricsExporter observes requests and serves the exposition endpoint.
type MetricsExporter interface {
	middleware.HTTPObserver
	Handler() http.Handler
}

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	RateSvc        ports.RateService
	ConversionSvc  ports.ConversionService
	WidgetSvc      ports.WidgetService
	RateLimitStore middleware.Limiter // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Metrics        MetricsExporter // nil = no /metrics
	AllowedOrigins []string
	CORSMaxAge     time.Duration
	MaxBodyBytes   int64 // 0 = default
	Mode           string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}
	r := gin.New()

	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.Observe(deps.Metrics))
	}
	r.Use(middleware.CORS(deps.AllowedOrigins, deps.CORSMaxAge))
	r.Use(middleware.MaxBodySize(maxBody))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	ratesHandler := NewRatesHandler(deps.RateSvc)
	v1.GET("/rates", rl(middleware.GroupRates), ratesHandler.GetRates)

	convertHandler := NewConvertHandler(deps.ConversionSvc, deps.RateSvc)
	v1.POST("/convert", rl(middleware.GroupConvert), convertHandler.Convert)

	widgetHandler := NewWidgetHandler(deps.WidgetSvc)
	widget := v1.Group("/widget")
	{
		widget.POST("/events", rl(middleware.GroupWidget), widgetHandler.HandleEvent)
	}

	return r
}
