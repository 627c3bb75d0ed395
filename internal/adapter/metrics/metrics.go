package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "converter"

// ConverterMetrics implements ports.Metrics on a private Prometheus
// registry.
type ConverterMetrics struct {
	registry *prometheus.Registry

	RateFetchTotal   *prometheus.CounterVec
	TokenRate        prometheus.Gauge
	OverflowTotal    *prometheus.CounterVec
	ConversionsTotal *prometheus.CounterVec
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
}

// New registers all converter metrics plus the Go and process collectors.
func New() *ConverterMetrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &ConverterMetrics{
		registry: reg,

		RateFetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_fetch_total",
				Help:      "Token rate resolutions by outcome (live, cache, fallback).",
			},
			[]string{"outcome"},
		),

		TokenRate: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "token_rate",
				Help:      "Token price in usdt of the published rate table.",
			},
		),

		OverflowTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "overflow_total",
				Help:      "Amounts rejected or clamped at the input bound.",
			},
			[]string{"source"},
		),

		ConversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "conversions_total",
				Help:      "Conversions computed, by base currency and whether the neutral display was shown.",
			},
			[]string{"base", "neutral"},
		),

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route and status.",
			},
			[]string{"method", "route", "status"},
		),

		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

func (m *ConverterMetrics) ObserveRateFetch(outcome string) {
	m.RateFetchTotal.WithLabelValues(outcome).Inc()
}

func (m *ConverterMetrics) SetTokenRate(rate float64) {
	m.TokenRate.Set(rate)
}

func (m *ConverterMetrics) ObserveOverflow(source string) {
	m.OverflowTotal.WithLabelValues(source).Inc()
}

func (m *ConverterMetrics) ObserveConversion(base string, neutral bool) {
	m.ConversionsTotal.WithLabelValues(base, strconv.FormatBool(neutral)).Inc()
}

// ObserveHTTP records one served request.
func (m *ConverterMetrics) ObserveHTTP(method, route string, status int, seconds float64) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(seconds)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *ConverterMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
