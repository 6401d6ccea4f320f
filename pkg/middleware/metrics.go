package middleware

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "wmsui").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use. It must also implement
	// prometheus.Gatherer for Handler to serve it.
	// Default: a fresh prometheus.Registry
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "wmsui",
		Buckets:   prometheus.DefBuckets,
	}
}

// Metrics holds the Prometheus collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry prometheus.Registerer

	apiRequests    *prometheus.CounterVec
	apiDuration    *prometheus.HistogramVec
	toastsShown    *prometheus.CounterVec
	bridgeEvents   *prometheus.CounterVec
	navigations    prometheus.Counter
	activeSessions prometheus.Gauge
	wsErrors       *prometheus.CounterVec
}

// NewMetrics registers the collectors.
//
// Metrics collected:
//   - wmsui_api_requests_total: outbound API calls by method and outcome
//   - wmsui_api_request_duration_seconds: outbound API call latency
//   - wmsui_toasts_total: toasts shown by type
//   - wmsui_bridge_events_total: browser events dispatched by type
//   - wmsui_navigations_total: navigations pushed to browsers
//   - wmsui_active_sessions: live page sessions
//   - wmsui_websocket_errors_total: bridge connection errors by type
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.Registry == nil {
		config.Registry = prometheus.NewRegistry()
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		registry: config.Registry,

		apiRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "api_requests_total",
			Help:        "Total number of backend API calls by method and outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"method", "outcome"}),

		apiDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "api_request_duration_seconds",
			Help:        "Backend API call duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"method"}),

		toastsShown: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_total",
			Help:        "Total number of toasts shown by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),

		bridgeEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "bridge_events_total",
			Help:        "Total number of browser events dispatched by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),

		navigations: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigations_total",
			Help:        "Total number of navigations pushed to browsers",
			ConstLabels: config.ConstLabels,
		}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_sessions",
			Help:        "Number of live page sessions",
			ConstLabels: config.ConstLabels,
		}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "websocket_errors_total",
			Help:        "Total WebSocket errors by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if g, ok := m.registry.(prometheus.Gatherer); ok {
		return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}

// ObserveRequest records one outbound API call. Outcome is "success" or
// an error kind.
func (m *Metrics) ObserveRequest(method, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.apiRequests.WithLabelValues(method, outcome).Inc()
	m.apiDuration.WithLabelValues(method).Observe(d.Seconds())
}

// RecordToast records a toast being shown.
func (m *Metrics) RecordToast(typ string) {
	if m == nil {
		return
	}
	m.toastsShown.WithLabelValues(typ).Inc()
}

// RecordEvent records a browser event dispatched through the bridge.
func (m *Metrics) RecordEvent(typ string) {
	if m == nil {
		return
	}
	m.bridgeEvents.WithLabelValues(typ).Inc()
}

// RecordNavigation records a navigation pushed to a browser.
func (m *Metrics) RecordNavigation() {
	if m == nil {
		return
	}
	m.navigations.Inc()
}

// RecordSessionOpen records a new page session.
func (m *Metrics) RecordSessionOpen() {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
}

// RecordSessionClose records a page session ending.
func (m *Metrics) RecordSessionClose() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}

// RecordWSError records a bridge connection error.
func (m *Metrics) RecordWSError(typ string) {
	if m == nil {
		return
	}
	m.wsErrors.WithLabelValues(typ).Inc()
}
