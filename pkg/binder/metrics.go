package binder

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures binder metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "statebind").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for dispatch duration.
	// Default: prometheus.DefBuckets
	Buckets []float64
}

// MetricsOption configures binder metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the dispatch duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// Metrics holds Prometheus collectors shared by any number of binders.
// A nil *Metrics records nothing.
type Metrics struct {
	handlesGenerated   prometheus.Counter
	handleCollisions   prometheus.Counter
	activations        prometheus.Counter
	reactionsActivated prometheus.Counter
	pending            prometheus.Gauge
	dispatches         *prometheus.CounterVec
	dispatchDuration   *prometheus.HistogramVec
}

// NewMetrics creates and registers binder metrics on reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer, opts ...MetricsOption) *Metrics {
	cfg := MetricsConfig{
		Namespace: "statebind",
		Buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		handlesGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "handles_generated_total",
			Help:        "Total number of pending-reaction handles drawn from the token source",
			ConstLabels: cfg.ConstLabels,
		}),
		handleCollisions: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "handle_collisions_total",
			Help:        "Total number of generated handles discarded because they were already pending",
			ConstLabels: cfg.ConstLabels,
		}),
		activations: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "activations_total",
			Help:        "Total number of Subscribe calls",
			ConstLabels: cfg.ConstLabels,
		}),
		reactionsActivated: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "reactions_activated_total",
			Help:        "Total number of reactions turned into standing subscriptions",
			ConstLabels: cfg.ConstLabels,
		}),
		pending: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Name:        "pending_reactions",
			Help:        "Number of reactions waiting for activation",
			ConstLabels: cfg.ConstLabels,
		}),
		dispatches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "dispatches_total",
			Help:        "Total number of change-channel dispatches",
			ConstLabels: cfg.ConstLabels,
		}, []string{"source"}),
		dispatchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Name:        "dispatch_duration_seconds",
			Help:        "Time spent applying a mutation and notifying subscribers",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}, []string{"source"}),
	}
}

func (m *Metrics) handleGenerated() {
	if m == nil {
		return
	}
	m.handlesGenerated.Inc()
}

func (m *Metrics) handleCollision() {
	if m == nil {
		return
	}
	m.handleCollisions.Inc()
}

func (m *Metrics) pendingAdded(delta int) {
	if m == nil {
		return
	}
	m.pending.Add(float64(delta))
}

func (m *Metrics) activated(n int) {
	if m == nil {
		return
	}
	m.activations.Inc()
	m.reactionsActivated.Add(float64(n))
	m.pending.Sub(float64(n))
}

func (m *Metrics) dispatched(source string, d time.Duration) {
	if m == nil {
		return
	}
	m.dispatches.WithLabelValues(source).Inc()
	m.dispatchDuration.WithLabelValues(source).Observe(d.Seconds())
}
