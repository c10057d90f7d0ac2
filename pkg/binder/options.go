package binder

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/statebind/pkg/token"
)

// defaultTracerName is used by WithTracing.
const defaultTracerName = "statebind"

// config holds construction-time settings for a Binder.
type config struct {
	tokens      token.Source
	tokenLength int
	logger      *slog.Logger
	metrics     *Metrics
	tracer      trace.Tracer
	ctx         context.Context
}

func defaultConfig() config {
	return config{
		tokens:      token.Random(),
		tokenLength: DefaultTokenLength,
		logger:      slog.Default().With("component", "binder"),
		ctx:         context.Background(),
	}
}

// Option configures a Binder.
type Option func(*config)

// WithTokenSource sets the source of pending-reaction handles.
// A nil source keeps the default crypto-random source.
func WithTokenSource(src token.Source) Option {
	return func(c *config) {
		if src != nil {
			c.tokens = src
		}
	}
}

// WithTokenLength sets the handle length.
//
// A value <= 0 will be normalized to DefaultTokenLength.
func WithTokenLength(n int) Option {
	return func(c *config) {
		c.tokenLength = n
	}
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics records binder activity on m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithTracer wraps every dispatch in a span from tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *config) {
		c.tracer = tracer
	}
}

// WithTracing is WithTracer using the global OpenTelemetry provider.
// Configure the provider with otel.SetTracerProvider before creating binders.
func WithTracing() Option {
	return WithTracer(otel.Tracer(defaultTracerName))
}

// WithContext sets the parent context of dispatch spans started by Action
// and by event listeners. A nil ctx keeps context.Background().
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}
