package ports

import "context"

// SpanConfig holds configuration applied by SpanOptions.
type SpanConfig struct {
	// Attributes set on the span at start time.
	Attributes map[string]any
}

// SpanOption configures a span at creation.
type SpanOption func(*SpanConfig)

// WithAttribute sets an attribute on the span at start time.
func WithAttribute(key string, value any) SpanOption {
	return func(c *SpanConfig) {
		if c.Attributes == nil {
			c.Attributes = make(map[string]any)
		}
		c.Attributes[key] = value
	}
}

// Tracer is the abstraction for distributed tracing. It decouples the
// binder from any concrete telemetry backend.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start creates a new span with the given name.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}

// Span represents a single traced operation.
type Span interface {
	// End completes the span.
	End()

	// RecordError records an error on the span.
	RecordError(err error)

	// SetAttribute sets a key/value attribute on the span.
	SetAttribute(key string, value any)
}
