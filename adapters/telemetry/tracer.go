// Package telemetry implements the tracing adapter on OpenTelemetry.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/seam/ports"
)

// OTelTracer is a concrete implementation of ports.Tracer using
// OpenTelemetry.
type OTelTracer struct {
	tracer trace.Tracer
}

var _ ports.Tracer = (*OTelTracer)(nil)

// NewOTelTracer creates a new OTelTracer with the given instrumentation
// name, resolving against the globally registered tracer provider.
func NewOTelTracer(name string) *OTelTracer {
	return &OTelTracer{tracer: otel.Tracer(name)}
}

// NewOTelTracerWithProvider creates an OTelTracer bound to a specific
// provider instead of the global one.
func NewOTelTracerWithProvider(name string, tp trace.TracerProvider) *OTelTracer {
	return &OTelTracer{tracer: tp.Tracer(name)}
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, span := t.tracer.Start(ctx, name)
	s := &otelSpan{span: span}
	for k, v := range cfg.Attributes {
		s.SetAttribute(k, v)
	}
	return ctx, s
}

// otelSpan adapts trace.Span to ports.Span.
type otelSpan struct {
	span trace.Span
}

// End completes the span.
func (s *otelSpan) End() {
	s.span.End()
}

// RecordError records an error and marks the span's status accordingly.
func (s *otelSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute sets a key/value attribute on the span.
func (s *otelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}
