package telemetry

import (
	"context"

	"go.trai.ch/seam/ports"
)

// NoopTracer is a ports.Tracer that records nothing. It is the default
// wiring when telemetry is disabled.
type NoopTracer struct{}

var _ ports.Tracer = NoopTracer{}

// NewNoop returns a tracer that records nothing.
func NewNoop() NoopTracer {
	return NoopTracer{}
}

// Start returns the context unchanged and a span that ignores everything.
func (NoopTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End()                     {}
func (noopSpan) RecordError(error)        {}
func (noopSpan) SetAttribute(string, any) {}
