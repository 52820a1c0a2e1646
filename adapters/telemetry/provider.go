package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/seam/ports"
)

// Provider owns the SDK tracer provider lifecycle for a process.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// NewProvider creates a tracer provider with the log bridge installed and
// registers it globally.
func NewProvider(logger ports.Logger) *Provider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewLogBridge(logger)),
	)
	otel.SetTracerProvider(tp)
	return &Provider{tp: tp}
}

// Shutdown flushes and stops the provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}
