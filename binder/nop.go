package binder

import (
	"context"
	"io"

	"go.trai.ch/seam/ports"
)

// nopLogger and nopTracer are the defaults used when no adapter is wired
// in, keeping the binder free of hard adapter dependencies.

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(error)          {}
func (nopLogger) SetOutput(io.Writer)  {}
func (nopLogger) SetJSON(bool)         {}

type nopTracer struct{}

func (nopTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, nopSpan{}
}

type nopSpan struct{}

func (nopSpan) End()                     {}
func (nopSpan) RecordError(error)        {}
func (nopSpan) SetAttribute(string, any) {}
