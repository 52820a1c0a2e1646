// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/seam/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	level    slog.Level
	jsonMode bool
	output   io.Writer
}

// Option configures a Logger at construction time.
type Option func(*Logger)

// WithLevel sets the minimum level the logger emits.
func WithLevel(level slog.Level) Option {
	return func(l *Logger) {
		l.level = level
	}
}

// New creates a new Logger writing pretty output to stderr.
func New(opts ...Option) *Logger {
	l := &Logger{
		level:  slog.LevelInfo,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = slog.New(NewPrettyHandler(l.output, &slog.HandlerOptions{
		Level: l.level,
	}))
	return l
}

var _ ports.Logger = (*Logger)(nil)

// SetOutput updates the logger's output destination. A nil writer falls
// back to os.Stderr. The current JSON mode and level are preserved.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuildHandler()
}

// SetJSON switches between JSON and pretty logging. The output destination
// and level are preserved.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuildHandler()
}

// SetLevel updates the minimum emitted level.
func (l *Logger) SetLevel(level slog.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.level = level
	l.rebuildHandler()
}

// rebuildHandler swaps the slog handler for the current settings. Callers
// must hold the write lock.
func (l *Logger) rebuildHandler() {
	opts := &slog.HandlerOptions{Level: l.level}
	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(l.output, opts)
	} else {
		handler = NewPrettyHandler(l.output, opts)
	}
	l.logger = slog.New(handler)
}

// Debug logs a debug message with optional key/value pairs.
func (l *Logger) Debug(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg, args...)
}

// Info logs an informational message with optional key/value pairs.
func (l *Logger) Info(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, args...)
}

// Warn logs a warning message with optional key/value pairs.
func (l *Logger) Warn(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, args...)
}

// Error logs an error. In pretty mode the wrapped cause chain is unfolded
// into a "Caused by" block; in JSON mode the error is attached as a field.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}
