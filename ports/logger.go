package ports

import "io"

// Logger defines the logging interface used across the module.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs a debug message with optional key/value pairs.
	Debug(msg string, args ...any)

	// Info logs an informational message with optional key/value pairs.
	Info(msg string, args ...any)

	// Warn logs a warning message with optional key/value pairs.
	Warn(msg string, args ...any)

	// Error logs an error, unfolding wrapped causes where available.
	Error(err error)

	// SetOutput updates the logger's output destination.
	SetOutput(w io.Writer)

	// SetJSON switches between JSON and pretty output.
	SetJSON(enable bool)
}
