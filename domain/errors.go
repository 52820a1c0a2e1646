package domain

import "go.trai.ch/zerr"

var (
	// ErrNilView is returned when a nil view is handed to AttachView.
	// A silently dropped attach would leave a model without its expected
	// view, so this is surfaced loudly instead of absorbed.
	ErrNilView = zerr.New("nil view")

	// ErrNilAdapter is returned when a binder is constructed without a
	// platform adapter.
	ErrNilAdapter = zerr.New("nil platform adapter")

	// ErrNilOwner is returned when a binder is constructed without an
	// owning model.
	ErrNilOwner = zerr.New("nil owner")

	// ErrConfigNotFound is returned when no seam.yaml can be discovered
	// from the working directory upward.
	ErrConfigNotFound = zerr.New("seam.yaml not found")

	// ErrInvalidLogLevel is returned when the configured log level is not
	// one of debug, info, warn or error.
	ErrInvalidLogLevel = zerr.New("invalid log level, expected 'debug', 'info', 'warn' or 'error'")
)
