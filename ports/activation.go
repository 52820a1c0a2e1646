package ports

// Activatable is an optional capability on an owning model, reporting
// whether the model is the one currently being displayed. Presence is
// checked by type assertion; a model without it is treated as always
// eligible for readiness scheduling.
//
//go:generate mockgen -source=activation.go -destination=mocks/mock_activation.go -package=mocks
type Activatable interface {
	// IsActive reports whether the model is currently active.
	IsActive() bool

	// OnActivated registers fn to be invoked on each transition into the
	// active state. The returned cancel func removes the registration and
	// must be safe to call more than once.
	OnActivated(fn func()) (cancel func())
}
