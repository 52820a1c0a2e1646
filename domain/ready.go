package domain

// ReadyState represents the state of a deferred readiness registration.
type ReadyState string

const (
	// ReadyPending indicates the registration is waiting for the owning
	// model to activate.
	ReadyPending ReadyState = "Pending"
	// ReadyFired indicates the ready hook has been handed to the platform
	// adapter for scheduling.
	ReadyFired ReadyState = "Fired"
	// ReadyExpired indicates the view was reclaimed before activation and
	// the ready hook will never fire.
	ReadyExpired ReadyState = "Expired"
)

// Terminal reports whether no further transitions are possible.
func (s ReadyState) Terminal() bool {
	return s == ReadyFired || s == ReadyExpired
}
