package domain

// AttachedEvent is published to observers after a view has been attached
// to its owning model. View is the normalized view, not the raw one the
// host handed over.
type AttachedEvent struct {
	View    View
	Context ContextKey
}
