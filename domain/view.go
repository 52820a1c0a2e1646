// Package domain contains the core domain types for view binding.
package domain

// View is an opaque handle to a renderable surface. The concrete type is
// owned by the platform adapter; this core never inspects it beyond
// identity.
type View = any

// ContextKey selects which cached view applies to a display scenario.
// The zero value is substituted with DefaultContext everywhere a key is
// accepted.
type ContextKey string

// DefaultContext is the process-wide context used when a caller does not
// supply an explicit one.
const DefaultContext ContextKey = "default"

// OrDefault returns the key itself, or DefaultContext for the zero value.
func (k ContextKey) OrDefault() ContextKey {
	if k == "" {
		return DefaultContext
	}
	return k
}
