package binder

import "go.trai.ch/seam/domain"

// ViewCache maps context keys to attached views for a single owning model.
// It carries no locking: the owning model's goroutine is the only mutator.
type ViewCache struct {
	enabled bool
	entries map[domain.ContextKey]domain.View
}

// NewViewCache creates a cache in the given mode.
func NewViewCache(enabled bool) *ViewCache {
	return &ViewCache{
		enabled: enabled,
		entries: make(map[domain.ContextKey]domain.View),
	}
}

// Configure sets the caching mode. Disabling clears all entries
// synchronously, atomically with the flag change.
func (c *ViewCache) Configure(enabled bool) {
	c.enabled = enabled
	if !enabled {
		clear(c.entries)
	}
}

// Enabled reports the current caching mode.
func (c *ViewCache) Enabled() bool {
	return c.enabled
}

// Put stores view under key (zero key maps to DefaultContext), overwriting
// any prior entry. It is a no-op while caching is disabled.
func (c *ViewCache) Put(key domain.ContextKey, view domain.View) {
	if !c.enabled {
		return
	}
	c.entries[key.OrDefault()] = view
}

// Get looks up the view cached under key (zero key maps to
// DefaultContext). Lookup behaves the same whether or not caching is
// currently enabled; entries only disappear when caching is disabled,
// which clears them.
func (c *ViewCache) Get(key domain.ContextKey) (domain.View, bool) {
	view, ok := c.entries[key.OrDefault()]
	return view, ok
}

// Len returns the number of cached entries.
func (c *ViewCache) Len() int {
	return len(c.entries)
}
