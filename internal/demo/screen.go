// Package demo implements the seam demo program: a small bubbletea host
// with two presentation models whose views are bound through the binder.
package demo

import (
	"go.trai.ch/seam/adapters/teaview"
	"go.trai.ch/seam/binder"
	"go.trai.ch/seam/domain"
	"go.trai.ch/seam/ports"
)

// Screen is one presentation model of the demo. It implements the
// activation capability plus all three lifecycle handlers, so switching
// screens exercises the deferred-ready path end to end.
type Screen struct {
	name   string
	binder *binder.Binder

	active bool
	nextID int
	subs   map[int]func()

	loadedCount int
	readyCount  int
}

// NewScreen creates a screen and its binder.
func NewScreen(name string, adapter ports.PlatformAdapter, opts ...binder.Option) (*Screen, error) {
	s := &Screen{
		name: name,
		subs: make(map[int]func()),
	}
	b, err := binder.New(s, adapter, opts...)
	if err != nil {
		return nil, err
	}
	s.binder = b
	return s, nil
}

// Name returns the screen's display name.
func (s *Screen) Name() string {
	return s.name
}

// Binder returns the screen's view binder.
func (s *Screen) Binder() *binder.Binder {
	return s.binder
}

// IsActive reports whether this screen is the one on display.
func (s *Screen) IsActive() bool {
	return s.active
}

// OnActivated registers fn for activation transitions.
func (s *Screen) OnActivated(fn func()) (cancel func()) {
	s.nextID++
	id := s.nextID
	s.subs[id] = fn
	return func() {
		delete(s.subs, id)
	}
}

// Activate marks the screen active and fires activation subscriptions.
func (s *Screen) Activate() {
	if s.active {
		return
	}
	s.active = true

	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn()
	}
}

// Deactivate marks the screen inactive.
func (s *Screen) Deactivate() {
	s.active = false
}

// OnViewAttached refreshes the surface content as soon as it is bound.
func (s *Screen) OnViewAttached(view domain.View, _ domain.ContextKey) {
	s.refresh(view)
}

// OnViewLoaded counts structural loads.
func (s *Screen) OnViewLoaded(view domain.View) {
	s.loadedCount++
	s.refresh(view)
}

// OnViewReady counts layout-settled invocations. Firing exactly once per
// attach is the behavior the demo makes visible.
func (s *Screen) OnViewReady(view domain.View) {
	s.readyCount++
	s.refresh(view)
}

// Surface returns the screen's bound surface, if one is attached.
func (s *Screen) Surface() (*teaview.Surface, bool) {
	v, ok := s.binder.View("")
	if !ok {
		return nil, false
	}
	if f, isFrame := v.(*teaview.Frame); isFrame {
		return f.Content(), true
	}
	surface, isSurface := v.(*teaview.Surface)
	return surface, isSurface
}

func (s *Screen) refresh(view domain.View) {
	surface, ok := view.(*teaview.Surface)
	if !ok {
		return
	}
	surface.SetLines(statusLines(s)...)
}
