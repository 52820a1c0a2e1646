package teaview

import (
	"weak"

	"go.trai.ch/seam/domain"
	"go.trai.ch/seam/ports"
)

// Adapter implements ports.PlatformAdapter for terminal surfaces. The
// host program drives it: NotifyLoaded after a surface's first render,
// NotifyLayoutSettled after a resize or reflow has been applied. Like the
// binder it serves, it expects single-goroutine use from the program's
// update loop.
type Adapter struct {
	logger      ports.Logger
	loadHooks   map[*Surface][]func(domain.View)
	settleHooks map[*Surface][]func(domain.View)
}

var _ ports.PlatformAdapter = (*Adapter)(nil)

// New creates an adapter. A nil logger is allowed; diagnostics are then
// dropped.
func New(logger ports.Logger) *Adapter {
	return &Adapter{
		logger:      logger,
		loadHooks:   make(map[*Surface][]func(domain.View)),
		settleHooks: make(map[*Surface][]func(domain.View)),
	}
}

// UnwrapGenerated strips any chain of host-injected frames, returning the
// first real surface. Idempotent for views that are not wrapped.
func (a *Adapter) UnwrapGenerated(v domain.View) domain.View {
	for {
		f, ok := v.(*Frame)
		if !ok || f.content == nil {
			return v
		}
		v = f.content
	}
}

// OnFirstLoad invokes fn once the surface has rendered for the first
// time. A surface that already rendered gets its callback immediately.
func (a *Adapter) OnFirstLoad(v domain.View, fn func(domain.View)) {
	s, ok := v.(*Surface)
	if !ok {
		a.warnForeign(v)
		return
	}
	if s.loaded {
		fn(s)
		return
	}
	a.loadHooks[s] = append(a.loadHooks[s], fn)
}

// OnNextLayoutSettle invokes fn once after the surface's next completed
// layout pass.
func (a *Adapter) OnNextLayoutSettle(v domain.View, fn func(domain.View)) {
	s, ok := v.(*Surface)
	if !ok {
		a.warnForeign(v)
		return
	}
	a.settleHooks[s] = append(a.settleHooks[s], fn)
}

// Weak returns a non-owning reference to the surface backed by the
// runtime's weak pointers. Foreign view types yield a dead reference.
func (a *Adapter) Weak(v domain.View) ports.WeakView {
	s, ok := v.(*Surface)
	if !ok {
		a.warnForeign(v)
		return deadRef{}
	}
	return weakSurface{ptr: weak.Make(s)}
}

// NotifyLoaded marks the surface loaded and fires pending first-load
// hooks exactly once each. Later calls for the same surface are no-ops
// for hooks already delivered.
func (a *Adapter) NotifyLoaded(s *Surface) {
	s.loaded = true
	hooks := a.loadHooks[s]
	delete(a.loadHooks, s)
	for _, fn := range hooks {
		fn(s)
	}
}

// NotifyLayoutSettled fires pending layout-settle hooks for the surface,
// each exactly once per registration.
func (a *Adapter) NotifyLayoutSettled(s *Surface) {
	hooks := a.settleHooks[s]
	delete(a.settleHooks, s)
	for _, fn := range hooks {
		fn(s)
	}
}

// Release drops any pending hooks for a surface the host is discarding,
// so the adapter does not keep it alive.
func (a *Adapter) Release(s *Surface) {
	delete(a.loadHooks, s)
	delete(a.settleHooks, s)
}

func (a *Adapter) warnForeign(v domain.View) {
	if a.logger == nil {
		return
	}
	a.logger.Warn("ignoring view of foreign type", "type", typeName(v))
}

// weakSurface adapts weak.Pointer to ports.WeakView.
type weakSurface struct {
	ptr weak.Pointer[Surface]
}

func (w weakSurface) Get() (domain.View, bool) {
	s := w.ptr.Value()
	if s == nil {
		return nil, false
	}
	return s, true
}

// deadRef is returned for foreign view types; it never resolves.
type deadRef struct{}

func (deadRef) Get() (domain.View, bool) {
	return nil, false
}
