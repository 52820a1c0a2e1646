package binder_test

import (
	"go.trai.ch/seam/domain"
	"go.trai.ch/seam/ports"
)

// fakeWeak is a reclaimable-reference stand-in for ports.WeakView.
type fakeWeak struct {
	view  domain.View
	alive bool
}

func (w *fakeWeak) Get() (domain.View, bool) {
	if !w.alive {
		return nil, false
	}
	return w.view, true
}

// reclaim simulates the view being collected.
func (w *fakeWeak) reclaim() {
	w.view = nil
	w.alive = false
}

// hostWrapper stands in for a framework-injected container around the real
// renderable surface.
type hostWrapper struct {
	inner domain.View
}

type pendingHook struct {
	view domain.View
	fn   func(domain.View)
}

// fakeAdapter is a hand-driven test double for ports.PlatformAdapter. Load
// and layout-settle hooks queue up until the test pumps them.
type fakeAdapter struct {
	loadHooks   []pendingHook
	settleHooks []pendingHook
	weakRefs    []*fakeWeak
}

func (a *fakeAdapter) UnwrapGenerated(v domain.View) domain.View {
	if w, ok := v.(*hostWrapper); ok {
		return w.inner
	}
	return v
}

func (a *fakeAdapter) OnFirstLoad(v domain.View, fn func(domain.View)) {
	a.loadHooks = append(a.loadHooks, pendingHook{view: v, fn: fn})
}

func (a *fakeAdapter) OnNextLayoutSettle(v domain.View, fn func(domain.View)) {
	a.settleHooks = append(a.settleHooks, pendingHook{view: v, fn: fn})
}

func (a *fakeAdapter) Weak(v domain.View) ports.WeakView {
	ref := &fakeWeak{view: v, alive: true}
	a.weakRefs = append(a.weakRefs, ref)
	return ref
}

// flushLoad fires and drains all queued first-load hooks.
func (a *fakeAdapter) flushLoad() {
	hooks := a.loadHooks
	a.loadHooks = nil
	for _, h := range hooks {
		h.fn(h.view)
	}
}

// settleLayout fires and drains all queued layout-settle hooks.
func (a *fakeAdapter) settleLayout() {
	hooks := a.settleHooks
	a.settleHooks = nil
	for _, h := range hooks {
		h.fn(h.view)
	}
}

// plainModel has no optional capabilities at all.
type plainModel struct{}

// recordingModel records every lifecycle hook invocation in order.
type recordingModel struct {
	attached []domain.AttachedEvent
	loaded   []domain.View
	ready    []domain.View
	sequence []string
}

func (m *recordingModel) OnViewAttached(view domain.View, key domain.ContextKey) {
	m.attached = append(m.attached, domain.AttachedEvent{View: view, Context: key})
	m.sequence = append(m.sequence, "attached")
}

func (m *recordingModel) OnViewLoaded(view domain.View) {
	m.loaded = append(m.loaded, view)
	m.sequence = append(m.sequence, "loaded")
}

func (m *recordingModel) OnViewReady(view domain.View) {
	m.ready = append(m.ready, view)
	m.sequence = append(m.sequence, "ready")
}

// activatableModel adds the activation capability on top of the recording
// hooks. Activate fires every live subscription, mimicking a transition
// into the active state.
type activatableModel struct {
	recordingModel
	active bool
	nextID int
	subs   map[int]func()
}

func newActivatableModel(active bool) *activatableModel {
	return &activatableModel{
		active: active,
		subs:   make(map[int]func()),
	}
}

func (m *activatableModel) IsActive() bool {
	return m.active
}

func (m *activatableModel) OnActivated(fn func()) (cancel func()) {
	m.nextID++
	id := m.nextID
	m.subs[id] = fn
	return func() {
		delete(m.subs, id)
	}
}

func (m *activatableModel) Activate() {
	m.active = true
	// Snapshot: callbacks may unsubscribe mid-delivery.
	fns := make([]func(), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn()
	}
}

func (m *activatableModel) Deactivate() {
	m.active = false
}
