// Package binder implements the binding layer between a presentation model
// and the views that render it: a per-context cache of attached views and
// the sequencing of the attach, load and ready lifecycle hooks.
package binder

import (
	"context"

	"go.trai.ch/seam/domain"
	"go.trai.ch/seam/ports"
)

// ViewAttachedHandler is an optional capability on the owning model,
// invoked synchronously after a view has been attached and normalized.
type ViewAttachedHandler interface {
	OnViewAttached(view domain.View, key domain.ContextKey)
}

// ViewLoadedHandler is an optional capability on the owning model, invoked
// once the platform reports the view structurally loaded.
type ViewLoadedHandler interface {
	OnViewLoaded(view domain.View)
}

// ViewReadyHandler is an optional capability on the owning model, invoked
// once the view's layout has settled while the model is (or has become)
// active.
type ViewReadyHandler interface {
	OnViewReady(view domain.View)
}

// Option configures a Binder.
type Option func(*Binder)

// WithLogger sets the logger used for lifecycle diagnostics.
func WithLogger(l ports.Logger) Option {
	return func(b *Binder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithTracer sets the tracer used to instrument attach operations.
func WithTracer(t ports.Tracer) Option {
	return func(b *Binder) {
		if t != nil {
			b.tracer = t
		}
	}
}

// WithCacheDisabled starts the binder with view caching turned off.
func WithCacheDisabled() Option {
	return func(b *Binder) {
		b.cache.Configure(false)
	}
}

type observer struct {
	id int
	fn func(domain.AttachedEvent)
}

// Binder sequences view attachment for one owning model. All methods must
// be called from the single goroutine that owns the model's UI state; no
// internal locking is provided.
type Binder struct {
	owner   any
	adapter ports.PlatformAdapter
	logger  ports.Logger
	tracer  ports.Tracer
	cache   *ViewCache

	observers  []observer
	observerID int
}

// New creates a Binder for the given owning model. The owner is probed by
// type assertion for the optional capabilities (ports.Activatable and the
// three handler interfaces); each is a no-op when absent.
func New(owner any, adapter ports.PlatformAdapter, opts ...Option) (*Binder, error) {
	if owner == nil {
		return nil, domain.ErrNilOwner
	}
	if adapter == nil {
		return nil, domain.ErrNilAdapter
	}

	b := &Binder{
		owner:   owner,
		adapter: adapter,
		logger:  nopLogger{},
		tracer:  nopTracer{},
		cache:   NewViewCache(true),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// AttachView records raw under key, normalizes it through the platform
// adapter, wires the load hook, notifies the owner and observers, and
// schedules the ready hook: immediately when the owner has no activation
// capability or is currently active, otherwise deferred until the owner's
// next activation.
//
// The cache deliberately holds the raw view under the caller-supplied key
// while every later hook operates on the normalized view: the cache
// reflects what the host handed over, behavior follows the real surface.
func (b *Binder) AttachView(raw domain.View, key domain.ContextKey) error {
	if raw == nil {
		return domain.ErrNilView
	}
	key = key.OrDefault()

	_, span := b.tracer.Start(context.Background(), "seam.attach",
		ports.WithAttribute("seam.context", string(key)))
	defer span.End()

	b.cache.Put(key, raw)

	view := b.adapter.UnwrapGenerated(raw)
	b.adapter.OnFirstLoad(view, b.notifyLoaded)

	if h, ok := b.owner.(ViewAttachedHandler); ok {
		h.OnViewAttached(view, key)
	}
	b.publishAttached(domain.AttachedEvent{View: view, Context: key})

	act, activatable := b.owner.(ports.Activatable)
	deferred := activatable && !act.IsActive()
	span.SetAttribute("seam.deferred", deferred)

	if deferred {
		b.deferReady(act, b.adapter.Weak(view))
		b.logger.Debug("view attached, ready deferred until activation", "context", string(key))
		return nil
	}

	b.adapter.OnNextLayoutSettle(view, b.notifyReady)
	b.logger.Debug("view attached, ready scheduled", "context", string(key))
	return nil
}

// View returns the view cached under key, applying the same default
// context substitution as AttachView.
func (b *Binder) View(key domain.ContextKey) (domain.View, bool) {
	return b.cache.Get(key)
}

// ConfigureCache sets the caching mode. Disabling clears all cached views
// synchronously.
func (b *Binder) ConfigureCache(enabled bool) {
	b.cache.Configure(enabled)
	if !enabled {
		b.logger.Debug("view cache disabled, entries cleared")
	}
}

// OnAttached registers fn to receive attached notifications. The returned
// cancel func removes the registration and is safe to call more than once.
func (b *Binder) OnAttached(fn func(domain.AttachedEvent)) (cancel func()) {
	b.observerID++
	id := b.observerID
	b.observers = append(b.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range b.observers {
			if o.id == id {
				b.observers = append(b.observers[:i], b.observers[i+1:]...)
				return
			}
		}
	}
}

func (b *Binder) publishAttached(ev domain.AttachedEvent) {
	// Snapshot so an observer unregistering itself mid-delivery does not
	// skip its neighbors.
	snapshot := make([]observer, len(b.observers))
	copy(snapshot, b.observers)
	for _, o := range snapshot {
		o.fn(ev)
	}
}

func (b *Binder) notifyLoaded(view domain.View) {
	if h, ok := b.owner.(ViewLoadedHandler); ok {
		h.OnViewLoaded(view)
	}
}

func (b *Binder) notifyReady(view domain.View) {
	if h, ok := b.owner.(ViewReadyHandler); ok {
		h.OnViewReady(view)
	}
}
