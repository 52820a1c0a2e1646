package ports

import "go.trai.ch/seam/domain"

// PlatformAdapter abstracts the host UI framework. It strips framework
// scaffolding from raw views and schedules the lifecycle hooks whose exact
// invocation turn is owned by the platform, not by the binder.
//
//go:generate mockgen -source=platform.go -destination=mocks/mock_platform.go -package=mocks
type PlatformAdapter interface {
	// UnwrapGenerated returns the first non-generated view reachable from
	// v, stripping any host-injected container or proxy. Idempotent: an
	// already-unwrapped view is returned unchanged.
	UnwrapGenerated(v domain.View) domain.View

	// OnFirstLoad invokes fn(v) exactly once, at or after the point the
	// view is considered structurally loaded.
	OnFirstLoad(v domain.View, fn func(domain.View))

	// OnNextLayoutSettle invokes fn(v) exactly once, after the view's
	// layout has stabilized following this call.
	OnNextLayoutSettle(v domain.View, fn func(domain.View))

	// Weak returns a non-owning handle to v. The handle must not extend
	// the view's lifetime.
	Weak(v domain.View) WeakView
}

// WeakView is a non-owning reference to a view, checked for liveness at
// resolution time.
type WeakView interface {
	// Get resolves the reference. It returns false once the view has been
	// reclaimed.
	Get() (domain.View, bool)
}
