package binder

import (
	"go.trai.ch/seam/domain"
	"go.trai.ch/seam/ports"
)

// deferredReady binds one pending ready hook to one activation
// subscription. It holds the view only weakly so the registration cannot
// keep an otherwise-discarded view alive.
type deferredReady struct {
	binder *Binder
	view   ports.WeakView
	state  domain.ReadyState
	cancel func()
}

// deferReady registers a ready hook to fire on the owner's first
// activation after this call. Each attach on an inactive owner creates an
// independent registration.
func (b *Binder) deferReady(act ports.Activatable, view ports.WeakView) *deferredReady {
	d := &deferredReady{
		binder: b,
		view:   view,
		state:  domain.ReadyPending,
	}
	d.cancel = act.OnActivated(d.activated)
	return d
}

// activated handles one transition into the active state. The first
// transition moves the registration to a terminal state; later ones are
// ignored even if the subscription's removal has not taken effect yet.
func (d *deferredReady) activated() {
	if d.state.Terminal() {
		return
	}
	if d.cancel != nil {
		d.cancel()
	}

	view, alive := d.view.Get()
	if !alive {
		d.state = domain.ReadyExpired
		d.binder.logger.Debug("view reclaimed before activation, ready hook dropped")
		return
	}

	d.state = domain.ReadyFired
	d.binder.adapter.OnNextLayoutSettle(view, d.binder.notifyReady)
}
