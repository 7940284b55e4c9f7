package switchlist

import "go.uber.org/atomic"

// Handle is the command surface for callers that do not render the switch
// list themselves, such as a parent screen or another goroutine. Commands are
// queued and applied by the coordinator on its own side.
type Handle[V comparable] struct {
	active atomic.Pointer[V]
	post   func(func())
	wake   atomic.Pointer[func()]

	forced  func(V)
	unforce func()
}

// SetForcedOption requests a transition to v, exactly as if it were pressed.
func (h *Handle[V]) SetForcedOption(v V) {
	h.post(func() { h.forced(v) })
	h.notify()
}

// ClearForcedOption discards a forced option that is still waiting for
// layout. It is a no-op when nothing is pending.
func (h *Handle[V]) ClearForcedOption() {
	h.post(h.unforce)
	h.notify()
}

// ActiveOption returns the last settled option.
func (h *Handle[V]) ActiveOption() V {
	if v := h.active.Load(); v != nil {
		return *v
	}
	var zero V
	return zero
}

// SetWake installs fn to be called after a command is queued, so an event
// loop can schedule a Tick.
func (h *Handle[V]) SetWake(fn func()) {
	if fn == nil {
		h.wake.Store(nil)
		return
	}
	h.wake.Store(&fn)
}

func (h *Handle[V]) notify() {
	if fn := h.wake.Load(); fn != nil {
		(*fn)()
	}
}

func (h *Handle[V]) store(v V) {
	h.active.Store(&v)
}
