package switchlist

import (
	"sync"
	"time"
)

// Clock supplies the current time to tweens. Tests substitute a fake.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// Tweener animates one scalar channel.
type Tweener interface {
	// StartTween moves from `from` to `to` over d using ease. onComplete fires
	// once when the tween settles; it never fires for a tween superseded by
	// another StartTween or SetImmediate.
	StartTween(from, to float64, d time.Duration, ease Easing, onComplete func())
	// SetImmediate jumps to v and cancels any running tween.
	SetImmediate(v float64)
	// Value returns the live value.
	Value() float64
}

// Tween is a clock-driven Tweener. It only moves when advanced, normally by
// the Animator that created it.
type Tween struct {
	clock Clock

	value      float64
	from, to   float64
	start      time.Time
	duration   time.Duration
	ease       Easing
	onComplete func()
	running    bool
}

// NewTween returns a tween resting at zero.
func NewTween(clock Clock) *Tween {
	if clock == nil {
		clock = SystemClock
	}
	return &Tween{clock: clock}
}

func (t *Tween) StartTween(from, to float64, d time.Duration, ease Easing, onComplete func()) {
	if ease == nil {
		ease = Linear
	}
	t.from, t.to = from, to
	t.value = from
	t.start = t.clock.Now()
	t.duration = d
	t.ease = ease
	t.onComplete = onComplete
	t.running = true
	if d <= 0 {
		t.Advance(t.start)
	}
}

func (t *Tween) SetImmediate(v float64) {
	t.value = v
	t.from, t.to = v, v
	t.onComplete = nil
	t.running = false
}

func (t *Tween) Value() float64 {
	return t.value
}

// Target returns the value the tween is heading to.
func (t *Tween) Target() float64 {
	if !t.running {
		return t.value
	}
	return t.to
}

// Running reports whether a tween is in flight.
func (t *Tween) Running() bool {
	return t.running
}

// Advance moves the tween to its position at now. It reports whether the
// tween is still running afterwards.
func (t *Tween) Advance(now time.Time) bool {
	if !t.running {
		return false
	}
	p := 1.0
	if t.duration > 0 {
		p = float64(now.Sub(t.start)) / float64(t.duration)
	}
	if p < 1 {
		if p < 0 {
			p = 0
		}
		t.value = t.from + (t.to-t.from)*t.ease(p)
		return true
	}
	t.value = t.to
	t.running = false
	done := t.onComplete
	t.onComplete = nil
	if done != nil {
		done()
	}
	return false
}

// Animator drives a set of tweens from one animation loop.
type Animator struct {
	clock Clock

	mu     sync.Mutex
	tweens []*Tween
}

// NewAnimator returns an animator reading time from clock.
func NewAnimator(clock Clock) *Animator {
	if clock == nil {
		clock = SystemClock
	}
	return &Animator{clock: clock}
}

// NewTween creates a tween driven by this animator.
func (a *Animator) NewTween() *Tween {
	t := NewTween(a.clock)
	a.mu.Lock()
	a.tweens = append(a.tweens, t)
	a.mu.Unlock()
	return t
}

// Advance steps every tween to the clock's current time and reports whether
// any is still running.
func (a *Animator) Advance() bool {
	return a.AdvanceTo(a.clock.Now())
}

// AdvanceTo steps every tween to now.
func (a *Animator) AdvanceTo(now time.Time) bool {
	a.mu.Lock()
	tweens := append([]*Tween(nil), a.tweens...)
	a.mu.Unlock()

	running := false
	for _, t := range tweens {
		if t.Advance(now) {
			running = true
		}
	}
	return running
}

// Running reports whether any tween is in flight.
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, t := range a.tweens {
		if t.Running() {
			return true
		}
	}
	return false
}
