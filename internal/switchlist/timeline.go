package switchlist

import "time"

// Timeline owns the indicator's two tweened channels and the discrete active
// index consumed by item styling.
type Timeline struct {
	translateX Tweener
	width      Tweener

	activeIndex int
	hasIndex    bool

	duration time.Duration
	easing   Easing

	// seq identifies the latest placement. Completions carrying an older
	// sequence belong to a superseded transition and are dropped.
	seq  uint64
	post func(func())
}

// NewTimeline wires two channels together. post marshals eased completions
// back to the state-owning side; nil runs them inline.
func NewTimeline(translateX, width Tweener, duration time.Duration, easing Easing, post func(func())) *Timeline {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if easing == nil {
		easing = EaseInOutQuad
	}
	if post == nil {
		post = func(fn func()) { fn() }
	}
	return &Timeline{
		translateX: translateX,
		width:      width,
		duration:   duration,
		easing:     easing,
		post:       post,
	}
}

// PlaceInstant jumps both channels to g and runs done synchronously.
func (t *Timeline) PlaceInstant(g Geometry, index int, done func()) {
	t.seq++
	t.activeIndex, t.hasIndex = index, true
	t.width.SetImmediate(g.Width)
	t.translateX.SetImmediate(g.TranslateX)
	if done != nil {
		done()
	}
}

// PlaceEased tweens both channels to g. The active index switches now, so
// item styling transitions alongside the indicator. done runs once, after
// the offset tween settles, unless another placement supersedes it first.
func (t *Timeline) PlaceEased(g Geometry, index int, done func()) {
	t.seq++
	seq := t.seq
	t.activeIndex, t.hasIndex = index, true

	t.width.StartTween(t.width.Value(), g.Width, t.duration, t.easing, nil)
	t.translateX.StartTween(t.translateX.Value(), g.TranslateX, t.duration, t.easing, func() {
		t.post(func() {
			if seq != t.seq || done == nil {
				return
			}
			done()
		})
	})
}

// Supersede invalidates the completion of the in-flight placement without
// touching the channels.
func (t *Timeline) Supersede() {
	t.seq++
}

func (t *Timeline) TranslateX() float64 { return t.translateX.Value() }

func (t *Timeline) Width() float64 { return t.width.Value() }

// ActiveIndex returns the index set by the latest placement.
func (t *Timeline) ActiveIndex() (int, bool) {
	return t.activeIndex, t.hasIndex
}
