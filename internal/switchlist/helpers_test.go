package switchlist

import (
	"time"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Add(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

type tweenCall struct {
	from, to   float64
	duration   time.Duration
	onComplete func()
}

// recordingTweener never moves on its own; tests settle tweens explicitly.
type recordingTweener struct {
	value      float64
	immediates []float64
	tweens     []tweenCall
}

func (r *recordingTweener) StartTween(from, to float64, d time.Duration, _ Easing, onComplete func()) {
	r.value = from
	r.tweens = append(r.tweens, tweenCall{from: from, to: to, duration: d, onComplete: onComplete})
}

func (r *recordingTweener) SetImmediate(v float64) {
	r.value = v
	r.immediates = append(r.immediates, v)
}

func (r *recordingTweener) Value() float64 { return r.value }

// settle finishes tween i, firing its completion.
func (r *recordingTweener) settle(i int) {
	call := r.tweens[i]
	r.value = call.to
	if call.onComplete != nil {
		call.onComplete()
	}
}

type scrollCall struct {
	index              int
	centered, animated bool
}

type recordingHost struct {
	calls []scrollCall
}

func (h *recordingHost) ScrollToIndex(index int, centered, animated bool) {
	h.calls = append(h.calls, scrollCall{index: index, centered: centered, animated: animated})
}

func abc() []Option[string] {
	return []Option[string]{
		{Value: "a", Label: "A"},
		{Value: "b", Label: "B"},
		{Value: "c", Label: "C"},
	}
}
