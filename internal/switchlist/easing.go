package switchlist

import "time"

// DefaultDuration is the length of an eased indicator transition.
const DefaultDuration = 200 * time.Millisecond

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// EaseInOutQuad accelerates through the first half and decelerates through
// the second.
func EaseInOutQuad(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return 2 * t * t
	default:
		u := -2*t + 2
		return 1 - u*u/2
	}
}
