package switchlist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTween_Advance(t *testing.T) {
	clock := newFakeClock()
	tw := NewTween(clock)

	done := 0
	tw.StartTween(0, 100, 200*time.Millisecond, Linear, func() { done++ })
	require.True(t, tw.Running())
	require.Equal(t, 100.0, tw.Target())

	require.True(t, tw.Advance(clock.Add(50*time.Millisecond)))
	require.InDelta(t, 25, tw.Value(), 1e-9)

	require.False(t, tw.Advance(clock.Add(150*time.Millisecond)))
	require.Equal(t, 100.0, tw.Value())
	require.Equal(t, 1, done)

	require.False(t, tw.Advance(clock.Add(time.Second)))
	require.Equal(t, 1, done, "completion fires once")
}

func TestTween_RetargetDropsSupersededCompletion(t *testing.T) {
	clock := newFakeClock()
	tw := NewTween(clock)

	var fired []string
	tw.StartTween(0, 100, 100*time.Millisecond, Linear, func() { fired = append(fired, "first") })
	tw.Advance(clock.Add(50 * time.Millisecond))

	tw.StartTween(tw.Value(), 0, 100*time.Millisecond, Linear, func() { fired = append(fired, "second") })
	require.InDelta(t, 50, tw.Value(), 1e-9, "retarget starts from the live value")

	tw.Advance(clock.Add(100 * time.Millisecond))
	require.Equal(t, []string{"second"}, fired)
	require.Equal(t, 0.0, tw.Value())
}

func TestTween_SetImmediateCancels(t *testing.T) {
	clock := newFakeClock()
	tw := NewTween(clock)

	fired := false
	tw.StartTween(0, 10, time.Second, nil, func() { fired = true })
	tw.SetImmediate(3)
	require.False(t, tw.Running())

	tw.Advance(clock.Add(2 * time.Second))
	require.False(t, fired)
	require.Equal(t, 3.0, tw.Value())
}

func TestTween_ZeroDurationCompletesSynchronously(t *testing.T) {
	tw := NewTween(newFakeClock())
	fired := false
	tw.StartTween(1, 2, 0, Linear, func() { fired = true })
	require.True(t, fired)
	require.Equal(t, 2.0, tw.Value())
}

func TestAnimator(t *testing.T) {
	clock := newFakeClock()
	a := NewAnimator(clock)
	x, w := a.NewTween(), a.NewTween()

	x.StartTween(0, 10, 100*time.Millisecond, Linear, nil)
	w.StartTween(0, 20, 200*time.Millisecond, Linear, nil)
	require.True(t, a.Running())

	clock.Add(100 * time.Millisecond)
	require.True(t, a.Advance())
	require.Equal(t, 10.0, x.Value())
	require.InDelta(t, 10, w.Value(), 1e-9)

	clock.Add(100 * time.Millisecond)
	require.False(t, a.Advance())
	require.False(t, a.Running())
}
