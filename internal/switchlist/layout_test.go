package switchlist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayoutStore_Completeness(t *testing.T) {
	s := NewLayoutStore(3)
	labels := []string{"A", "B", "C"}

	require.False(t, s.Complete(labels))

	s.Report(2, 60, "C")
	s.Report(0, 50, "A")
	require.False(t, s.Covered(), "two of three reported")

	s.Report(0, 50, "A")
	require.False(t, s.Covered(), "duplicate reports do not count twice")

	s.Report(1, 70, "B")
	require.True(t, s.Complete(labels))
	require.Equal(t, []float64{50, 70, 60}, s.Widths())
}

func TestLayoutStore_IgnoresOutOfRange(t *testing.T) {
	s := NewLayoutStore(2)
	require.False(t, s.Report(-1, 10, "x"))
	require.False(t, s.Report(2, 10, "x"))
	require.True(t, s.Report(1, 10, "x"))
}

func TestLayoutStore_StaleLabels(t *testing.T) {
	s := NewLayoutStore(2)
	s.Report(0, 5, "Food")
	s.Report(1, 6, "Drink")

	live := []string{"Essen", "Getränk"}
	require.True(t, s.Covered())
	require.False(t, s.Fresh(live))
	require.False(t, s.Complete(live))

	s.Report(0, 7, "Essen")
	require.False(t, s.Complete(live), "one label still stale")

	s.Report(1, 9, "Getränk")
	require.True(t, s.Complete(live))
	require.Equal(t, []float64{7, 9}, s.Widths())
}

func TestLayoutStore_ResizeRequiresFreshReports(t *testing.T) {
	s := NewLayoutStore(3)
	for i, l := range []string{"A", "B", "C"} {
		s.Report(i, 10, l)
	}
	require.True(t, s.Covered())

	s.Resize(2)
	require.False(t, s.Covered(), "old records do not count after a count change")
	_, ok := s.Get(2)
	require.False(t, ok)

	s.Report(0, 10, "A")
	s.Report(1, 10, "B")
	require.True(t, s.Complete([]string{"A", "B"}))

	s.Resize(2)
	require.True(t, s.Covered(), "same count keeps records")
}

func TestNewRegistry(t *testing.T) {
	r, err := NewRegistry(abc())
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())

	i, ok := r.IndexOf("c")
	require.True(t, ok)
	require.Equal(t, 2, i)

	_, ok = r.IndexOf("z")
	require.False(t, ok)

	_, ok = r.At(3)
	require.False(t, ok)

	opts := abc()
	require.True(t, r.Equal(opts))
	opts[1].Label = "Bee"
	require.False(t, r.Equal(opts))

	other, err := NewRegistry(opts)
	require.NoError(t, err)
	require.True(t, r.SameValues(other))

	_, err = NewRegistry([]Option[string]{{Value: "a"}, {Value: "a"}})
	require.True(t, errors.Is(err, ErrDuplicateValue))
}
