package switchlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name    string
		widths  []float64
		gap     float64
		padding float64
		target  int
		want    Geometry
	}{
		{
			name:   "first option",
			widths: []float64{50, 70, 60},
			target: 0,
			want:   Geometry{TranslateX: 0, Width: 50},
		},
		{
			name:   "second option",
			widths: []float64{50, 70, 60},
			target: 1,
			want:   Geometry{TranslateX: 50, Width: 70},
		},
		{
			name:   "third option",
			widths: []float64{50, 70, 60},
			target: 2,
			want:   Geometry{TranslateX: 120, Width: 60},
		},
		{
			name:    "gap and padding",
			widths:  []float64{10, 12, 8},
			gap:     2,
			padding: 1,
			target:  2,
			want:    Geometry{TranslateX: 10 + 12 + 1 + 2*2, Width: 8 - 2},
		},
		{
			name:    "padding wider than option is not clamped",
			widths:  []float64{4, 2},
			padding: 2,
			target:  1,
			want:    Geometry{TranslateX: 6, Width: -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Compute(tt.widths, tt.gap, tt.padding, tt.target)
			require.True(t, ok)
			require.Equal(t, tt.want, got)

			again, _ := Compute(tt.widths, tt.gap, tt.padding, tt.target)
			require.Equal(t, got, again, "Compute must not keep state between calls")
		})
	}
}

func TestComputeOutOfRange(t *testing.T) {
	for _, target := range []int{-1, 3} {
		_, ok := Compute([]float64{1, 2, 3}, 0, 0, target)
		require.False(t, ok, "target %d", target)
	}
}

func TestEaseInOutQuad(t *testing.T) {
	require.Equal(t, 0.0, EaseInOutQuad(0))
	require.Equal(t, 1.0, EaseInOutQuad(1))
	require.InDelta(t, 0.5, EaseInOutQuad(0.5), 1e-9)
	require.InDelta(t, 0.125, EaseInOutQuad(0.25), 1e-9)
	require.InDelta(t, 0.875, EaseInOutQuad(0.75), 1e-9)

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseInOutQuad(float64(i) / 100)
		require.GreaterOrEqual(t, v, prev)
		prev = v
	}
}
