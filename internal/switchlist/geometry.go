package switchlist

// Geometry is the indicator placement for one option.
type Geometry struct {
	TranslateX float64
	Width      float64
}

// Compute places the indicator inside the padded content box of the option
// at target. Every preceding option contributes its full width plus one gap.
//
// Nothing is clamped: widths that disagree with the rendered layout (for
// example mid-resize) can yield an overshooting or negative result until the
// next measurement settles it.
func Compute(widths []float64, gap, padding float64, target int) (Geometry, bool) {
	if target < 0 || target >= len(widths) {
		return Geometry{}, false
	}
	var before float64
	for _, w := range widths[:target] {
		before += w
	}
	return Geometry{
		TranslateX: before + padding + gap*float64(target),
		Width:      widths[target] - 2*padding,
	}, true
}
