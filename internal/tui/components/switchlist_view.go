package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cell is one terminal column of the row. A wide rune occupies its cell and
// a following continuation cell with empty text.
type cell struct {
	text string
	item int
}

func (c cell) continuation() bool { return c.text == "" }

// View implements Component.
func (s *SwitchList) View() string {
	l := s.layout()
	if len(l.starts) == 0 {
		return ""
	}

	visible := s.window(s.cells(l))
	snap := s.coord.Snapshot()
	active := -1
	if snap.HasActiveIndex {
		active = snap.ActiveIndex
	}
	from := int(math.Round(snap.IndicatorX))
	to := int(math.Round(snap.IndicatorX + snap.Width))
	under := func(x int) bool { return x >= from && x < to }

	var rows []string
	switch s.cfg.Variant {
	case VariantTabs:
		rows = []string{s.renderLabels(visible, active, nil), s.renderUnderline(len(visible), under)}
	default:
		rows = []string{s.renderLabels(visible, active, under)}
	}

	if s.width <= 0 || l.content >= s.width {
		return strings.Join(rows, "\n")
	}
	pos := lipgloss.Left
	switch s.cfg.Align {
	case AlignCenter:
		pos = lipgloss.Center
	case AlignRight:
		pos = lipgloss.Right
	}
	for i, r := range rows {
		rows[i] = lipgloss.PlaceHorizontal(s.width, pos, r)
	}
	return strings.Join(rows, "\n")
}

// cells lays the options out column by column in content space.
func (s *SwitchList) cells(l rowLayout) []cell {
	cells := make([]cell, 0, l.content)
	inset := s.inset()
	for i, label := range l.labels {
		if i > 0 {
			for g := 0; g < s.cfg.Gap; g++ {
				cells = append(cells, cell{text: " ", item: -1})
			}
		}
		end := len(cells) + l.widths[i]
		for p := 0; p < inset; p++ {
			cells = append(cells, cell{text: " ", item: i})
		}
		for _, r := range label {
			switch runewidth.RuneWidth(r) {
			case 0:
				// Combining marks and variation selectors join the previous glyph.
				if n := len(cells); n > 0 && cells[n-1].item == i && !cells[n-1].continuation() {
					cells[n-1].text += string(r)
				} else if n > 1 && cells[n-1].item == i && cells[n-1].continuation() {
					cells[n-2].text += string(r)
				}
			case 2:
				cells = append(cells, cell{text: string(r), item: i}, cell{item: i})
			default:
				cells = append(cells, cell{text: string(r), item: i})
			}
		}
		for len(cells) < end {
			cells = append(cells, cell{text: " ", item: i})
		}
	}
	return cells
}

// window clips the row to the scrolled viewport. Wide glyphs cut in half by
// an edge become blanks.
func (s *SwitchList) window(cells []cell) []cell {
	start := min(s.scrollCell(), len(cells))
	end := len(cells)
	if s.width > 0 {
		end = min(start+s.width, len(cells))
	}
	out := append([]cell(nil), cells[start:end]...)
	if len(out) == 0 {
		return out
	}
	if out[0].continuation() {
		out[0].text = " "
	}
	if last := len(out) - 1; end < len(cells) && cells[end].continuation() && !out[last].continuation() {
		out[last].text = " "
	}
	return out
}

// renderLabels draws the label row. under reports whether a column sits
// beneath the pill; nil means the variant has no pill.
func (s *SwitchList) renderLabels(cells []cell, active int, under func(int) bool) string {
	styleFor := func(x int) lipgloss.Style {
		text := s.styles.InactiveText
		if cells[x].item >= 0 && cells[x].item == active {
			text = s.styles.ActiveText
		}
		bg := s.styles.Track
		if under != nil && under(x) {
			bg = s.styles.Indicator
		}
		return text.Inherit(bg)
	}
	return renderRuns(len(cells), func(x int) (string, int) {
		key := 0
		if cells[x].item >= 0 && cells[x].item == active {
			key |= 1
		}
		if under != nil && under(x) {
			key |= 2
		}
		return cells[x].text, key
	}, styleFor)
}

func (s *SwitchList) renderUnderline(n int, under func(int) bool) string {
	return renderRuns(n, func(x int) (string, int) {
		if under(x) {
			return "━", 1
		}
		return "─", 0
	}, func(x int) lipgloss.Style {
		if under(x) {
			return s.styles.Indicator
		}
		return s.styles.Rail
	})
}

// renderRuns groups neighbouring columns that share a style key and renders
// each group once.
func renderRuns(n int, col func(int) (string, int), style func(int) lipgloss.Style) string {
	var b, run strings.Builder
	runStart, runKey := 0, -1
	for x := 0; x < n; x++ {
		text, key := col(x)
		if key != runKey && run.Len() > 0 {
			b.WriteString(style(runStart).Render(run.String()))
			run.Reset()
		}
		if run.Len() == 0 {
			runStart, runKey = x, key
		}
		run.WriteString(text)
	}
	if run.Len() > 0 {
		b.WriteString(style(runStart).Render(run.String()))
	}
	return b.String()
}
