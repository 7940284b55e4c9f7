package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/multiswitch/internal/tui/components"
)

// ExampleScrollable is the name of the scrollable example.
const ExampleScrollable = "scrollable"

var ordinals = []string{
	"First", "Second", "Third", "Fourth", "Fifth", "Sixth", "Seventh", "Eighth",
	"Ninth", "Tenth", "Eleventh", "Twelfth", "Thirteenth", "Fourteenth", "Fifteenth", "Sixteenth",
}

// ScrollableView has more options than fit, so selecting one scrolls it
// into the middle of the row.
type ScrollableView struct {
	*BaseView
}

// NewScrollableView creates the scrollable example.
func NewScrollableView(ctx *Context) *ScrollableView {
	v := &ScrollableView{}
	v.BaseView = NewBaseView(ctx, func() ([]*components.SwitchList, error) {
		pairs := make([]string, 0, 2*len(ordinals))
		for _, o := range ordinals {
			pairs = append(pairs, strings.ToLower(o), o)
		}
		l, err := components.NewSwitchList(options(pairs...), "first", ctx.ListConfig())
		if err != nil {
			return nil, err
		}
		return []*components.SwitchList{l}, nil
	})
	return v
}

func (v *ScrollableView) Name() string { return ExampleScrollable }

func (v *ScrollableView) Title() string { return v.Ctx.Tr.T("scrollable_title") }

func (v *ScrollableView) Description() string { return v.Ctx.Tr.T("scrollable_desc") }

// Update implements Example.
func (v *ScrollableView) Update(msg tea.Msg) tea.Cmd { return v.BaseView.Update(msg) }

// Actions implements Example.
func (v *ScrollableView) Actions() [][]string {
	return [][]string{{"[ ]", "scroll without selecting"}}
}

// Render implements Example.
func (v *ScrollableView) Render(width, height int) string {
	var b strings.Builder
	b.WriteString(header(v.Title(), v.Description()) + "\n")
	v.writeList(&b, 0)
	b.WriteString("\n\n" + actionsLine(v.Actions()))
	return b.String()
}
