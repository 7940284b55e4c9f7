package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/multiswitch/internal/tui/components"
)

// ExampleLongLabel is the name of the long label example.
const ExampleLongLabel = "long-label"

// LongLabelView shows the indicator resizing between options of very
// different widths.
type LongLabelView struct {
	*BaseView
}

// NewLongLabelView creates the long label example.
func NewLongLabelView(ctx *Context) *LongLabelView {
	v := &LongLabelView{}
	v.BaseView = NewBaseView(ctx, func() ([]*components.SwitchList, error) {
		l, err := components.NewSwitchList(
			options("first", "First is a very long label", "second", "Second is short"),
			"first",
			ctx.ListConfig(ctx.WithAccent("#1E40AF", "#EDF0F8", "#1E40AF")),
		)
		if err != nil {
			return nil, err
		}
		return []*components.SwitchList{l}, nil
	})
	return v
}

func (v *LongLabelView) Name() string { return ExampleLongLabel }

func (v *LongLabelView) Title() string { return v.Ctx.Tr.T("long_label_title") }

func (v *LongLabelView) Description() string { return v.Ctx.Tr.T("long_label_desc") }

// Update implements Example.
func (v *LongLabelView) Update(msg tea.Msg) tea.Cmd { return v.BaseView.Update(msg) }

// Render implements Example.
func (v *LongLabelView) Render(width, height int) string {
	var b strings.Builder
	b.WriteString(header(v.Title(), v.Description()) + "\n")
	v.writeList(&b, 0)
	return b.String()
}
