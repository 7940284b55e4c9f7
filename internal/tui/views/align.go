package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/multiswitch/internal/tui/components"
	"github.com/hy4ri/multiswitch/internal/tui/styles"
)

// ExampleAlign is the name of the align example.
const ExampleAlign = "align"

// AlignView stacks three lists that are narrower than the pane, one per
// alignment.
type AlignView struct {
	*BaseView
}

type alignRow struct {
	align                       components.Align
	pairs                       []string
	def                         string
	accent, track, inactiveText string
}

var alignRows = []alignRow{
	{components.AlignLeft, []string{"first", "First", "second", "Second"}, "first", "#3CB414", "#155715", "#D0F9CD"},
	{components.AlignCenter, []string{"first", "First", "second", "Second"}, "second", "#B91C1C", "#FCEDED", "#B91C1C"},
	{components.AlignRight, []string{"first", "First", "second", "Second", "third", "Third"}, "first", "#B4AA14", "#FBFAEA", "#8A8210"},
}

// NewAlignView creates the align example.
func NewAlignView(ctx *Context) *AlignView {
	v := &AlignView{}
	v.BaseView = NewBaseView(ctx, func() ([]*components.SwitchList, error) {
		lists := make([]*components.SwitchList, 0, len(alignRows))
		for _, r := range alignRows {
			l, err := components.NewSwitchList(options(r.pairs...), r.def,
				ctx.ListConfig(WithAlign(r.align), ctx.WithAccent(r.accent, r.track, r.inactiveText)))
			if err != nil {
				return nil, err
			}
			lists = append(lists, l)
		}
		return lists, nil
	})
	return v
}

func (v *AlignView) Name() string { return ExampleAlign }

func (v *AlignView) Title() string { return v.Ctx.Tr.T("align_title") }

func (v *AlignView) Description() string { return v.Ctx.Tr.T("align_desc") }

// Update implements Example.
func (v *AlignView) Update(msg tea.Msg) tea.Cmd { return v.BaseView.Update(msg) }

// Actions implements Example.
func (v *AlignView) Actions() [][]string {
	return [][]string{{"j/k", "switch list"}}
}

// Render implements Example.
func (v *AlignView) Render(width, height int) string {
	var b strings.Builder
	b.WriteString(header(v.Title(), v.Description()))
	for i := range v.Lists() {
		b.WriteString("\n")
		b.WriteString(styles.Subtitle.Render("  " + alignRows[i].align.String()))
		b.WriteString("\n")
		v.writeList(&b, i)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(actionsLine(v.Actions()))
	return b.String()
}
