package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/multiswitch/internal/switchlist"
	"github.com/hy4ri/multiswitch/internal/tui/components"
)

// ExampleDynamicLabels is the name of the dynamic labels example.
const ExampleDynamicLabels = "dynamic-labels"

// DynamicLabelsView relabels its options when the language changes. The
// indicator follows the new widths without reporting a change.
type DynamicLabelsView struct {
	*BaseView
}

// NewDynamicLabelsView creates the dynamic labels example.
func NewDynamicLabelsView(ctx *Context) *DynamicLabelsView {
	v := &DynamicLabelsView{}
	v.BaseView = NewBaseView(ctx, func() ([]*components.SwitchList, error) {
		l, err := components.NewSwitchList(v.labels(), "food",
			ctx.ListConfig(ctx.WithAccent("#1E40AF", "#EDF0F8", "#1E40AF")))
		if err != nil {
			return nil, err
		}
		return []*components.SwitchList{l}, nil
	})
	return v
}

func (v *DynamicLabelsView) Name() string { return ExampleDynamicLabels }

func (v *DynamicLabelsView) Title() string { return v.Ctx.Tr.T("dynamic_labels_title") }

func (v *DynamicLabelsView) Description() string { return v.Ctx.Tr.T("dynamic_labels_desc") }

func (v *DynamicLabelsView) labels() []switchlist.Option[string] {
	tr := v.Ctx.Tr
	return options("food", tr.T("food"), "drink", tr.T("drink"), "dessert", tr.T("dessert"))
}

// HandleKey implements Example.
func (v *DynamicLabelsView) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "t" {
		return v.toggleLanguage(), true
	}
	return v.BaseView.HandleKey(msg)
}

// OnEnter picks up a language change made elsewhere.
func (v *DynamicLabelsView) OnEnter(string) tea.Cmd {
	return v.relabel()
}

func (v *DynamicLabelsView) toggleLanguage() tea.Cmd {
	lang := v.Ctx.Tr.Next()
	v.Ctx.Log.Info("language changed", "language", lang.String())
	status := func() tea.Msg { return StatusMsg{Text: "Language: " + lang.String()} }
	return tea.Batch(v.relabel(), status)
}

func (v *DynamicLabelsView) relabel() tea.Cmd {
	var cmds []tea.Cmd
	for _, l := range v.Lists() {
		cmd, err := l.SetOptions(v.labels())
		if err != nil {
			return func() tea.Msg { return StatusMsg{Err: err} }
		}
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update implements Example.
func (v *DynamicLabelsView) Update(msg tea.Msg) tea.Cmd {
	return v.BaseView.Update(msg)
}

// Actions implements Example.
func (v *DynamicLabelsView) Actions() [][]string {
	return [][]string{{"t", v.Ctx.Tr.T("toggle_language")}}
}

// Render implements Example.
func (v *DynamicLabelsView) Render(width, height int) string {
	var b strings.Builder
	b.WriteString(header(v.Title(), v.Description()) + "\n")
	v.writeList(&b, 0)
	b.WriteString("\n\n" + actionsLine(v.Actions()))
	return b.String()
}
