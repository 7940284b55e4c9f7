package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/multiswitch/internal/tui/components"
)

// ExampleInitialSet is the name of the preselected option example.
const ExampleInitialSet = "initial-set"

var drinks = []string{"water", "coffee", "tea", "juice", "soda"}

var drinkIcons = map[string]string{
	"water":  "💧",
	"coffee": "☕️",
	"tea":    "🍵",
	"juice":  "🍹",
	"soda":   "🥤",
}

// InitialSetView mounts a tabs list with the option it was opened with.
type InitialSetView struct {
	*BaseView
	initial string
	current string
}

// NewInitialSetView creates the preselected option example.
func NewInitialSetView(ctx *Context) *InitialSetView {
	v := &InitialSetView{initial: "water", current: "water"}
	v.BaseView = NewBaseView(ctx, func() ([]*components.SwitchList, error) {
		pairs := make([]string, 0, 2*len(drinks))
		for _, d := range drinks {
			pairs = append(pairs, d, drinkIcons[d]+" "+d)
		}
		l, err := components.NewSwitchList(options(pairs...), v.initial,
			ctx.ListConfig(WithVariant(components.VariantTabs)))
		if err != nil {
			return nil, err
		}
		return []*components.SwitchList{l}, nil
	})
	return v
}

func (v *InitialSetView) Name() string { return ExampleInitialSet }

func (v *InitialSetView) Title() string { return v.Ctx.Tr.T("initial_set_title") }

func (v *InitialSetView) Description() string { return v.Ctx.Tr.T("initial_set_desc") }

// Current returns the selected drink.
func (v *InitialSetView) Current() string { return v.current }

// OnEnter remounts with param preselected when it names a different drink.
func (v *InitialSetView) OnEnter(param string) tea.Cmd {
	if _, ok := drinkIcons[param]; !ok || param == v.initial {
		return nil
	}
	v.initial = param
	v.current = param
	return v.Remount()
}

// HandleKey implements Example.
func (v *InitialSetView) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "b" {
		return func() tea.Msg {
			return NavigateMsg{To: ExampleDayOfTime, Param: "evening"}
		}, true
	}
	return v.BaseView.HandleKey(msg)
}

// Update implements Example.
func (v *InitialSetView) Update(msg tea.Msg) tea.Cmd {
	cmd := v.BaseView.Update(msg)
	if msg, ok := msg.(components.ChangedMsg); ok {
		if _, mine := v.Find(msg.ID); mine {
			v.current = msg.Value
		}
	}
	return cmd
}

// Actions implements Example.
func (v *InitialSetView) Actions() [][]string {
	return [][]string{{"b", "back with evening"}}
}

// Render implements Example.
func (v *InitialSetView) Render(width, height int) string {
	var b strings.Builder
	b.WriteString(header(v.Title()+": "+v.current, v.Description()) + "\n")
	v.writeList(&b, 0)
	b.WriteString("\n\n" + actionsLine(v.Actions()))
	return b.String()
}
