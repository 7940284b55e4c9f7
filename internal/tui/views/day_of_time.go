package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/multiswitch/internal/tui/components"
)

// ExampleDayOfTime is the name of the day of time example.
const ExampleDayOfTime = "day-of-time"

var timesOfDay = []string{"morning", "afternoon", "evening", "night"}

// skyColors tints the selection line after each time of day.
var skyColors = map[string]lipgloss.Color{
	"morning":   "#FFE4B5",
	"afternoon": "#B3D9FF",
	"evening":   "#FFD6CC",
	"night":     "#D8D8F6",
}

// DayOfTimeView forces options from outside the switch list through its
// handle and reacts to completed changes.
type DayOfTimeView struct {
	*BaseView
	timeOfDay string
	lastPress string
	drink     int
}

// NewDayOfTimeView creates the day of time example.
func NewDayOfTimeView(ctx *Context) *DayOfTimeView {
	v := &DayOfTimeView{timeOfDay: "morning"}
	v.BaseView = NewBaseView(ctx, func() ([]*components.SwitchList, error) {
		l, err := components.NewSwitchList(
			options("morning", "🌅", "afternoon", "☀️", "evening", "🌇", "night", "🌙"),
			"morning",
			ctx.ListConfig(ctx.WithAccent("#2563EB", "#EEF4FE", "#2563EB")),
		)
		if err != nil {
			return nil, err
		}
		return []*components.SwitchList{l}, nil
	})
	return v
}

func (v *DayOfTimeView) Name() string { return ExampleDayOfTime }

func (v *DayOfTimeView) Title() string { return v.Ctx.Tr.T("day_of_time_title") }

func (v *DayOfTimeView) Description() string { return v.Ctx.Tr.T("day_of_time_desc") }

// TimeOfDay returns the last completed selection.
func (v *DayOfTimeView) TimeOfDay() string { return v.timeOfDay }

// HandleKey implements Example.
func (v *DayOfTimeView) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "m":
		return v.force("morning"), true
	case "n":
		return v.force("night"), true
	case "d":
		drink := drinks[v.drink%len(drinks)]
		v.drink++
		return func() tea.Msg {
			return NavigateMsg{To: ExampleInitialSet, Param: drink}
		}, true
	}
	return v.BaseView.HandleKey(msg)
}

// Update implements Example.
func (v *DayOfTimeView) Update(msg tea.Msg) tea.Cmd {
	cmd := v.BaseView.Update(msg)
	switch msg := msg.(type) {
	case components.ChangedMsg:
		if _, ok := v.Find(msg.ID); ok {
			v.timeOfDay = msg.Value
		}
	case components.PressedMsg:
		if _, ok := v.Find(msg.ID); ok {
			v.lastPress = msg.Value
		}
	}
	return cmd
}

// OnEnter forces param when another example sent a time of day back.
func (v *DayOfTimeView) OnEnter(param string) tea.Cmd {
	for _, t := range timesOfDay {
		if t == param {
			return v.force(param)
		}
	}
	return nil
}

func (v *DayOfTimeView) force(value string) tea.Cmd {
	l := v.FocusedList()
	if l == nil {
		return nil
	}
	l.Handle().SetForcedOption(value)
	return l.Sync()
}

// Actions implements Example.
func (v *DayOfTimeView) Actions() [][]string {
	return [][]string{
		{"m", "set morning"},
		{"n", "set night"},
		{"d", "open a preselected drink"},
	}
}

// Render implements Example.
func (v *DayOfTimeView) Render(width, height int) string {
	sky := lipgloss.NewStyle().
		Background(skyColors[v.timeOfDay]).
		Foreground(lipgloss.Color("#1F1F1F")).
		Width(max(width-2, 1)).
		Padding(0, 1)

	pressed := "-"
	if v.lastPress != "" {
		pressed = v.lastPress
	}
	var b strings.Builder
	b.WriteString(header(v.Title(), v.Description()) + "\n")
	v.writeList(&b, 0)
	b.WriteString("\n\n")
	b.WriteString(sky.Render(fmt.Sprintf("Selected: %s   Last press: %s", v.timeOfDay, pressed)) + "\n\n")
	b.WriteString(actionsLine(v.Actions()))
	return b.String()
}
