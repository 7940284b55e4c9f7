package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/multiswitch/internal/switchlist"
	"github.com/hy4ri/multiswitch/internal/tui/components"
	"github.com/hy4ri/multiswitch/internal/tui/styles"
)

// ExampleInspector is the name of the inspector example.
const ExampleInspector = "inspector"

var greekValues = []string{"alpha", "beta", "gamma", "delta"}

// InspectorView shows the coordinator's state next to a list that can be
// driven from a background goroutine.
type InspectorView struct {
	*BaseView
	extra    bool
	relabel  bool
	forced   int
	changes  int
	presses  int
	lastSeen string
}

// NewInspectorView creates the inspector example.
func NewInspectorView(ctx *Context) *InspectorView {
	v := &InspectorView{}
	v.BaseView = NewBaseView(ctx, func() ([]*components.SwitchList, error) {
		l, err := components.NewSwitchList(v.options(), "alpha", ctx.ListConfig())
		if err != nil {
			return nil, err
		}
		return []*components.SwitchList{l}, nil
	})
	return v
}

func (v *InspectorView) Name() string { return ExampleInspector }

func (v *InspectorView) Title() string { return v.Ctx.Tr.T("inspector_title") }

func (v *InspectorView) Description() string { return v.Ctx.Tr.T("inspector_desc") }

func (v *InspectorView) options() []switchlist.Option[string] {
	n := 3
	if v.extra {
		n = 4
	}
	pairs := make([]string, 0, 2*n)
	for _, g := range greekValues[:n] {
		label := strings.ToUpper(g[:1]) + g[1:]
		if v.relabel {
			label = strings.ToUpper(g)
		}
		pairs = append(pairs, g, label)
	}
	return options(pairs...)
}

// HandleKey implements Example.
func (v *InspectorView) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	l := v.FocusedList()
	if l == nil {
		return v.BaseView.HandleKey(msg)
	}
	switch msg.String() {
	case "f":
		opts := l.Options()
		v.forced = (v.forced + 1) % len(opts)
		value := opts[v.forced].Value
		h := l.Handle()
		// Forced from another goroutine; the list picks it up through its wake.
		go h.SetForcedOption(value)
		v.Ctx.Log.Debug("forcing option", "value", value)
		return nil, true
	case "c":
		l.Handle().ClearForcedOption()
		return l.Sync(), true
	case "r":
		v.relabel = !v.relabel
		return v.apply(l), true
	case "a":
		v.extra = !v.extra
		return v.apply(l), true
	}
	return v.BaseView.HandleKey(msg)
}

func (v *InspectorView) apply(l *components.SwitchList) tea.Cmd {
	cmd, err := l.SetOptions(v.options())
	if err != nil {
		return func() tea.Msg { return StatusMsg{Err: err} }
	}
	return cmd
}

// Update implements Example.
func (v *InspectorView) Update(msg tea.Msg) tea.Cmd {
	cmd := v.BaseView.Update(msg)
	switch msg := msg.(type) {
	case components.ChangedMsg:
		if _, ok := v.Find(msg.ID); ok {
			v.changes++
			v.lastSeen = msg.Value
		}
	case components.PressedMsg:
		if _, ok := v.Find(msg.ID); ok {
			v.presses++
		}
	}
	return cmd
}

// Remount resets the counters along with the list.
func (v *InspectorView) Remount() tea.Cmd {
	v.changes, v.presses, v.lastSeen = 0, 0, ""
	return v.BaseView.Remount()
}

// Actions implements Example.
func (v *InspectorView) Actions() [][]string {
	return [][]string{
		{"f", "force next option from a goroutine"},
		{"c", "clear forced option"},
		{"r", "toggle uppercase labels"},
		{"a", "add or remove an option"},
	}
}

// Rows returns the inspector table as key/value pairs.
func (v *InspectorView) Rows() [][2]string {
	l := v.FocusedList()
	if l == nil {
		return nil
	}
	snap := l.Snapshot()
	pending := "-"
	if snap.HasPending {
		pending = snap.Pending
	}
	active := "-"
	if snap.HasActiveIndex {
		active = fmt.Sprint(snap.ActiveIndex)
	}
	widths := make([]string, 0, len(l.Widths()))
	for _, w := range l.Widths() {
		widths = append(widths, fmt.Sprintf("%.0f", w))
	}
	return [][2]string{
		{"phase", snap.Phase.String()},
		{"active", snap.Active},
		{"target", snap.Target},
		{"pending", pending},
		{"translateX", fmt.Sprintf("%.2f", snap.TranslateX)},
		{"width", fmt.Sprintf("%.2f", snap.Width)},
		{"scrollX", fmt.Sprintf("%.2f", snap.ScrollX)},
		{"indicatorX", fmt.Sprintf("%.2f", snap.IndicatorX)},
		{"activeIndex", active},
		{"widths", "[" + strings.Join(widths, " ") + "]"},
		{"complete", fmt.Sprint(l.Complete())},
		{"handle", l.Handle().ActiveOption()},
		{"changes", fmt.Sprint(v.changes)},
		{"presses", fmt.Sprint(v.presses)},
	}
}

// Render implements Example.
func (v *InspectorView) Render(width, height int) string {
	var table []string
	for _, r := range v.Rows() {
		table = append(table, styles.InspectorKey.Render(r[0])+styles.InspectorValue.Render(r[1]))
	}
	var b strings.Builder
	b.WriteString(header(v.Title(), v.Description()) + "\n")
	v.writeList(&b, 0)
	b.WriteString("\n\n" + lipgloss.JoinVertical(lipgloss.Left, table...) + "\n\n")
	b.WriteString(actionsLine(v.Actions()))
	return b.String()
}
