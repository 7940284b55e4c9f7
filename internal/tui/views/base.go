package views

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/multiswitch/internal/i18n"
	"github.com/hy4ri/multiswitch/internal/switchlist"
	"github.com/hy4ri/multiswitch/internal/tui/components"
	"github.com/hy4ri/multiswitch/internal/tui/styles"
)

// Context holds the settings shared by every example.
type Context struct {
	// List is the base configuration every switch list starts from.
	List components.SwitchListConfig
	Tr   *i18n.Translator
	Log  *slog.Logger
}

// ListConfig returns the base list configuration with opts applied.
func (c *Context) ListConfig(opts ...func(*components.SwitchListConfig)) components.SwitchListConfig {
	cfg := c.List
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithAccent colors a list from an accent unless the user configured a
// theme. Apply it after WithVariant.
func (c *Context) WithAccent(accent, track, inactiveText string) func(*components.SwitchListConfig) {
	return func(cfg *components.SwitchListConfig) {
		if c.List.Theme != nil {
			return
		}
		t := styles.AccentTheme(cfg.Variant == components.VariantTabs, accent, track, inactiveText)
		cfg.Theme = &t
	}
}

// WithAlign sets the alignment.
func WithAlign(a components.Align) func(*components.SwitchListConfig) {
	return func(cfg *components.SwitchListConfig) { cfg.Align = a }
}

// WithVariant pins the variant regardless of the gallery toggle.
func WithVariant(v components.Variant) func(*components.SwitchListConfig) {
	return func(cfg *components.SwitchListConfig) { cfg.Variant = v }
}

// BaseView provides common functionality for all examples.
// Examples embed this struct to get shared helpers.
type BaseView struct {
	Ctx *Context

	lists  []*components.SwitchList
	build  func() ([]*components.SwitchList, error)
	focus  int
	active bool
	width  int

	// spans holds where the last Render placed each list.
	spans []listSpan
}

type listSpan struct {
	top, rows int
}

// NewBaseView creates a new BaseView. build creates the example's switch
// lists and is called again on every remount.
func NewBaseView(ctx *Context, build func() ([]*components.SwitchList, error)) *BaseView {
	return &BaseView{Ctx: ctx, build: build}
}

// --- Common Helpers ---

// Lists returns the mounted switch lists.
func (b *BaseView) Lists() []*components.SwitchList {
	return b.lists
}

// Remount discards the switch lists and builds fresh ones.
func (b *BaseView) Remount() tea.Cmd {
	lists, err := b.build()
	if err != nil {
		b.Ctx.Log.Error("failed to build switch lists", "error", err)
		return func() tea.Msg { return StatusMsg{Err: err} }
	}
	for _, l := range b.lists {
		l.Close()
	}
	b.lists = lists
	b.spans = make([]listSpan, len(lists))
	b.focus = min(b.focus, max(len(lists)-1, 0))
	b.applyFocus()
	b.SetWidth(b.width)

	cmds := make([]tea.Cmd, len(lists))
	for i, l := range lists {
		cmds[i] = l.Init()
	}
	return tea.Batch(cmds...)
}

// Update routes msg to every switch list.
func (b *BaseView) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, l := range b.lists {
		_, cmd := l.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// HandleKey moves focus between lists and forwards the rest to the focused
// list.
func (b *BaseView) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "j", "down":
		b.MoveFocus(1)
		return nil, true
	case "k", "up":
		b.MoveFocus(-1)
		return nil, true
	}
	l := b.FocusedList()
	if l == nil || !listConsumes(l, msg) {
		return nil, false
	}
	_, cmd := l.Update(msg)
	return cmd, true
}

func listConsumes(l *components.SwitchList, msg tea.KeyMsg) bool {
	km := l.KeyMap()
	if key.Matches(msg, km.Prev, km.Next, km.First, km.Last, km.ScrollLeft, km.ScrollRight) {
		return true
	}
	k := msg.String()
	return len(k) == 1 && k[0] >= '1' && k[0] <= '9'
}

// FocusedList returns the list receiving keys, or nil.
func (b *BaseView) FocusedList() *components.SwitchList {
	if b.focus < 0 || b.focus >= len(b.lists) {
		return nil
	}
	return b.lists[b.focus]
}

// MoveFocus moves list focus by delta, respecting bounds.
func (b *BaseView) MoveFocus(delta int) {
	if len(b.lists) == 0 {
		return
	}
	b.focus = min(max(b.focus+delta, 0), len(b.lists)-1)
	b.applyFocus()
}

// FocusList gives key focus to list i. Out-of-range indices are ignored.
func (b *BaseView) FocusList(i int) {
	if i < 0 || i >= len(b.lists) {
		return
	}
	b.focus = i
	b.applyFocus()
}

// SetActive focuses the example's lists when the main pane is focused.
func (b *BaseView) SetActive(active bool) {
	b.active = active
	b.applyFocus()
}

func (b *BaseView) applyFocus() {
	for i, l := range b.lists {
		if b.active && i == b.focus {
			l.Focus()
		} else {
			l.Blur()
		}
	}
}

// SetWidth sizes every list to the content width.
func (b *BaseView) SetWidth(width int) {
	b.width = width
	for _, l := range b.lists {
		l.SetSize(max(width-2, 0), 2)
	}
}

// OnEnter does nothing by default.
func (b *BaseView) OnEnter(string) tea.Cmd { return nil }

// OnExit does nothing by default.
func (b *BaseView) OnExit() {}

// Actions has no example-specific keys by default.
func (b *BaseView) Actions() [][]string { return nil }

// renderList draws list i with a focus marker in the left margin.
func (b *BaseView) renderList(i int) string {
	if i < 0 || i >= len(b.lists) {
		return ""
	}
	l := b.lists[i]
	marker := "  "
	if l.Focused() {
		marker = styles.Focus.Render("▸ ")
	}
	rows := strings.Split(l.View(), "\n")
	for j := range rows {
		if j == 0 {
			rows[j] = marker + rows[j]
		} else {
			rows[j] = "  " + rows[j]
		}
	}
	return strings.Join(rows, "\n")
}

// writeList appends list i to sb and records the rows it occupies.
func (b *BaseView) writeList(sb *strings.Builder, i int) {
	view := b.renderList(i)
	if i >= 0 && i < len(b.spans) {
		b.spans[i] = listSpan{
			top:  strings.Count(sb.String(), "\n"),
			rows: strings.Count(view, "\n") + 1,
		}
	}
	sb.WriteString(view)
}

// ListAt returns the list drawn on line y of the last Render and the row
// within that list.
func (b *BaseView) ListAt(y int) (index, row int, ok bool) {
	for i, sp := range b.spans {
		if sp.rows > 0 && y >= sp.top && y < sp.top+sp.rows {
			return i, y - sp.top, true
		}
	}
	return 0, 0, false
}

// Find returns the list with the given ID.
func (b *BaseView) Find(id int64) (*components.SwitchList, bool) {
	for _, l := range b.lists {
		if l.ID() == id {
			return l, true
		}
	}
	return nil, false
}

// options builds string options from value/label pairs.
func options(pairs ...string) []switchlist.Option[string] {
	opts := make([]switchlist.Option[string], 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		opts = append(opts, switchlist.Option[string]{Value: pairs[i], Label: pairs[i+1]})
	}
	return opts
}
