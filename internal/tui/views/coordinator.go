package views

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/multiswitch/internal/tui/components"
)

// Coordinator manages example lifecycle and delegates to the shown example.
type Coordinator struct {
	registry *Registry
	ctx      *Context
	current  Example
	active   bool
	width    int
}

// NewCoordinator creates a coordinator showing the first registered example.
func NewCoordinator(ctx *Context, reg *Registry) *Coordinator {
	c := &Coordinator{registry: reg, ctx: ctx}
	if infos := reg.Examples(); len(infos) > 0 {
		c.current = infos[0].Example
	}
	return c
}

// Init mounts every example. Hidden examples stay mounted so navigation
// between them keeps their state.
func (c *Coordinator) Init() tea.Cmd {
	return c.remountAll()
}

func (c *Coordinator) remountAll() tea.Cmd {
	var cmds []tea.Cmd
	for _, info := range c.registry.Examples() {
		cmds = append(cmds, info.Example.Remount())
		info.Example.SetWidth(c.width)
		info.Example.SetActive(c.active && info.Example == c.current)
	}
	return tea.Batch(cmds...)
}

// Registry returns the registry.
func (c *Coordinator) Registry() *Registry {
	return c.registry
}

// Current returns the shown example.
func (c *Coordinator) Current() Example {
	return c.current
}

// SwitchTo shows the named example and passes param to it.
func (c *Coordinator) SwitchTo(name, param string) tea.Cmd {
	ex, ok := c.registry.Get(name)
	if !ok {
		return nil
	}
	if c.current != nil && c.current != ex {
		c.current.SetActive(false)
		c.current.OnExit()
	}
	c.current = ex
	ex.SetActive(c.active)
	c.ctx.Log.Debug("switched example", "example", name, "param", param)
	return ex.OnEnter(param)
}

// HandleKey delegates key handling to the shown example.
// Returns the command and whether the key was consumed.
func (c *Coordinator) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if c.current == nil {
		return nil, false
	}
	return c.current.HandleKey(msg)
}

// Update delivers msg to every example.
func (c *Coordinator) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, info := range c.registry.Examples() {
		cmds = append(cmds, info.Example.Update(msg))
	}
	return tea.Batch(cmds...)
}

// SetVariant changes the default variant and remounts every example.
func (c *Coordinator) SetVariant(v components.Variant) tea.Cmd {
	c.ctx.List.Variant = v
	return c.remountAll()
}

// SetActive focuses the shown example's lists.
func (c *Coordinator) SetActive(active bool) {
	c.active = active
	if c.current != nil {
		c.current.SetActive(active)
	}
}

// SetWidth sizes every example.
func (c *Coordinator) SetWidth(width int) {
	c.width = width
	for _, info := range c.registry.Examples() {
		info.Example.SetWidth(width)
	}
}

// Render draws the shown example.
func (c *Coordinator) Render(width, height int) string {
	if c.current == nil {
		return ""
	}
	return c.current.Render(width, height)
}

// Click presses the option under (x, y), relative to the top-left cell of
// the shown example's content, and focuses the list it belongs to.
func (c *Coordinator) Click(x, y, height int) tea.Cmd {
	if c.current == nil {
		return nil
	}
	c.current.Render(c.width, height)
	i, row, ok := c.current.ListAt(y)
	if !ok {
		return nil
	}
	c.current.FocusList(i)
	// Every list row is indented by the two-cell focus marker.
	return c.current.Lists()[i].Click(x-2, row)
}
