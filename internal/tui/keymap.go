// Package tui provides the terminal user interface for the switch list
// gallery.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/hy4ri/multiswitch/internal/tui/components"
)

// Keymap contains all key bindings for the application.
type Keymap struct {
	// Navigation
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding

	// Actions
	Quit       key.Binding
	Help       key.Binding
	Filter     key.Binding
	SwitchPane key.Binding
	Variant    key.Binding
	Copy       key.Binding

	// List holds the bindings a focused switch list answers to.
	List components.SwitchListKeyMap
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open example")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),

		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Filter:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter examples")),
		SwitchPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Variant:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "segmented/tabs")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy value")),

		List: components.DefaultSwitchListKeyMap(),
	}
}

// ShortHelp implements help.KeyMap.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchPane, k.Filter, k.Variant, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back},
		{k.List.Prev, k.List.Next, k.List.First, k.List.Last, k.List.ScrollLeft, k.List.ScrollRight},
		{k.SwitchPane, k.Filter, k.Variant, k.Copy, k.Help, k.Quit},
	}
}
