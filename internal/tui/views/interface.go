package views

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/multiswitch/internal/tui/components"
)

// Example defines the contract for one gallery screen.
// Each example (day of time, dynamic labels, etc.) implements this interface.
type Example interface {
	// Name returns the example identifier.
	Name() string

	// Title and Description are shown in the sidebar and header.
	Title() string
	Description() string

	// Lists returns the switch lists on this screen, top to bottom.
	Lists() []*components.SwitchList

	// FocusedList returns the list receiving keys, or nil.
	FocusedList() *components.SwitchList

	// FocusList gives key focus to list i.
	FocusList(i int)

	// ListAt maps line y of the last Render to a list and a row inside it.
	ListAt(y int) (index, row int, ok bool)

	// HandleKey processes keyboard input for this example.
	// Returns the command to execute and whether the key was consumed.
	HandleKey(msg tea.KeyMsg) (cmd tea.Cmd, consumed bool)

	// Update receives every message that is not a key press, so switch
	// lists keep animating while their screen is hidden.
	Update(msg tea.Msg) tea.Cmd

	// OnEnter is called when switching to this example. param is passed
	// along by whoever navigated here and may be empty.
	OnEnter(param string) tea.Cmd

	// OnExit is called when leaving this example.
	OnExit()

	// Remount rebuilds the switch lists, e.g. after the variant changed.
	Remount() tea.Cmd

	// SetActive focuses the example's lists while the main pane is focused.
	SetActive(active bool)

	// SetWidth sizes the example's lists.
	SetWidth(width int)

	// Actions lists example-specific keys for the help overlay.
	Actions() [][]string

	// Render returns the example's content.
	Render(width, height int) string
}

// NavigateMsg asks the gallery to open another example.
type NavigateMsg struct {
	To    string
	Param string
}

// StatusMsg displays a message in the status bar.
type StatusMsg struct {
	Text string
	Err  error
}
