package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/multiswitch/internal/tui/styles"
)

// HelpClosedMsg is emitted when the help overlay is dismissed.
type HelpClosedMsg struct{}

// HelpModel renders the help overlay with keyboard shortcuts.
type HelpModel struct {
	width, height int
	keymap        help.KeyMap
	extra         [][]string
	model         help.Model
}

// NewHelp creates a new HelpModel.
func NewHelp() *HelpModel {
	m := help.New()
	m.Styles.FullKey = styles.HelpKey
	m.Styles.FullDesc = styles.HelpDesc
	m.Styles.FullSeparator = styles.HelpSeparator
	m.Styles.ShortKey = styles.HelpKey
	m.Styles.ShortDesc = styles.HelpDesc
	m.Styles.ShortSeparator = styles.HelpSeparator
	m.ShowAll = true
	return &HelpModel{model: m}
}

// Init implements Component.
func (h *HelpModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (h *HelpModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?", "q":
			return h, func() tea.Msg {
				return HelpClosedMsg{}
			}
		}
	}
	return h, nil
}

// View implements Component.
func (h *HelpModel) View() string {
	if h.keymap == nil {
		return styles.Dialog.Render("No keybindings registered")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("⌨️  Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(h.model.View(h.keymap))

	if len(h.extra) > 0 {
		b.WriteString("\n\n")
		b.WriteString(styles.Subtitle.Render("This example"))
		b.WriteString("\n")
		for _, item := range h.extra {
			keyStyle := styles.HelpKey.Width(8).Align(lipgloss.Right).PaddingRight(2)
			b.WriteString(keyStyle.Render(item[0]) + styles.HelpDesc.Render(item[1]) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("Press ESC or ? to close"))

	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, styles.Dialog.Render(b.String()))
}

// SetSize implements Component.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height
	h.model.Width = width - 8
}

// SetKeymap sets the bindings to document.
func (h *HelpModel) SetKeymap(km help.KeyMap) {
	h.keymap = km
}

// SetExtra sets key/description pairs for the current example.
func (h *HelpModel) SetExtra(items [][]string) {
	h.extra = items
}

// ShortHelp renders a one-line help for the status bar.
func (h *HelpModel) ShortHelp(bindings ...key.Binding) string {
	m := h.model
	m.ShowAll = false
	return m.ShortHelpView(bindings)
}
