package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/multiswitch/internal/tui/components"
	"github.com/hy4ri/multiswitch/internal/tui/views"
)

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.MouseMsg:
		return a.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.sidebarComp.SetSize(sidebarWidth, max(msg.Height-1, 3))
		a.helpComp.SetSize(msg.Width, msg.Height)
		w, _ := a.contentSize()
		a.coordinator.SetWidth(w)
		return a, nil

	case components.ExampleSelectedMsg:
		a.focusedPane = components.PaneMain
		a.applyFocus()
		return a, a.switchTo(msg.ID, "")

	case components.FocusPaneMsg:
		a.focusedPane = msg.Pane
		a.applyFocus()
		return a, nil

	case components.HelpClosedMsg:
		a.showHelp = false
		return a, nil

	case views.NavigateMsg:
		a.log.Info("navigate", "to", msg.To, "param", msg.Param)
		return a, a.switchTo(msg.To, msg.Param)

	case views.StatusMsg:
		if msg.Err != nil {
			a.err = msg.Err
			a.statusMsg = ""
			return a, nil
		}
		a.setStatus("%s", msg.Text)
		return a, nil

	case copiedMsg:
		if msg.err != nil {
			a.err = msg.err
			a.log.Warn("failed to copy", "error", msg.err)
			return a, nil
		}
		a.setStatus("Copied: %s", msg.text)
		return a, nil

	case components.ChangedMsg:
		return a, tea.Batch(a.coordinator.Update(msg), a.notifyChange(msg))
	}

	// Switch list traffic and anything else belongs to the examples.
	return a, a.coordinator.Update(msg)
}

// handleKeyMsg routes a key to the overlay, the filter, the global bindings
// and finally the focused pane.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.showHelp {
		_, cmd := a.helpComp.Update(msg)
		return a, cmd
	}
	if a.filtering {
		return a.handleFilterKey(msg)
	}

	km := a.keymap
	switch {
	case key.Matches(msg, km.Quit):
		return a, tea.Quit
	case key.Matches(msg, km.Help):
		a.showHelp = true
		return a, nil
	case key.Matches(msg, km.Filter):
		a.filtering = true
		a.focusedPane = components.PaneSidebar
		a.applyFocus()
		return a, a.filterInput.Focus()
	case key.Matches(msg, km.SwitchPane):
		if a.focusedPane == components.PaneSidebar {
			a.focusedPane = components.PaneMain
		} else {
			a.focusedPane = components.PaneSidebar
		}
		a.applyFocus()
		return a, nil
	case key.Matches(msg, km.Variant):
		return a, a.toggleVariant()
	case key.Matches(msg, km.Copy):
		return a, a.copyValue()
	}

	if a.focusedPane == components.PaneSidebar {
		_, cmd := a.sidebarComp.Update(msg)
		return a, cmd
	}

	if cmd, consumed := a.coordinator.HandleKey(msg); consumed {
		return a, cmd
	}
	if key.Matches(msg, km.Back) {
		a.focusedPane = components.PaneSidebar
		a.applyFocus()
	}
	return a, nil
}

// handleFilterKey edits the sidebar filter. Enter opens the best match and
// esc clears the query.
func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.filtering = false
		a.filterInput.Blur()
		a.filterInput.SetValue("")
		a.refreshSidebar()
		return a, nil
	case tea.KeyEnter:
		a.filtering = false
		a.filterInput.Blur()
		item := a.sidebarComp.CurrentItem()
		if item == nil {
			a.err = errors.New("no example matches " + a.filterInput.Value())
			return a, nil
		}
		id := item.ID
		a.filterInput.SetValue("")
		a.refreshSidebar()
		a.focusedPane = components.PaneMain
		a.applyFocus()
		return a, a.switchTo(id, "")
	case tea.KeyUp, tea.KeyDown:
		_, cmd := a.sidebarComp.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.filterInput, cmd = a.filterInput.Update(msg)
	a.refreshSidebar()
	return a, cmd
}

// toggleVariant flips between segmented controls and tabs. Lists remount so
// they measure with the new spacing.
func (a *App) toggleVariant() tea.Cmd {
	if a.variant == components.VariantTabs {
		a.variant = components.VariantSegmented
	} else {
		a.variant = components.VariantTabs
	}
	a.setStatus("Variant: %s", a.variant)
	a.log.Info("variant changed", "variant", a.variant.String())
	return a.coordinator.SetVariant(a.variant)
}

// copyValue copies the focused list's value to the clipboard.
func (a *App) copyValue() tea.Cmd {
	ex := a.coordinator.Current()
	if ex == nil {
		return nil
	}
	l := ex.FocusedList()
	if l == nil {
		return nil
	}
	return a.copyCmd(l.Value())
}

// handleMouseMsg forwards left clicks to the sidebar or the example pane.
func (a *App) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !a.config.UI.Mouse || a.showHelp {
		return a, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return a, nil
	}

	// Sidebar border(2)
	if msg.X < sidebarWidth+2 {
		a.focusedPane = components.PaneSidebar
		a.applyFocus()
		return a, a.sidebarComp.Click(msg.X, msg.Y)
	}

	a.focusedPane = components.PaneMain
	a.applyFocus()
	// Main border(1) and padding(1) on the left, border(1) on top.
	x := msg.X - (sidebarWidth + 2) - 2
	y := msg.Y - 1
	_, h := a.contentSize()
	return a, a.coordinator.Click(x, y, h)
}
