package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/multiswitch/internal/tui/components"
	"github.com/hy4ri/multiswitch/internal/tui/styles"
)

func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}
	if a.showHelp {
		return a.helpComp.View()
	}

	w, h := a.contentSize()
	mainStyle := styles.MainContent
	if a.focusedPane == components.PaneMain {
		mainStyle = styles.MainContentFocused
	}
	main := mainStyle.
		Width(w + 2).
		Height(h).
		MaxHeight(h + 2).
		Render(a.coordinator.Render(w, h))

	body := lipgloss.JoinHorizontal(lipgloss.Top, a.sidebarComp.View(), main)
	return lipgloss.JoinVertical(lipgloss.Left, body, a.renderStatusBar())
}

// renderStatusBar shows the filter input, the last error or status, or the
// short help.
func (a *App) renderStatusBar() string {
	bar := styles.StatusBar.Width(a.width)
	switch {
	case a.filtering:
		return bar.Render(a.filterInput.View())
	case a.err != nil:
		return bar.Render(styles.StatusBarError.Render("Error: " + a.err.Error()))
	case a.statusMsg != "":
		return bar.Render(styles.StatusBarSuccess.Render(a.statusMsg))
	}
	return bar.Render(a.helpComp.ShortHelp(a.keymap.ShortHelp()...))
}
