package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/hy4ri/multiswitch/internal/tui/components"
)

// Notifier sends desktop notifications.
type Notifier interface {
	Notify(title, message string) error
}

type beeepNotifier struct{}

func (beeepNotifier) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// notifyChange announces a completed transition when notifications are on.
func (a *App) notifyChange(msg components.ChangedMsg) tea.Cmd {
	if !a.config.UI.Notify {
		return nil
	}
	// Hidden examples settle on their own; only the shown one is announced.
	ex := a.coordinator.Current()
	if ex == nil || !owns(ex.Lists(), msg.ID) {
		return nil
	}
	title := ex.Title()
	n, log := a.notifier, a.log
	return func() tea.Msg {
		if err := n.Notify(title, "Selected: "+msg.Value); err != nil {
			log.Warn("failed to send notification", "error", err)
		}
		return nil
	}
}

func owns(lists []*components.SwitchList, id int64) bool {
	for _, l := range lists {
		if l.ID() == id {
			return true
		}
	}
	return false
}
