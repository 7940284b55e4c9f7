package styles

import "github.com/charmbracelet/lipgloss"

// Theme holds the four colors a switch list is drawn with.
type Theme struct {
	ActiveBackground   lipgloss.TerminalColor
	InactiveBackground lipgloss.TerminalColor
	ActiveText         lipgloss.TerminalColor
	InactiveText       lipgloss.TerminalColor
}

// DefaultTheme is the violet palette used by the segmented control.
func DefaultTheme() Theme {
	return Theme{
		ActiveBackground:   lipgloss.Color("#7C3AED"),
		InactiveBackground: lipgloss.Color("#E8DDFA"),
		ActiveText:         lipgloss.Color("#FFFFFF"),
		InactiveText:       lipgloss.Color("#7C3AED"),
	}
}

// DefaultTabsTheme is the palette used by the tab bar. Inactive labels are
// a faded accent instead of sitting on a track.
func DefaultTabsTheme() Theme {
	return Theme{
		ActiveBackground:   lipgloss.Color("#7C3AED"),
		InactiveBackground: Subtle,
		ActiveText:         lipgloss.Color("#7C3AED"),
		InactiveText:       lipgloss.Color("#A47AF2"),
	}
}

// SwitchList is the resolved set of styles for one switch list.
type SwitchList struct {
	// Track is the container behind inactive options.
	Track lipgloss.Style
	// Indicator is the moving pill (segmented) or underline (tabs).
	Indicator lipgloss.Style
	// Rail is the underline row outside the indicator (tabs only).
	Rail lipgloss.Style

	ActiveText   lipgloss.Style
	InactiveText lipgloss.Style
}

// SegmentedControl styles a pill that slides behind the active label.
func SegmentedControl(t Theme) SwitchList {
	return SwitchList{
		Track:        lipgloss.NewStyle().Background(t.InactiveBackground),
		Indicator:    lipgloss.NewStyle().Background(t.ActiveBackground),
		ActiveText:   lipgloss.NewStyle().Foreground(t.ActiveText).Bold(true),
		InactiveText: lipgloss.NewStyle().Foreground(t.InactiveText).Bold(true),
	}
}

// Tabs styles an underline that slides beneath the active label.
func Tabs(t Theme) SwitchList {
	return SwitchList{
		Track:        lipgloss.NewStyle(),
		Indicator:    lipgloss.NewStyle().Foreground(t.ActiveBackground),
		Rail:         lipgloss.NewStyle().Foreground(t.InactiveBackground).Faint(true),
		ActiveText:   lipgloss.NewStyle().Foreground(t.ActiveText).Bold(true),
		InactiveText: lipgloss.NewStyle().Foreground(t.InactiveText),
	}
}

// AccentTheme derives a palette from an accent color. Tabs have no track, so
// their active label takes the accent instead of sitting on it.
func AccentTheme(tabs bool, accent, track, inactiveText string) Theme {
	if tabs {
		return Theme{
			ActiveBackground:   lipgloss.Color(accent),
			InactiveBackground: Subtle,
			ActiveText:         lipgloss.Color(accent),
			InactiveText:       lipgloss.Color(inactiveText),
		}
	}
	return Theme{
		ActiveBackground:   lipgloss.Color(accent),
		InactiveBackground: lipgloss.Color(track),
		ActiveText:         lipgloss.Color("#FFFFFF"),
		InactiveText:       lipgloss.Color(inactiveText),
	}
}
