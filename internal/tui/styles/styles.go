// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
)

// Base styles
var (
	// Title is the style for section titles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)

	// Description is for example descriptions
	Description = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true)
)

// Sidebar styles
var (
	// Sidebar is the style for the example list container
	Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	// SidebarFocused is for when the example list is focused
	SidebarFocused = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)

	// SidebarItem is an unselected example
	SidebarItem = lipgloss.NewStyle().
			PaddingLeft(1)

	// SidebarSelected is the example under the cursor
	SidebarSelected = lipgloss.NewStyle().
			PaddingLeft(1).
			Bold(true).
			Foreground(Highlight)

	// SidebarMatch highlights fuzzy-matched characters
	SidebarMatch = lipgloss.NewStyle().
			Underline(true)
)

// Main content area styles
var (
	// MainContent is the style for the example pane
	MainContent = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Subtle).
			Padding(0, 1)

	// MainContentFocused is for when the example pane is focused
	MainContentFocused = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(Highlight).
				Padding(0, 1)

	// Focus marks the switch list that receives keys
	Focus = lipgloss.NewStyle().
		Foreground(Highlight).
		Bold(true)
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Padding(0, 1)

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Bold(true)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
				Bold(true)
)

// Inspector styles
var (
	// InspectorKey is for field names in the state inspector
	InspectorKey = lipgloss.NewStyle().
			Foreground(Subtle).
			Width(14)

	// InspectorValue is for field values in the state inspector
	InspectorValue = lipgloss.NewStyle().
			Bold(true)
)

// Input is the style for the filter input
var Input = lipgloss.NewStyle().
	Foreground(Highlight)

// Help styles
var (
	// HelpKey is for key names in help
	HelpKey = lipgloss.NewStyle().
		Foreground(Highlight).
		Bold(true)

	// HelpDesc is for help descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	// HelpSeparator separates short help entries
	HelpSeparator = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#DDDADA", Dark: "#3C3C3C"})

	// Dialog is the style for overlays
	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)
)
