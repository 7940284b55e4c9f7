package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/multiswitch/internal/config"
	"github.com/hy4ri/multiswitch/internal/i18n"
	"github.com/hy4ri/multiswitch/internal/tui/components"
	"github.com/hy4ri/multiswitch/internal/tui/styles"
	"github.com/hy4ri/multiswitch/internal/tui/views"
)

// sidebarWidth is the sidebar's width inside its border.
const sidebarWidth = 30

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	config *config.Config
	log    *slog.Logger

	// Examples
	ctx         *views.Context
	coordinator *views.Coordinator
	variant     components.Variant

	// UI state
	focusedPane components.Pane
	showHelp    bool
	filtering   bool
	statusMsg   string
	err         error
	width       int
	height      int

	// Components
	keymap      Keymap
	sidebarComp *components.SidebarModel
	helpComp    *components.HelpModel
	filterInput textinput.Model

	// Side effects, replaced in tests
	notifier Notifier
	copy     func(string) error
}

// NewApp creates a new App instance.
func NewApp(cfg *config.Config, tr *i18n.Translator, log *slog.Logger) (*App, error) {
	listCfg, err := ListConfig(cfg)
	if err != nil {
		return nil, err
	}
	listCfg.Logger = log

	filterInput := textinput.New()
	filterInput.Prompt = "/ "
	filterInput.Placeholder = "filter examples..."
	filterInput.CharLimit = 40
	filterInput.PromptStyle = styles.Input
	filterInput.Width = sidebarWidth

	ctx := &views.Context{List: listCfg, Tr: tr, Log: log}
	app := &App{
		config:      cfg,
		log:         log,
		ctx:         ctx,
		coordinator: views.NewCoordinator(ctx, views.DefaultRegistry(ctx)),
		variant:     listCfg.Variant,
		focusedPane: components.PaneMain,
		keymap:      DefaultKeymap(),
		sidebarComp: components.NewSidebar(),
		helpComp:    components.NewHelp(),
		filterInput: filterInput,
		notifier:    beeepNotifier{},
		copy:        clipboard.WriteAll,
	}

	app.helpComp.SetKeymap(app.keymap)
	app.sidebarComp.SetFooter(app.helpComp.ShortHelp(app.keymap.Filter, app.keymap.Help))
	app.refreshSidebar()
	if ex := app.coordinator.Current(); ex != nil {
		app.sidebarComp.SetActive(ex.Name())
		app.helpComp.SetExtra(ex.Actions())
	}
	app.applyFocus()

	return app, nil
}

// ListConfig maps the user configuration onto the switch list defaults.
func ListConfig(cfg *config.Config) (components.SwitchListConfig, error) {
	variant, err := components.ParseVariant(cfg.UI.Variant)
	if err != nil {
		return components.SwitchListConfig{}, err
	}
	align, err := components.ParseAlign(cfg.UI.Align)
	if err != nil {
		return components.SwitchListConfig{}, err
	}

	lc := components.SwitchListConfig{
		Variant:       variant,
		Align:         align,
		Gap:           cfg.UI.Gap,
		Padding:       cfg.UI.Padding,
		MaxLabelWidth: cfg.UI.MaxLabelWidth,
		Duration:      time.Duration(cfg.UI.AnimationMS) * time.Millisecond,
		FrameInterval: time.Duration(cfg.UI.FrameMS) * time.Millisecond,
	}
	if !cfg.Theme.IsZero() {
		theme := styles.DefaultTheme()
		if variant == components.VariantTabs {
			theme = styles.DefaultTabsTheme()
		}
		override := func(dst *lipgloss.TerminalColor, hex string) {
			if hex != "" {
				*dst = lipgloss.Color(hex)
			}
		}
		override(&theme.ActiveBackground, cfg.Theme.ActiveBackground)
		override(&theme.InactiveBackground, cfg.Theme.InactiveBackground)
		override(&theme.ActiveText, cfg.Theme.ActiveText)
		override(&theme.InactiveText, cfg.Theme.InactiveText)
		lc.Theme = &theme
	}
	return lc, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.coordinator.Init(),
		textinput.Blink,
	)
}

// refreshSidebar lists the examples matching the filter query.
func (a *App) refreshSidebar() {
	matches := a.coordinator.Registry().Filter(a.filterInput.Value())
	items := make([]components.SidebarItem, 0, len(matches))
	for _, m := range matches {
		items = append(items, components.SidebarItem{
			ID:      m.Example.Name(),
			Name:    m.Example.Title(),
			Icon:    m.Icon,
			Matched: m.MatchedIndexes,
		})
	}
	a.sidebarComp.SetItems(items)
}

// applyFocus hands key focus to the focused pane.
func (a *App) applyFocus() {
	if a.focusedPane == components.PaneSidebar {
		a.sidebarComp.Focus()
		a.coordinator.SetActive(false)
		return
	}
	a.sidebarComp.Blur()
	a.coordinator.SetActive(true)
}

// switchTo shows the named example.
func (a *App) switchTo(name, param string) tea.Cmd {
	cmd := a.coordinator.SwitchTo(name, param)
	if ex := a.coordinator.Current(); ex != nil {
		a.sidebarComp.SetActive(ex.Name())
		a.helpComp.SetExtra(ex.Actions())
	}
	return cmd
}

// contentSize returns the example pane's inner size.
func (a *App) contentSize() (int, int) {
	// Sidebar border(2), main border(2) and padding(2), status bar(1)
	return max(a.width-sidebarWidth-6, 0), max(a.height-3, 0)
}

// Message types
type copiedMsg struct {
	text string
	err  error
}

func (a *App) copyCmd(text string) tea.Cmd {
	write := a.copy
	return func() tea.Msg {
		return copiedMsg{text: text, err: write(text)}
	}
}

func (a *App) setStatus(format string, args ...any) {
	a.err = nil
	a.statusMsg = fmt.Sprintf(format, args...)
}
