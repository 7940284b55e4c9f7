package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/multiswitch/internal/tui/styles"
	"github.com/mattn/go-runewidth"
)

// SidebarItem is one example in the sidebar.
type SidebarItem struct {
	ID   string
	Name string
	Icon string
	// Matched are byte offsets into Name highlighted by the filter.
	Matched []int
}

// ExampleSelectedMsg is emitted when an example is chosen in the sidebar.
type ExampleSelectedMsg struct {
	ID string
}

// SidebarModel manages the example list navigation.
type SidebarModel struct {
	items         []SidebarItem
	cursor        int
	scrollOffset  int
	width, height int
	focused       bool
	activeID      string // Currently shown example
	footer        string
}

// NewSidebar creates a new SidebarModel.
func NewSidebar() *SidebarModel {
	return &SidebarModel{
		items: []SidebarItem{},
	}
}

// Init implements Component.
func (s *SidebarModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (s *SidebarModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s.handleKeyMsg(msg)
	}
	return s, nil
}

// handleKeyMsg processes keyboard input for the sidebar.
func (s *SidebarModel) handleKeyMsg(msg tea.KeyMsg) (Component, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		s.MoveCursor(1)
	case "k", "up":
		s.MoveCursor(-1)
	case "g", "home":
		s.cursor = 0
	case "G", "end":
		s.MoveCursor(len(s.items))
	case "enter":
		if item := s.CurrentItem(); item != nil {
			id := item.ID
			return s, func() tea.Msg {
				return ExampleSelectedMsg{ID: id}
			}
		}
	}
	return s, nil
}

// Click selects the item on row y, counted from the top border.
func (s *SidebarModel) Click(x, y int) tea.Cmd {
	// Border(1) + Title(1) + Blank(1)
	row := y - 3 + s.scrollOffset
	if row < s.scrollOffset || row >= len(s.items) {
		return nil
	}
	s.cursor = row
	id := s.items[row].ID
	return func() tea.Msg { return ExampleSelectedMsg{ID: id} }
}

// View implements Component.
func (s *SidebarModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Examples"))
	b.WriteString("\n\n")

	// Inside borders: Title(1) + Blank(1) + Blank(1) + Footer(1)
	innerHeight := s.height - 2
	listHeight := innerHeight - 4
	if listHeight < 1 {
		listHeight = 1
	}

	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+listHeight {
		s.scrollOffset = s.cursor - listHeight + 1
	}
	if s.scrollOffset > len(s.items)-listHeight {
		s.scrollOffset = len(s.items) - listHeight
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}

	startIndex := s.scrollOffset
	endIndex := min(startIndex+listHeight, len(s.items))

	// Cursor(2) + Icon(2) + Space(1) + Borders and padding(4)
	maxNameLen := s.width - 9

	if len(s.items) == 0 {
		b.WriteString(styles.Description.Render("  no matches"))
		b.WriteString("\n")
		endIndex = startIndex + 1
	}

	for i := startIndex; i < len(s.items) && i < endIndex; i++ {
		item := s.items[i]

		cursor := "  "
		style := styles.SidebarItem
		if i == s.cursor && s.focused {
			cursor = "> "
			style = styles.SidebarSelected
		}
		if item.ID == s.activeID {
			style = style.Bold(true)
		}

		name := highlight(truncateName(item.Name, maxNameLen), item.Matched)
		line := style.MaxWidth(s.width - 2).Render(cursor + item.Icon + " " + name)
		b.WriteString(line)
		b.WriteString("\n")
	}

	if rendered := endIndex - startIndex; rendered < listHeight {
		b.WriteString(strings.Repeat("\n", listHeight-rendered))
	}

	b.WriteString("\n")
	b.WriteString(styles.Description.Render(s.footer))

	if innerHeight < 3 {
		innerHeight = 3
	}
	containerStyle := styles.Sidebar
	if s.focused {
		containerStyle = styles.SidebarFocused
	}

	return containerStyle.Width(s.width).Height(innerHeight).Render(b.String())
}

// truncateName truncates a name to the given width, appending "…" if truncated.
func truncateName(name string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(name, width, "…")
}

// highlight underlines the matched bytes of name. Offsets past a truncation
// point are ignored.
func highlight(name string, matched []int) string {
	if len(matched) == 0 {
		return name
	}
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}
	var b strings.Builder
	for i, r := range name {
		if hit[i] {
			b.WriteString(styles.SidebarMatch.Render(string(r)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SetSize implements Component.
func (s *SidebarModel) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Focus sets the sidebar as focused.
func (s *SidebarModel) Focus() {
	s.focused = true
}

// Blur removes focus from the sidebar.
func (s *SidebarModel) Blur() {
	s.focused = false
}

// Focused returns whether the sidebar is focused.
func (s *SidebarModel) Focused() bool {
	return s.focused
}

// SetItems replaces the items, keeping the cursor on the same example when
// it is still listed.
func (s *SidebarModel) SetItems(items []SidebarItem) {
	var current string
	if item := s.CurrentItem(); item != nil {
		current = item.ID
	}
	s.items = items
	s.cursor = 0
	for i, item := range items {
		if item.ID == current {
			s.cursor = i
			break
		}
	}
}

// SetActive marks the example currently shown in the main pane.
func (s *SidebarModel) SetActive(id string) {
	s.activeID = id
}

// SetFooter sets the hint line under the list.
func (s *SidebarModel) SetFooter(footer string) {
	s.footer = footer
}

// MoveCursor moves the cursor by delta, clamped to the list.
func (s *SidebarModel) MoveCursor(delta int) {
	if len(s.items) == 0 {
		s.cursor = 0
		return
	}
	s.cursor = min(max(s.cursor+delta, 0), len(s.items)-1)
}

// Cursor returns the current cursor position.
func (s *SidebarModel) Cursor() int {
	return s.cursor
}

// Items returns the current sidebar items.
func (s *SidebarModel) Items() []SidebarItem {
	return s.items
}

// CurrentItem returns the item at the current cursor position.
func (s *SidebarModel) CurrentItem() *SidebarItem {
	if s.cursor >= 0 && s.cursor < len(s.items) {
		return &s.items[s.cursor]
	}
	return nil
}
