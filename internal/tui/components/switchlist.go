package components

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/multiswitch/internal/switchlist"
	"github.com/hy4ri/multiswitch/internal/tui/styles"
	"github.com/mattn/go-runewidth"
	"go.uber.org/atomic"
)

// Variant selects how the indicator is drawn.
type Variant int

const (
	// VariantSegmented draws a pill behind the active option.
	VariantSegmented Variant = iota
	// VariantTabs draws an underline beneath the active label.
	VariantTabs
)

func (v Variant) String() string {
	if v == VariantTabs {
		return "tabs"
	}
	return "segmented"
}

// ParseVariant parses "segmented" or "tabs".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "segmented":
		return VariantSegmented, nil
	case "tabs":
		return VariantTabs, nil
	}
	return VariantSegmented, fmt.Errorf("unknown variant %q", s)
}

// Align positions the switch list when it is narrower than its width.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlign parses "left", "center" or "right".
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("unknown alignment %q", s)
}

// segmentMargin is the blank cell on each side of a segmented label. It is
// part of the option, so the pill covers it.
const segmentMargin = 1

// SwitchListConfig configures a SwitchList.
type SwitchListConfig struct {
	Variant Variant
	Align   Align

	// Gap and Padding apply to the tabs variant. The segmented control
	// always uses zero for both.
	Gap     int
	Padding int

	// MaxLabelWidth truncates longer labels with an ellipsis. Zero disables.
	MaxLabelWidth int

	Duration      time.Duration
	FrameInterval time.Duration

	// Theme overrides the variant's default colors when set.
	Theme *styles.Theme

	Clock  switchlist.Clock
	Logger *slog.Logger
}

// SwitchListKeyMap are the bindings a focused switch list responds to.
type SwitchListKeyMap struct {
	Prev        key.Binding
	Next        key.Binding
	First       key.Binding
	Last        key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding
}

// DefaultSwitchListKeyMap returns the default bindings.
func DefaultSwitchListKeyMap() SwitchListKeyMap {
	return SwitchListKeyMap{
		Prev:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next:        key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		First:       key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		Last:        key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		ScrollLeft:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "scroll left")),
		ScrollRight: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "scroll right")),
	}
}

var lastID atomic.Int64

func nextID() int64 {
	return lastID.Inc()
}

// SwitchList renders a switch list in the terminal. The coordinator decides
// where the indicator goes; the component measures options, scrolls, and
// draws cells.
type SwitchList struct {
	id     int64
	cfg    SwitchListConfig
	keys   SwitchListKeyMap
	styles styles.SwitchList
	log    *slog.Logger

	coord    *switchlist.Coordinator[string]
	animator *switchlist.Animator
	scroll   *switchlist.Tween
	frames   *FrameLoop

	width, height int
	focused       bool

	wake      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	outbox    []tea.Msg
}

// NewSwitchList creates a switch list showing options with defaultValue as
// the initial selection.
func NewSwitchList(options []switchlist.Option[string], defaultValue string, cfg SwitchListConfig) (*SwitchList, error) {
	if cfg.Variant == VariantSegmented {
		cfg.Gap, cfg.Padding = 0, 0
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &SwitchList{
		id:       nextID(),
		cfg:      cfg,
		keys:     DefaultSwitchListKeyMap(),
		log:      log,
		animator: switchlist.NewAnimator(cfg.Clock),
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	s.log = log.With("switchlist", s.id)
	s.styles = s.resolveStyles()
	s.frames = NewFrameLoop(s.id, cfg.FrameInterval)
	s.scroll = s.animator.NewTween()

	coord, err := switchlist.New(options, defaultValue, switchlist.Config{
		Gap:        float64(cfg.Gap),
		Padding:    float64(cfg.Padding),
		Duration:   cfg.Duration,
		Easing:     switchlist.EaseInOutQuad,
		Host:       s,
		TranslateX: s.animator.NewTween(),
		Width:      s.animator.NewTween(),
		Logger:     s.log,
	})
	if err != nil {
		return nil, fmt.Errorf("switch list: %w", err)
	}
	s.coord = coord
	coord.OnChange(func(v string) {
		s.outbox = append(s.outbox, ChangedMsg{ID: s.id, Value: v})
	})
	coord.OnPress(func(v string) {
		s.outbox = append(s.outbox, PressedMsg{ID: s.id, Value: v})
	})
	coord.Handle().SetWake(func() {
		select {
		case s.wake <- struct{}{}:
		default:
		}
	})
	return s, nil
}

// ID identifies the messages addressed to this switch list.
func (s *SwitchList) ID() int64 { return s.id }

// Handle returns the imperative handle. It is safe to use from any goroutine.
func (s *SwitchList) Handle() *switchlist.Handle[string] { return s.coord.Handle() }

// Snapshot returns the coordinator's state for the current frame.
func (s *SwitchList) Snapshot() switchlist.Snapshot[string] { return s.coord.Snapshot() }

// Value returns the settled active option.
func (s *SwitchList) Value() string { return s.coord.Active() }

// Options returns the current options.
func (s *SwitchList) Options() []switchlist.Option[string] { return s.coord.Options() }

// Widths returns the measured width of every option, zero where missing.
func (s *SwitchList) Widths() []float64 { return s.coord.Widths() }

// Complete reports whether every option has a fresh measurement.
func (s *SwitchList) Complete() bool { return s.coord.Complete() }

// Variant returns the drawing variant.
func (s *SwitchList) Variant() Variant { return s.cfg.Variant }

// KeyMap returns the bindings for help rendering.
func (s *SwitchList) KeyMap() SwitchListKeyMap { return s.keys }

// Init implements Component. It measures every option and starts listening
// for handle commands.
func (s *SwitchList) Init() tea.Cmd {
	return tea.Batch(s.measure(), s.waitForWake())
}

// Update implements Component.
func (s *SwitchList) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case ItemLayoutMsg:
		if msg.ID != s.id {
			return s, nil
		}
		s.coord.ReportMeasured(msg.Index, float64(msg.Width), msg.Label)
		return s, s.flush()

	case FrameMsg:
		if msg.ID != s.id {
			return s, nil
		}
		return s, s.frame(msg.Time)

	case WakeMsg:
		if msg.ID != s.id {
			return s, nil
		}
		s.coord.Tick(s.scroll.Value())
		return s, tea.Batch(s.flush(), s.waitForWake())

	case tea.KeyMsg:
		if !s.focused {
			return s, nil
		}
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *SwitchList) handleKey(msg tea.KeyMsg) tea.Cmd {
	n := len(s.coord.Options())
	if n == 0 {
		return nil
	}
	switch {
	case key.Matches(msg, s.keys.Prev):
		return s.PressIndex(s.current() - 1)
	case key.Matches(msg, s.keys.Next):
		return s.PressIndex(s.current() + 1)
	case key.Matches(msg, s.keys.First):
		return s.PressIndex(0)
	case key.Matches(msg, s.keys.Last):
		return s.PressIndex(n - 1)
	case key.Matches(msg, s.keys.ScrollLeft):
		s.ScrollBy(-s.scrollStep())
		return nil
	case key.Matches(msg, s.keys.ScrollRight):
		s.ScrollBy(s.scrollStep())
		return nil
	}
	if k := msg.String(); len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
		return s.PressIndex(int(k[0] - '1'))
	}
	return nil
}

// current is the option the indicator is on or heading to.
func (s *SwitchList) current() int {
	snap := s.coord.Snapshot()
	if snap.HasActiveIndex {
		return snap.ActiveIndex
	}
	for i, o := range snap.Options {
		if o.Value == snap.Active {
			return i
		}
	}
	return 0
}

// Press selects value as if its option was pressed.
func (s *SwitchList) Press(value string) tea.Cmd {
	s.coord.Press(value)
	return s.flush()
}

// PressIndex presses the option at index. Out-of-range indices are ignored.
func (s *SwitchList) PressIndex(index int) tea.Cmd {
	opts := s.coord.Options()
	if index < 0 || index >= len(opts) {
		return nil
	}
	return s.Press(opts[index].Value)
}

// Click implements Clickable by pressing the option under x.
func (s *SwitchList) Click(x, y int) tea.Cmd {
	if y < 0 || y >= s.rows() {
		return nil
	}
	index, ok := s.HitTest(x)
	if !ok {
		return nil
	}
	return s.PressIndex(index)
}

// HitTest maps a screen column to the option drawn there. Gaps hit nothing.
func (s *SwitchList) HitTest(x int) (int, bool) {
	l := s.layout()
	cx := x - s.alignOffset(l.content) + s.scrollCell()
	for i, start := range l.starts {
		if cx >= start && cx < start+l.widths[i] {
			return i, true
		}
	}
	return 0, false
}

// SetOptions replaces the options and remeasures them. An identical list is
// a no-op.
func (s *SwitchList) SetOptions(options []switchlist.Option[string]) (tea.Cmd, error) {
	if optionsEqual(s.coord.Options(), options) {
		return nil, nil
	}
	if err := s.coord.SetOptions(options); err != nil {
		return nil, fmt.Errorf("switch list: %w", err)
	}
	s.clampScroll()
	return tea.Batch(s.measure(), s.flush()), nil
}

// Sync applies queued handle commands now instead of waiting for the
// WakeMsg. Callers that use the handle from inside Update call it.
func (s *SwitchList) Sync() tea.Cmd {
	s.coord.Tick(s.scroll.Value())
	return s.flush()
}

// ScrollBy moves the viewport by delta cells without animation.
func (s *SwitchList) ScrollBy(delta int) {
	s.scroll.SetImmediate(float64(s.clampScrollTo(s.scrollCell() + delta)))
	s.coord.OnScroll(s.scroll.Value())
}

// ScrollToIndex implements switchlist.Host.
func (s *SwitchList) ScrollToIndex(index int, centered, animated bool) {
	l := s.layout()
	if index < 0 || index >= len(l.starts) {
		return
	}
	target := l.starts[index]
	if centered {
		target = l.starts[index] + l.widths[index]/2 - s.width/2
	}
	to := float64(s.clampScrollTo(target))
	if !animated {
		s.scroll.SetImmediate(to)
		s.coord.OnScroll(to)
		return
	}
	if to == s.scroll.Target() {
		return
	}
	s.scroll.StartTween(s.scroll.Value(), to, s.duration(), switchlist.EaseInOutQuad, nil)
}

// Focus implements Focusable.
func (s *SwitchList) Focus() { s.focused = true }

// Blur implements Focusable.
func (s *SwitchList) Blur() { s.focused = false }

// Focused implements Focusable.
func (s *SwitchList) Focused() bool { return s.focused }

// SetSize implements Component.
func (s *SwitchList) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.clampScroll()
}

// rows is the number of rows the variant draws.
func (s *SwitchList) rows() int {
	if s.cfg.Variant == VariantTabs {
		return 2
	}
	return 1
}

func (s *SwitchList) frame(now time.Time) tea.Cmd {
	running := s.animator.AdvanceTo(now)
	s.coord.Tick(s.scroll.Value())
	if running || s.animator.Running() {
		return tea.Batch(s.frames.Tick(), s.emit())
	}
	s.frames.Stop()
	return s.emit()
}

// flush starts the frame loop when an animation began and emits queued
// notifications.
func (s *SwitchList) flush() tea.Cmd {
	var cmds []tea.Cmd
	if s.animator.Running() {
		cmds = append(cmds, s.frames.Start())
	} else {
		s.coord.OnScroll(s.scroll.Value())
	}
	cmds = append(cmds, s.emit())
	return tea.Batch(cmds...)
}

func (s *SwitchList) emit() tea.Cmd {
	if len(s.outbox) == 0 {
		return nil
	}
	msgs := s.outbox
	s.outbox = nil
	cmds := make([]tea.Cmd, len(msgs))
	for i, m := range msgs {
		cmds[i] = func() tea.Msg { return m }
	}
	return tea.Batch(cmds...)
}

// measure reports every option's width asynchronously, tagged with the label
// it measured.
func (s *SwitchList) measure() tea.Cmd {
	opts := s.coord.Options()
	cmds := make([]tea.Cmd, len(opts))
	for i, o := range opts {
		msg := ItemLayoutMsg{ID: s.id, Index: i, Width: s.itemWidth(o.Label), Label: o.Label}
		cmds[i] = func() tea.Msg { return msg }
	}
	return tea.Batch(cmds...)
}

// Close stops the handle listener. A closed list keeps rendering but no
// longer picks up commands queued from other goroutines.
func (s *SwitchList) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *SwitchList) waitForWake() tea.Cmd {
	id, wake, done := s.id, s.wake, s.done
	return func() tea.Msg {
		select {
		case <-wake:
			return WakeMsg{ID: id}
		case <-done:
			return nil
		}
	}
}

func (s *SwitchList) duration() time.Duration {
	if s.cfg.Duration > 0 {
		return s.cfg.Duration
	}
	return switchlist.DefaultDuration
}

func (s *SwitchList) resolveStyles() styles.SwitchList {
	if s.cfg.Variant == VariantTabs {
		t := styles.DefaultTabsTheme()
		if s.cfg.Theme != nil {
			t = *s.cfg.Theme
		}
		return styles.Tabs(t)
	}
	t := styles.DefaultTheme()
	if s.cfg.Theme != nil {
		t = *s.cfg.Theme
	}
	return styles.SegmentedControl(t)
}

// label is the text drawn for an option.
func (s *SwitchList) label(l string) string {
	if s.cfg.MaxLabelWidth > 0 {
		return runewidth.Truncate(l, s.cfg.MaxLabelWidth, "…")
	}
	return l
}

// inset is the blank space on each side of a label inside its option.
func (s *SwitchList) inset() int {
	if s.cfg.Variant == VariantSegmented {
		return segmentMargin
	}
	return s.cfg.Padding
}

func (s *SwitchList) itemWidth(l string) int {
	return runewidth.StringWidth(s.label(l)) + 2*s.inset()
}

// rowLayout is the cell layout of the options in content space.
type rowLayout struct {
	starts  []int
	widths  []int
	labels  []string
	content int
}

func (s *SwitchList) layout() rowLayout {
	if s.coord == nil {
		return rowLayout{}
	}
	opts := s.coord.Options()
	l := rowLayout{
		starts: make([]int, len(opts)),
		widths: make([]int, len(opts)),
		labels: make([]string, len(opts)),
	}
	x := 0
	for i, o := range opts {
		if i > 0 {
			x += s.cfg.Gap
		}
		l.starts[i] = x
		l.labels[i] = s.label(o.Label)
		l.widths[i] = s.itemWidth(o.Label)
		x += l.widths[i]
	}
	l.content = x
	return l
}

func (s *SwitchList) scrollCell() int {
	return int(math.Round(s.scroll.Value()))
}

func (s *SwitchList) scrollStep() int {
	if step := s.width / 2; step > 0 {
		return step
	}
	return 1
}

// maxScroll is zero until the list is sized.
func (s *SwitchList) maxScroll() int {
	if s.width <= 0 {
		return 0
	}
	return max(0, s.layout().content-s.width)
}

func (s *SwitchList) clampScrollTo(x int) int {
	return min(max(x, 0), s.maxScroll())
}

func (s *SwitchList) clampScroll() {
	if x := s.clampScrollTo(s.scrollCell()); float64(x) != s.scroll.Value() && !s.scroll.Running() {
		s.scroll.SetImmediate(float64(x))
		s.coord.OnScroll(float64(x))
	}
}

// alignOffset is the blank space left of the content, split the same way
// lipgloss.PlaceHorizontal splits it.
func (s *SwitchList) alignOffset(content int) int {
	gap := s.width - content
	if gap <= 0 {
		return 0
	}
	switch s.cfg.Align {
	case AlignRight:
		return gap
	case AlignCenter:
		return gap - int(math.Round(float64(gap)*0.5))
	default:
		return 0
	}
}

func optionsEqual(a, b []switchlist.Option[string]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
