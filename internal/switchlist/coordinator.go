package switchlist

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

// Phase is the selection state machine's position.
type Phase int

const (
	// PhaseUninitialized: mounted, no target known to have geometry yet.
	PhaseUninitialized Phase = iota
	// PhaseAwaitingLayout: a target is pending until every option is measured.
	PhaseAwaitingLayout
	// PhaseAnimating: a transition is in flight.
	PhaseAnimating
	// PhaseSettled: the active option is confirmed.
	PhaseSettled
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseAwaitingLayout:
		return "awaiting-layout"
	case PhaseAnimating:
		return "animating"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Config tunes a Coordinator. The zero value is a segmented control with the
// default animation.
type Config struct {
	// Gap is the space between two options.
	Gap float64
	// Padding is the horizontal padding inside each option. The indicator
	// covers the option minus its padding.
	Padding float64

	Duration time.Duration
	Easing   Easing

	// Host receives scroll-to-index commands.
	Host Host
	// Clock drives the built-in tweens. Ignored when both channels are given.
	Clock Clock
	// TranslateX and Width replace the built-in tweens.
	TranslateX Tweener
	Width      Tweener

	Logger *slog.Logger
}

// Snapshot is a read-only view of the coordinator for rendering.
type Snapshot[V comparable] struct {
	Options []Option[V]
	Phase   Phase

	Active     V
	Pending    V
	HasPending bool
	Target     V

	TranslateX float64
	Width      float64
	ScrollX    float64
	// IndicatorX is TranslateX relative to the scrolled viewport.
	IndicatorX float64

	ActiveIndex    int
	HasActiveIndex bool
}

// Coordinator turns per-option layout reports into indicator placement and
// owns the selection state. All methods must be called from the owning
// goroutine except through Handle.
type Coordinator[V comparable] struct {
	registry *Registry[V]
	// applied is the registry the indicator was last placed against.
	applied *Registry[V]
	layouts *LayoutStore

	animator   *Animator
	timeline   *Timeline
	compositor *Compositor
	handle     *Handle[V]

	gap, padding float64

	phase   Phase
	active  V
	pending *V
	target  V
	// placed is set by the first successful placement since mount.
	placed bool

	onChange func(V)
	onPress  func(V)
	log      *slog.Logger

	mu    sync.Mutex
	inbox []func()
}

// New mounts a coordinator for options with defaultOption as the initial
// forced target.
func New[V comparable](options []Option[V], defaultOption V, cfg Config) (*Coordinator[V], error) {
	reg, err := NewRegistry(options)
	if err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Coordinator[V]{
		registry:   reg,
		layouts:    NewLayoutStore(reg.Len()),
		compositor: NewCompositor(cfg.Host),
		gap:        cfg.Gap,
		padding:    cfg.Padding,
		phase:      PhaseUninitialized,
		active:     defaultOption,
		log:        log,
	}

	translateX, width := cfg.TranslateX, cfg.Width
	if translateX == nil || width == nil {
		c.animator = NewAnimator(cfg.Clock)
		if translateX == nil {
			translateX = c.animator.NewTween()
		}
		if width == nil {
			width = c.animator.NewTween()
		}
	}
	c.timeline = NewTimeline(translateX, width, cfg.Duration, cfg.Easing, c.post)

	c.handle = &Handle[V]{post: c.post, forced: c.force, unforce: c.unforce}
	c.handle.store(defaultOption)

	c.request(defaultOption, false)
	return c, nil
}

// OnChange sets the callback fired once per completed transition.
func (c *Coordinator[V]) OnChange(fn func(V)) {
	c.onChange = fn
}

// OnPress sets the callback fired as soon as a press is accepted, before the
// indicator has moved.
func (c *Coordinator[V]) OnPress(fn func(V)) {
	c.onPress = fn
}

// Handle returns the imperative handle.
func (c *Coordinator[V]) Handle() *Handle[V] {
	return c.handle
}

// Animator returns the animator driving the built-in tweens, or nil when
// both channels were supplied through Config.
func (c *Coordinator[V]) Animator() *Animator {
	return c.animator
}

// ReportLayout records the measured width of the option at index, tagged
// with the option's live label.
func (c *Coordinator[V]) ReportLayout(index int, width float64) {
	c.drain()
	opt, ok := c.registry.At(index)
	if !ok {
		c.log.Debug("layout report out of range", "index", index, "options", c.registry.Len())
		return
	}
	c.layouts.Report(index, width, opt.Label)
	c.reconcile()
}

// ReportMeasured records a width measured for label. When label is no longer
// the live label at index the record is stale and keeps the store incomplete
// until a fresh report replaces it.
func (c *Coordinator[V]) ReportMeasured(index int, width float64, label string) {
	c.drain()
	if !c.layouts.Report(index, width, label) {
		c.log.Debug("layout report out of range", "index", index, "options", c.registry.Len())
		return
	}
	if opt, _ := c.registry.At(index); opt.Label != label {
		c.log.Debug("stale layout report", "index", index, "measured", label, "live", opt.Label)
	}
	c.reconcile()
}

// Press selects v as if its option was pressed.
func (c *Coordinator[V]) Press(v V) {
	c.drain()
	if c.restingOn(v) {
		return
	}
	if _, ok := c.registry.IndexOf(v); ok && c.onPress != nil {
		c.onPress(v)
	}
	c.request(v, false)
}

// restingOn reports whether v is the active option and nothing is moving the
// selection elsewhere. Re-placements after a relabel keep it resting.
func (c *Coordinator[V]) restingOn(v V) bool {
	if v != c.active || c.pending != nil {
		return false
	}
	switch c.phase {
	case PhaseSettled, PhaseAwaitingLayout:
		return true
	case PhaseAnimating:
		return c.target == c.active
	}
	return false
}

// SetOptions replaces the option list. An identical list is ignored.
func (c *Coordinator[V]) SetOptions(options []Option[V]) error {
	c.drain()
	if c.registry.Equal(options) {
		return nil
	}
	reg, err := NewRegistry(options)
	if err != nil {
		return err
	}
	c.registry = reg
	c.layouts.Resize(reg.Len())

	if c.pending != nil {
		if _, ok := reg.IndexOf(*c.pending); !ok {
			c.log.Debug("pending option removed", "value", *c.pending)
			c.pending = nil
			c.phase = c.idlePhase()
		}
	}
	if c.phase == PhaseAnimating {
		if _, ok := reg.IndexOf(c.target); !ok {
			c.log.Debug("animation target removed", "value", c.target)
			c.timeline.Supersede()
			c.phase = c.idlePhase()
		}
	}
	c.reconcile()
	return nil
}

// OnScroll records the host list's horizontal scroll offset.
func (c *Coordinator[V]) OnScroll(x float64) {
	c.compositor.OnScroll(x)
}

// Tick applies queued completions and handle commands, then records the
// current scroll offset.
func (c *Coordinator[V]) Tick(scrollX float64) {
	c.drain()
	c.compositor.OnScroll(scrollX)
}

// Advance steps the built-in tweens to now and applies any completion they
// produced. It reports whether an animation is still running.
func (c *Coordinator[V]) Advance(now time.Time) bool {
	running := false
	if c.animator != nil {
		running = c.animator.AdvanceTo(now)
	}
	c.drain()
	return running
}

// Options returns the current options.
func (c *Coordinator[V]) Options() []Option[V] {
	return c.registry.Options()
}

// Active returns the authoritative active option.
func (c *Coordinator[V]) Active() V {
	return c.active
}

// Phase returns the state machine's phase.
func (c *Coordinator[V]) Phase() Phase {
	return c.phase
}

// Snapshot returns the state needed to draw one frame.
func (c *Coordinator[V]) Snapshot() Snapshot[V] {
	s := Snapshot[V]{
		Options:    c.registry.Options(),
		Phase:      c.phase,
		Active:     c.active,
		Target:     c.target,
		TranslateX: c.timeline.TranslateX(),
		Width:      c.timeline.Width(),
		ScrollX:    c.compositor.ScrollX(),
		IndicatorX: c.compositor.IndicatorX(c.timeline.TranslateX()),
	}
	if c.pending != nil {
		s.Pending, s.HasPending = *c.pending, true
	}
	s.ActiveIndex, s.HasActiveIndex = c.timeline.ActiveIndex()
	return s
}

// Widths returns the measured width of every option, zero where missing.
func (c *Coordinator[V]) Widths() []float64 {
	return c.layouts.Widths()
}

// Complete reports whether every option has a fresh measurement.
func (c *Coordinator[V]) Complete() bool {
	return c.layouts.Complete(c.labels())
}

// force is the handle's SetForcedOption applied on the owning side.
func (c *Coordinator[V]) force(v V) {
	c.request(v, true)
}

func (c *Coordinator[V]) unforce() {
	if c.pending == nil {
		return
	}
	c.pending = nil
	if c.phase == PhaseAwaitingLayout {
		c.phase = c.idlePhase()
	}
}

// request routes a selection either to an eased transition or, while
// measurements are incomplete, to the pending slot.
func (c *Coordinator[V]) request(v V, forced bool) {
	index, ok := c.registry.IndexOf(v)
	if !ok {
		c.log.Debug("selection dropped: unknown option", "value", v, "forced", forced)
		return
	}
	if !c.Complete() {
		c.pending = &v
		if c.phase == PhaseAnimating {
			c.timeline.Supersede()
		}
		c.phase = PhaseAwaitingLayout
		c.log.Debug("selection pending layout", "value", v, "index", index)
		return
	}
	c.pending = nil
	c.place(index, v, !c.placed, true)
}

// reconcile runs after every change to the layouts or the registry.
func (c *Coordinator[V]) reconcile() {
	if !c.Complete() {
		return
	}

	if c.pending != nil {
		v := *c.pending
		c.pending = nil
		index, ok := c.registry.IndexOf(v)
		if !ok {
			c.phase = c.idlePhase()
			return
		}
		c.place(index, v, !c.placed, true)
		return
	}

	if !c.placed || c.applied.Equal(c.registry.options) {
		return
	}

	// Geometry moved under an unchanged selection, e.g. labels were
	// translated. Re-place whatever the indicator is currently heading to.
	v, notify := c.active, false
	if c.phase == PhaseAnimating {
		v, notify = c.target, true
	}
	index, ok := c.registry.IndexOf(v)
	if !ok {
		c.applied = c.registry
		return
	}
	c.place(index, v, false, notify)
}

func (c *Coordinator[V]) place(index int, v V, instant, notify bool) {
	g, ok := Compute(c.layouts.Widths(), c.gap, c.padding, index)
	if !ok {
		return
	}
	c.applied = c.registry
	c.placed = true
	c.target = v
	c.phase = PhaseAnimating

	done := func() { c.finish(v, notify) }
	if instant {
		c.log.Debug("placing indicator", "value", v, "index", index, "x", g.TranslateX, "width", g.Width, "instant", true)
		c.timeline.PlaceInstant(g, index, done)
	} else {
		c.log.Debug("placing indicator", "value", v, "index", index, "x", g.TranslateX, "width", g.Width, "instant", false)
		c.timeline.PlaceEased(g, index, done)
	}
	c.compositor.Reveal(index)
}

func (c *Coordinator[V]) finish(v V, notify bool) {
	c.active = v
	c.pending = nil
	c.phase = PhaseSettled
	c.handle.store(v)
	if notify && c.onChange != nil {
		c.onChange(v)
	}
}

func (c *Coordinator[V]) idlePhase() Phase {
	if c.placed {
		return PhaseSettled
	}
	return PhaseUninitialized
}

func (c *Coordinator[V]) labels() []string {
	labels := make([]string, c.registry.Len())
	for i := range labels {
		opt, _ := c.registry.At(i)
		labels[i] = opt.Label
	}
	return labels
}

// post queues fn for the owning side. Safe from any goroutine.
func (c *Coordinator[V]) post(fn func()) {
	c.mu.Lock()
	c.inbox = append(c.inbox, fn)
	c.mu.Unlock()
}

func (c *Coordinator[V]) drain() {
	for {
		c.mu.Lock()
		queued := c.inbox
		c.inbox = nil
		c.mu.Unlock()
		if len(queued) == 0 {
			return
		}
		for _, fn := range queued {
			fn()
		}
	}
}
