package views

import (
	"io"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/multiswitch/internal/i18n"
	"github.com/hy4ri/multiswitch/internal/tui/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newTestContext(t *testing.T) *Context {
	t.Helper()
	tr, err := i18n.New("en")
	require.NoError(t, err)
	return &Context{
		List: components.SwitchListConfig{
			Clock: fixedClock{now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		},
		Tr:  tr,
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func newTestCoordinator(t *testing.T) *Coordinator {
	t.Helper()
	ctx := newTestContext(t)
	c := NewCoordinator(ctx, DefaultRegistry(ctx))
	c.SetWidth(80)
	c.SetActive(true)
	settle(c, c.Init())
	return c
}

// run executes cmd and flattens batches. Commands that block, such as the
// wake listeners, are abandoned.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		batch, ok := msg.(tea.BatchMsg)
		if !ok {
			if msg == nil {
				return nil
			}
			return []tea.Msg{msg}
		}
		results := make([][]tea.Msg, len(batch))
		var wg sync.WaitGroup
		for i, c := range batch {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = run(c)
			}()
		}
		wg.Wait()
		var out []tea.Msg
		for _, r := range results {
			out = append(out, r...)
		}
		return out
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

// settle feeds switch list traffic back into c until it stops. It returns
// every message except layout, frame and wake traffic. Frame ticks carry the wall clock, which is far
// past the fixed test clock, so every animation finishes on its first frame.
func settle(c *Coordinator, cmd tea.Cmd) []tea.Msg {
	var out []tea.Msg
	queue := run(cmd)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		switch msg.(type) {
		case components.ItemLayoutMsg, components.FrameMsg, components.WakeMsg:
			queue = append(queue, run(c.Update(msg))...)
		case components.ChangedMsg, components.PressedMsg:
			queue = append(queue, run(c.Update(msg))...)
			out = append(out, msg)
		default:
			out = append(out, msg)
		}
	}
	return out
}

func keyMsg(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func pressKey(t *testing.T, c *Coordinator, k string) []tea.Msg {
	t.Helper()
	cmd, consumed := c.HandleKey(keyMsg(k))
	require.True(t, consumed, "key %q", k)
	return settle(c, cmd)
}

func TestRegistry_Order(t *testing.T) {
	ctx := newTestContext(t)
	reg := DefaultRegistry(ctx)

	var names []string
	for _, info := range reg.Examples() {
		names = append(names, info.Example.Name())
	}
	assert.Equal(t, []string{
		ExampleDayOfTime, ExampleDynamicLabels, ExampleLongLabel, ExampleScrollable,
		ExampleAlign, ExampleInitialSet, ExampleInspector,
	}, names)

	_, ok := reg.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_Filter(t *testing.T) {
	reg := DefaultRegistry(newTestContext(t))

	assert.Len(t, reg.Filter(""), 7)
	assert.Empty(t, reg.Filter("zzzz"))

	matches := reg.Filter("scrl")
	require.NotEmpty(t, matches)
	assert.Equal(t, ExampleScrollable, matches[0].Example.Name())
	assert.Equal(t, 0, matches[0].MatchedIndexes[0])
}

func TestRegistry_RegisterReplacesInPlace(t *testing.T) {
	ctx := newTestContext(t)
	reg := NewRegistry()
	reg.Register(NewLongLabelView(ctx), "a")
	reg.Register(NewScrollableView(ctx), "b")
	reg.Register(NewLongLabelView(ctx), "c")

	infos := reg.Examples()
	require.Len(t, infos, 2)
	assert.Equal(t, ExampleLongLabel, infos[0].Example.Name())
	assert.Equal(t, "c", infos[0].Icon)
}

func TestDayOfTime_ForcedOptions(t *testing.T) {
	c := newTestCoordinator(t)
	v := c.Current().(*DayOfTimeView)
	assert.Equal(t, "morning", v.TimeOfDay())

	pressKey(t, c, "n")
	assert.Equal(t, "night", v.TimeOfDay())
	assert.Equal(t, "night", v.Lists()[0].Handle().ActiveOption())

	pressKey(t, c, "m")
	assert.Equal(t, "morning", v.TimeOfDay())
}

func TestDayOfTime_KeysPressOptions(t *testing.T) {
	c := newTestCoordinator(t)
	v := c.Current().(*DayOfTimeView)

	cmd, consumed := c.HandleKey(tea.KeyMsg{Type: tea.KeyRight})
	require.True(t, consumed)
	settle(c, cmd)
	assert.Equal(t, "afternoon", v.TimeOfDay())
	assert.Contains(t, v.Render(80, 20), "Last press: afternoon")
}

func TestNavigation_RoundTrip(t *testing.T) {
	c := newTestCoordinator(t)

	msgs := pressKey(t, c, "d")
	require.Equal(t, []tea.Msg{NavigateMsg{To: ExampleInitialSet, Param: "water"}}, msgs)

	settle(c, c.SwitchTo(ExampleInitialSet, "coffee"))
	set := c.Current().(*InitialSetView)
	assert.Equal(t, "coffee", set.Current())
	assert.Equal(t, "coffee", set.Lists()[0].Value())
	assert.Equal(t, components.VariantTabs, set.Lists()[0].Variant())
	assert.Contains(t, set.Render(80, 20), "coffee")

	msgs = pressKey(t, c, "b")
	require.Equal(t, []tea.Msg{NavigateMsg{To: ExampleDayOfTime, Param: "evening"}}, msgs)

	settle(c, c.SwitchTo(ExampleDayOfTime, "evening"))
	assert.Equal(t, "evening", c.Current().(*DayOfTimeView).TimeOfDay())
}

func TestInitialSet_IgnoresUnknownParam(t *testing.T) {
	c := newTestCoordinator(t)
	set, ok := c.Registry().Get(ExampleInitialSet)
	require.True(t, ok)
	before := set.Lists()[0]

	assert.Nil(t, c.SwitchTo(ExampleInitialSet, "milk"))
	assert.Same(t, before, set.Lists()[0])
}

func TestDynamicLabels_ToggleLanguageRelabels(t *testing.T) {
	c := newTestCoordinator(t)
	settle(c, c.SwitchTo(ExampleDynamicLabels, ""))
	v := c.Current().(*DynamicLabelsView)
	l := v.Lists()[0]
	before := l.Widths()

	msgs := pressKey(t, c, "t")
	assert.Equal(t, []tea.Msg{StatusMsg{Text: "Language: de"}}, msgs, "relabeling keeps the selection")
	assert.Equal(t, "de", v.Ctx.Tr.Language().String())
	assert.Equal(t, "Schmetterling", l.Options()[0].Label)
	assert.Equal(t, "food", l.Value())
	assert.Greater(t, l.Snapshot().Width, before[0])
	assert.True(t, l.Complete())
}

func TestAlign_FocusMovesBetweenLists(t *testing.T) {
	c := newTestCoordinator(t)
	settle(c, c.SwitchTo(ExampleAlign, ""))
	v := c.Current().(*AlignView)
	require.Len(t, v.Lists(), 3)
	assert.True(t, v.Lists()[0].Focused())

	pressKey(t, c, "j")
	assert.True(t, v.Lists()[1].Focused())
	assert.False(t, v.Lists()[0].Focused())

	// The focused list takes the arrow keys.
	cmd, _ := c.HandleKey(tea.KeyMsg{Type: tea.KeyLeft})
	settle(c, cmd)
	assert.Equal(t, "first", v.Lists()[1].Value())
	assert.Equal(t, "first", v.Lists()[0].Value())
}

func TestCoordinator_SetVariantRemounts(t *testing.T) {
	c := newTestCoordinator(t)
	day := c.Current().(*DayOfTimeView)
	old := day.Lists()[0]

	settle(c, c.SetVariant(components.VariantTabs))
	require.NotSame(t, old, day.Lists()[0])
	assert.Equal(t, components.VariantTabs, day.Lists()[0].Variant())
	assert.True(t, day.Lists()[0].Focused())
	assert.True(t, day.Lists()[0].Complete())
}

func TestCoordinator_SwitchMovesFocus(t *testing.T) {
	c := newTestCoordinator(t)
	day := c.Current()
	settle(c, c.SwitchTo(ExampleScrollable, ""))

	assert.False(t, day.Lists()[0].Focused())
	assert.True(t, c.Current().Lists()[0].Focused())
	assert.Len(t, c.Current().Lists()[0].Options(), 16)
	assert.Nil(t, c.SwitchTo("missing", ""))
	assert.Equal(t, ExampleScrollable, c.Current().Name())
}

func TestInspector_OptionsAndForcing(t *testing.T) {
	c := newTestCoordinator(t)
	settle(c, c.SwitchTo(ExampleInspector, ""))
	v := c.Current().(*InspectorView)
	l := v.Lists()[0]

	pressKey(t, c, "a")
	require.Len(t, l.Options(), 4)
	assert.Equal(t, "Delta", l.Options()[3].Label)

	pressKey(t, c, "r")
	assert.Equal(t, "ALPHA", l.Options()[0].Label)

	pressKey(t, c, "f")
	require.Eventually(t, func() bool {
		settle(c, l.Sync())
		return l.Value() == "beta"
	}, time.Second, 10*time.Millisecond)

	rows := map[string]string{}
	for _, r := range v.Rows() {
		rows[r[0]] = r[1]
	}
	assert.Equal(t, "beta", rows["active"])
	assert.Equal(t, "beta", rows["handle"])
	assert.Equal(t, "true", rows["complete"])
	// One for the mount, one for the forced option.
	assert.Equal(t, "2", rows["changes"])
}

func TestCoordinator_ClickPressesOption(t *testing.T) {
	c := newTestCoordinator(t)
	day := c.Current().(*DayOfTimeView)

	// Title, description and a blank line sit above the list.
	assert.Nil(t, c.Click(7, 0, 20))
	settle(c, c.Click(7, 3, 20))
	assert.Equal(t, "afternoon", day.TimeOfDay())

	settle(c, c.SwitchTo(ExampleAlign, ""))
	align := c.Current().(*AlignView)
	align.Render(80, 20)
	row := firstLineOf(align, 1)
	require.NotEqual(t, -1, row)

	c.Click(0, row, 20)
	assert.True(t, align.Lists()[1].Focused())
	assert.False(t, align.Lists()[0].Focused())
}

// firstLineOf returns the first content line the last Render gave list i.
func firstLineOf(ex Example, i int) int {
	for y := 0; y < 40; y++ {
		if idx, row, ok := ex.ListAt(y); ok && idx == i && row == 0 {
			return y
		}
	}
	return -1
}

type twinView struct {
	*BaseView
}

func newTwinView(ctx *Context) *twinView {
	v := &twinView{}
	v.BaseView = NewBaseView(ctx, func() ([]*components.SwitchList, error) {
		var lists []*components.SwitchList
		for range 2 {
			l, err := components.NewSwitchList(options("a", "Apple", "b", "Banana"), "a", ctx.ListConfig())
			if err != nil {
				return nil, err
			}
			lists = append(lists, l)
		}
		return lists, nil
	})
	return v
}

func (v *twinView) Name() string        { return "twins" }
func (v *twinView) Title() string       { return "Twins" }
func (v *twinView) Description() string { return "" }

func (v *twinView) Render(width, height int) string {
	var b strings.Builder
	v.writeList(&b, 0)
	b.WriteString("\n")
	v.writeList(&b, 1)
	return b.String()
}

func TestCoordinator_ClickTellsIdenticalListsApart(t *testing.T) {
	ctx := newTestContext(t)
	twins := newTwinView(ctx)
	reg := NewRegistry()
	reg.Register(twins, "=")
	c := NewCoordinator(ctx, reg)
	c.SetWidth(80)
	settle(c, c.Init())

	lines := strings.Split(twins.Render(80, 20), "\n")
	top := firstLineOf(twins, 1)
	require.Greater(t, top, 0)
	require.Equal(t, lines[0], lines[top], "both lists draw the same rows")

	for x := 0; x < 40 && twins.Lists()[1].Value() != "b"; x++ {
		settle(c, c.Click(x, top, 20))
	}
	assert.Equal(t, "b", twins.Lists()[1].Value())
	assert.Equal(t, "a", twins.Lists()[0].Value())
	assert.Same(t, twins.Lists()[1], twins.FocusedList())
}

func TestBaseView_RemountStopsHandleListeners(t *testing.T) {
	c := newTestCoordinator(t)
	ex, ok := c.Registry().Get(ExampleAlign)
	require.True(t, ok)

	before := runtime.NumGoroutine()
	for range 20 {
		settle(c, ex.Remount())
	}
	require.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before+len(ex.Lists())
	}, time.Second, 10*time.Millisecond)
}
