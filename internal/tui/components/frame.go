package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFrameInterval is roughly 60 frames per second.
const DefaultFrameInterval = 16 * time.Millisecond

// FrameLoop schedules FrameMsg ticks for one component while its
// animations run.
type FrameLoop struct {
	id       int64
	interval time.Duration
	running  bool
}

// NewFrameLoop creates a stopped frame loop.
func NewFrameLoop(id int64, interval time.Duration) *FrameLoop {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &FrameLoop{id: id, interval: interval}
}

// Start returns the first tick, or nil when the loop is already running.
func (f *FrameLoop) Start() tea.Cmd {
	if f.running {
		return nil
	}
	f.running = true
	return f.Tick()
}

// Stop ends the loop after the tick in flight.
func (f *FrameLoop) Stop() {
	f.running = false
}

// Running reports whether a tick is scheduled.
func (f *FrameLoop) Running() bool {
	return f.running
}

// Tick returns a command that sends a FrameMsg after one interval.
func (f *FrameLoop) Tick() tea.Cmd {
	id := f.id
	return tea.Tick(f.interval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t}
	})
}
