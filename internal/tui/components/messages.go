package components

import "time"

// ItemLayoutMsg carries the measured width of one switch list option. Label
// is the label that was measured, which may be stale by the time the message
// is delivered.
type ItemLayoutMsg struct {
	ID    int64
	Index int
	Width int
	Label string
}

// FrameMsg drives a switch list's animation loop.
type FrameMsg struct {
	ID   int64
	Time time.Time
}

// WakeMsg is sent when a command was queued on a switch list's handle,
// possibly from another goroutine.
type WakeMsg struct {
	ID int64
}

// ChangedMsg is emitted once per completed transition.
type ChangedMsg struct {
	ID    int64
	Value string
}

// PressedMsg is emitted as soon as a press is accepted, before the
// indicator moves.
type PressedMsg struct {
	ID    int64
	Value string
}

// FocusPaneMsg is emitted to request focus change between panes.
type FocusPaneMsg struct {
	Pane Pane
}

// Pane represents which pane is currently focused.
type Pane int

const (
	PaneSidebar Pane = iota
	PaneMain
)
