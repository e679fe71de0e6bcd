package core

// EventKind identifies a discrete input event.
type EventKind int

const (
	EventNone  EventKind = iota
	EventQuit            // Window close, q, Ctrl+C
	EventPress           // Pointer press at a logical position
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventPress:
		return "Press"
	default:
		return "Unknown"
	}
}

// Event is a single input event. Pos and Reach are only meaningful for
// EventPress. Reach holds the half-extents of the pressed area around Pos;
// a zero Reach is a press at exactly Pos.
type Event struct {
	Kind  EventKind
	Pos   Point
	Reach Point
}

// InputFrame is the queue of events collected between two ticks.
// The platform appends to it as messages arrive and the game drains it
// in arrival order once per tick.
type InputFrame struct {
	events []Event
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Quit queues a quit event.
func (f *InputFrame) Quit() {
	f.events = append(f.events, Event{Kind: EventQuit})
}

// Press queues a pointer press at logical position (x, y).
func (f *InputFrame) Press(x, y float64) {
	f.events = append(f.events, Event{Kind: EventPress, Pos: Pt(x, y)})
}

// PressArea queues a press covering the box centered on (x, y) with
// half-extents (hw, hh), such as one terminal cell.
func (f *InputFrame) PressArea(x, y, hw, hh float64) {
	f.events = append(f.events, Event{Kind: EventPress, Pos: Pt(x, y), Reach: Pt(hw, hh)})
}

// Events returns the queued events in arrival order.
func (f InputFrame) Events() []Event {
	return f.events
}

// Len returns the number of queued events.
func (f InputFrame) Len() int {
	return len(f.events)
}

// HasQuit returns true if a quit event is queued.
func (f InputFrame) HasQuit() bool {
	for _, e := range f.events {
		if e.Kind == EventQuit {
			return true
		}
	}
	return false
}

// Clear drops all queued events for the next tick.
func (f *InputFrame) Clear() {
	f.events = f.events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{events: make([]Event, len(f.events))}
	copy(clone.events, f.events)
	return clone
}
