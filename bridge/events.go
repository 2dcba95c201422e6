package bridge

import "sync"

// Action is a key state as the native layer reports it. The numbering
// mirrors GLFW's.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

func (a Action) String() string {
	switch a {
	case Release:
		return "release"
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	default:
		return "action(?)"
	}
}

// KeyEvent is one buffered key transition, in the backend's own key
// numbering.
type KeyEvent struct {
	Key      int64
	Scancode int
	Action   Action
	Mods     int
}

// streamCap bounds each window's buffer; past it the oldest events give
// way so a host that never drains cannot grow the stream without bound.
const streamCap = 256

// EventStream buffers the key events delivered to one window during
// PollEvents. The registry keeps one per window for the window's whole
// lifetime; the backend's key callback is the writer.
type EventStream struct {
	mu      sync.Mutex
	events  []KeyEvent
	dropped int
}

// Push appends ev, evicting the oldest event once the buffer is full.
func (s *EventStream) Push(ev KeyEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) >= streamCap {
		s.events = s.events[1:]
		s.dropped++
	}
	s.events = append(s.events, ev)
}

// Drain returns the buffered events in arrival order and empties the
// stream.
func (s *EventStream) Drain() []KeyEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.events
	s.events = nil
	return out
}

// Len reports the number of buffered events.
func (s *EventStream) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

// Dropped reports how many events have been evicted unread.
func (s *EventStream) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}
