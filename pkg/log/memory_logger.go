package log

import "sync"

// MemoryLogger keeps the most recent events in memory.
// A limit of 0 keeps every event.
type MemoryLogger struct {
	mu     sync.Mutex
	limit  int
	events []Event
}

// NewMemoryLogger creates a MemoryLogger retaining at most limit events.
func NewMemoryLogger(limit int) *MemoryLogger {
	return &MemoryLogger{limit: limit}
}

// Log stores the event, dropping the oldest one when the limit is reached.
func (m *MemoryLogger) Log(event Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = append(m.events, event)
	if m.limit > 0 && len(m.events) > m.limit {
		m.events = m.events[len(m.events)-m.limit:]
	}
}

// Events returns a copy of the retained events, oldest first.
func (m *MemoryLogger) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// ByCategory returns the retained events of category c, oldest first.
func (m *MemoryLogger) ByCategory(c Category) []Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Event
	for _, e := range m.events {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// Reset drops all retained events.
func (m *MemoryLogger) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = nil
}

// Compile-time interface satisfaction check.
var _ Logger = (*MemoryLogger)(nil)
