package device

import "sync"

// Socket is a smart power socket. A new socket is on.
type Socket struct {
	mu sync.RWMutex
	on bool
}

// NewSocket creates a socket that is switched on.
func NewSocket() *Socket {
	return &Socket{on: true}
}

// TurnOn switches the socket on.
func (s *Socket) TurnOn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.on = true
}

// TurnOff switches the socket off.
func (s *Socket) TurnOff() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.on = false
}

// Toggle flips the socket and returns the new state.
func (s *Socket) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.on = !s.on
	return s.on
}

// IsOn reports whether the socket is switched on.
func (s *Socket) IsOn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.on
}

// State returns the state text ("on" or "off").
func (s *Socket) State() string {
	return onOff(s.IsOn())
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
