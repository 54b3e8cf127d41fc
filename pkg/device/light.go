package device

import (
	"fmt"
	"sync"
)

// Light level bounds.
const (
	// MaxLevel is the brightest level. Increasing past it wraps around.
	MaxLevel = 100

	// DefaultLevel is the level used when a light is turned on without one.
	DefaultLevel = 50

	levelModulus = MaxLevel + 1
)

// Light is a dimmable smart light. A new light is off (level 0).
type Light struct {
	mu    sync.RWMutex
	level int
}

// NewLight creates a light at level 0.
func NewLight() *Light {
	return &Light{}
}

// TurnOn sets the level to level mod 101.
func (l *Light) TurnOn(level uint) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = int(level % levelModulus)
}

// TurnOff sets the level to 0.
func (l *Light) TurnOff() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = 0
}

// Increase raises the level by delta, wrapping modulo 101.
func (l *Light) Increase(delta uint) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = int((uint(l.level) + delta%levelModulus) % levelModulus)
}

// Decrease lowers the level by delta, stopping at 0.
func (l *Light) Decrease(delta uint) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if uint(l.level) <= delta {
		l.level = 0
		return
	}
	l.level -= int(delta)
}

// Level returns the current level in [0, MaxLevel].
func (l *Light) Level() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// State returns the state text, e.g. "level 50".
func (l *Light) State() string {
	return fmt.Sprintf("level %d", l.Level())
}
