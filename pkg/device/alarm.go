package device

import "sync"

// alarm is the on/off state shared by both alarm systems.
type alarm struct {
	mu sync.RWMutex
	on bool
}

// TurnOn arms the alarm.
func (a *alarm) TurnOn() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.on = true
}

// TurnOff disarms the alarm.
func (a *alarm) TurnOff() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.on = false
}

// IsOn reports whether the alarm is armed.
func (a *alarm) IsOn() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.on
}

// State returns the state text ("on" or "off").
func (a *alarm) State() string {
	return onOff(a.IsOn())
}

// FireAlarm is the fire alarm system. A new alarm is off.
type FireAlarm struct {
	alarm
}

// NewFireAlarm creates a fire alarm that is off.
func NewFireAlarm() *FireAlarm {
	return &FireAlarm{}
}

// SecurityAlarm is the security alarm system. A new alarm is off.
type SecurityAlarm struct {
	alarm
}

// NewSecurityAlarm creates a security alarm that is off.
func NewSecurityAlarm() *SecurityAlarm {
	return &SecurityAlarm{}
}
