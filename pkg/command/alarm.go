package command

import (
	"context"

	"github.com/yandexplus/yplus-go/pkg/device"
)

// FireAlarmDevice is what fire alarm commands need from the fire alarm.
type FireAlarmDevice interface {
	TurnOn()
	TurnOff()
	State() string
}

// SecurityAlarmDevice is what security alarm commands need from the
// security alarm.
type SecurityAlarmDevice interface {
	TurnOn()
	TurnOff()
	State() string
}

var (
	_ FireAlarmDevice     = (*device.FireAlarm)(nil)
	_ SecurityAlarmDevice = (*device.SecurityAlarm)(nil)
)

// FireAlarmCommand is a command of the fire alarm family.
type FireAlarmCommand interface {
	Command
	SetFireAlarm(d FireAlarmDevice)
}

// SecurityAlarmCommand is a command of the security alarm family.
type SecurityAlarmCommand interface {
	Command
	SetSecurityAlarm(d SecurityAlarmDevice)
}

type fireAlarmCommand struct {
	family[FireAlarmDevice]
}

// Bind binds the command to the fire alarm in devs.
func (c *fireAlarmCommand) Bind(devs Devices) {
	if a := devs.FireAlarm(); a != nil {
		c.SetFireAlarm(a)
	}
}

// SetFireAlarm rebinds the command to d.
func (c *fireAlarmCommand) SetFireAlarm(d FireAlarmDevice) {
	c.set(d)
}

type securityAlarmCommand struct {
	family[SecurityAlarmDevice]
}

// Bind binds the command to the security alarm in devs.
func (c *securityAlarmCommand) Bind(devs Devices) {
	if a := devs.SecurityAlarm(); a != nil {
		c.SetSecurityAlarm(a)
	}
}

// SetSecurityAlarm rebinds the command to d.
func (c *securityAlarmCommand) SetSecurityAlarm(d SecurityAlarmDevice) {
	c.set(d)
}

// FireAlarmOn arms the fire alarm.
type FireAlarmOn struct {
	fireAlarmCommand
}

// NewFireAlarmOn creates an unbound "Set fire alarm on" command.
func NewFireAlarmOn() *FireAlarmOn {
	return &FireAlarmOn{fireAlarmCommand{newFamily[FireAlarmDevice](device.KindFireAlarm, "Set fire alarm on")}}
}

// Execute arms the fire alarm.
func (c *FireAlarmOn) Execute(ctx context.Context) (Result, error) {
	a, err := c.target(ctx)
	if err != nil {
		return Result{}, err
	}
	a.TurnOn()
	return c.result(a.State()), nil
}

// FireAlarmOff disarms the fire alarm.
type FireAlarmOff struct {
	fireAlarmCommand
}

// NewFireAlarmOff creates an unbound "Set fire alarm off" command.
func NewFireAlarmOff() *FireAlarmOff {
	return &FireAlarmOff{fireAlarmCommand{newFamily[FireAlarmDevice](device.KindFireAlarm, "Set fire alarm off")}}
}

// Execute disarms the fire alarm.
func (c *FireAlarmOff) Execute(ctx context.Context) (Result, error) {
	a, err := c.target(ctx)
	if err != nil {
		return Result{}, err
	}
	a.TurnOff()
	return c.result(a.State()), nil
}

// SecurityAlarmOn arms the security alarm.
type SecurityAlarmOn struct {
	securityAlarmCommand
}

// NewSecurityAlarmOn creates an unbound "Set security alarm on" command.
func NewSecurityAlarmOn() *SecurityAlarmOn {
	return &SecurityAlarmOn{securityAlarmCommand{newFamily[SecurityAlarmDevice](device.KindSecurityAlarm, "Set security alarm on")}}
}

// Execute arms the security alarm.
func (c *SecurityAlarmOn) Execute(ctx context.Context) (Result, error) {
	a, err := c.target(ctx)
	if err != nil {
		return Result{}, err
	}
	a.TurnOn()
	return c.result(a.State()), nil
}

// SecurityAlarmOff disarms the security alarm.
type SecurityAlarmOff struct {
	securityAlarmCommand
}

// NewSecurityAlarmOff creates an unbound "Set security alarm off" command.
func NewSecurityAlarmOff() *SecurityAlarmOff {
	return &SecurityAlarmOff{securityAlarmCommand{newFamily[SecurityAlarmDevice](device.KindSecurityAlarm, "Set security alarm off")}}
}

// Execute disarms the security alarm.
func (c *SecurityAlarmOff) Execute(ctx context.Context) (Result, error) {
	a, err := c.target(ctx)
	if err != nil {
		return Result{}, err
	}
	a.TurnOff()
	return c.result(a.State()), nil
}
