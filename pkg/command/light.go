package command

import (
	"context"
	"fmt"

	"github.com/yandexplus/yplus-go/pkg/device"
)

// LightDevice is what light commands need from a light.
type LightDevice interface {
	TurnOn(level uint)
	TurnOff()
	Increase(delta uint)
	Decrease(delta uint)
	State() string
}

var _ LightDevice = (*device.Light)(nil)

// LightCommand is a command of the light family.
type LightCommand interface {
	Command
	SetLight(d LightDevice)
}

type lightCommand struct {
	family[LightDevice]
}

// Bind binds the command to the light in devs.
func (c *lightCommand) Bind(devs Devices) {
	if l := devs.Light(); l != nil {
		c.SetLight(l)
	}
}

// SetLight rebinds the command to d.
func (c *lightCommand) SetLight(d LightDevice) {
	c.set(d)
}

// LightOn turns the light on at a fixed level.
type LightOn struct {
	lightCommand
	level uint
}

// NewLightOn creates an unbound "Turn Smart Light on" command. The light is set
// to level mod 101 when executed; device.DefaultLevel is the usual choice.
func NewLightOn(level uint) *LightOn {
	return &LightOn{
		lightCommand: lightCommand{newFamily[LightDevice](device.KindLight, "Turn Smart Light on")},
		level:        level,
	}
}

// Level returns the level the command turns the light on at.
func (c *LightOn) Level() uint {
	return c.level
}

// Execute turns the light on.
func (c *LightOn) Execute(ctx context.Context) (Result, error) {
	l, err := c.target(ctx)
	if err != nil {
		return Result{}, err
	}
	l.TurnOn(c.level)
	return c.result(l.State()), nil
}

// LightOff turns the light off.
type LightOff struct {
	lightCommand
}

// NewLightOff creates an unbound "Turn Smart Light off" command.
func NewLightOff() *LightOff {
	return &LightOff{lightCommand{newFamily[LightDevice](device.KindLight, "Turn Smart Light off")}}
}

// Execute turns the light off.
func (c *LightOff) Execute(ctx context.Context) (Result, error) {
	l, err := c.target(ctx)
	if err != nil {
		return Result{}, err
	}
	l.TurnOff()
	return c.result(l.State()), nil
}

// LightIncrease raises the light level by a fixed delta.
type LightIncrease struct {
	lightCommand
	delta uint
}

// NewLightIncrease creates an unbound "Increase light by <delta>" command.
func NewLightIncrease(delta uint) *LightIncrease {
	return &LightIncrease{
		lightCommand: lightCommand{newFamily[LightDevice](device.KindLight, fmt.Sprintf("Increase light by %d", delta))},
		delta:        delta,
	}
}

// Delta returns the amount the level is raised by.
func (c *LightIncrease) Delta() uint {
	return c.delta
}

// Execute raises the light level, wrapping past the maximum.
func (c *LightIncrease) Execute(ctx context.Context) (Result, error) {
	l, err := c.target(ctx)
	if err != nil {
		return Result{}, err
	}
	l.Increase(c.delta)
	return c.result(l.State()), nil
}

// LightDecrease lowers the light level by a fixed delta.
type LightDecrease struct {
	lightCommand
	delta uint
}

// NewLightDecrease creates an unbound "Decrease light by <delta>" command.
func NewLightDecrease(delta uint) *LightDecrease {
	return &LightDecrease{
		lightCommand: lightCommand{newFamily[LightDevice](device.KindLight, fmt.Sprintf("Decrease light by %d", delta))},
		delta:        delta,
	}
}

// Delta returns the amount the level is lowered by.
func (c *LightDecrease) Delta() uint {
	return c.delta
}

// Execute lowers the light level, stopping at 0.
func (c *LightDecrease) Execute(ctx context.Context) (Result, error) {
	l, err := c.target(ctx)
	if err != nil {
		return Result{}, err
	}
	l.Decrease(c.delta)
	return c.result(l.State()), nil
}
