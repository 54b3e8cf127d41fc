package command

import (
	"context"
	"fmt"

	"github.com/yandexplus/yplus-go/pkg/device"
)

// CoffeeMachineDevice is what coffee machine commands need from the machine.
type CoffeeMachineDevice interface {
	SetRegime(value uint)
	MakeCoffee() device.Brew
	State() string
}

var _ CoffeeMachineDevice = (*device.CoffeeMachine)(nil)

// CoffeeMachineCommand is a command of the coffee machine family.
type CoffeeMachineCommand interface {
	Command
	SetCoffeeMachine(d CoffeeMachineDevice)
}

type coffeeMachineCommand struct {
	family[CoffeeMachineDevice]
}

// Bind binds the command to the coffee machine in devs.
func (c *coffeeMachineCommand) Bind(devs Devices) {
	if m := devs.CoffeeMachine(); m != nil {
		c.SetCoffeeMachine(m)
	}
}

// SetCoffeeMachine rebinds the command to d.
func (c *coffeeMachineCommand) SetCoffeeMachine(d CoffeeMachineDevice) {
	c.set(d)
}

// MakeCoffee selects a drink regime and brews it in one step.
type MakeCoffee struct {
	coffeeMachineCommand
	regime device.Regime
}

func newMakeCoffee(regime device.Regime, drink string) *MakeCoffee {
	return &MakeCoffee{
		coffeeMachineCommand: coffeeMachineCommand{newFamily[CoffeeMachineDevice](
			device.KindCoffeeMachine, fmt.Sprintf("Make %s in the coffee machine", drink))},
		regime: regime,
	}
}

// NewMakeLatte creates an unbound "Make Latte in the coffee machine" command.
func NewMakeLatte() *MakeCoffee {
	return newMakeCoffee(device.RegimeLatte, "Latte")
}

// NewMakeCappuccino creates an unbound "Make Cappuccino in the coffee machine"
// command.
func NewMakeCappuccino() *MakeCoffee {
	return newMakeCoffee(device.RegimeCappuccino, "Cappuccino")
}

// NewMakeEspresso creates an unbound "Make Espresso in the coffee machine"
// command.
func NewMakeEspresso() *MakeCoffee {
	return newMakeCoffee(device.RegimeEspresso, "Espresso")
}

// NewMakeRistretto creates an unbound "Make Ristretto in the coffee machine"
// command.
func NewMakeRistretto() *MakeCoffee {
	return newMakeCoffee(device.RegimeRistretto, "Ristretto")
}

// Regime returns the regime the command brews in.
func (c *MakeCoffee) Regime() device.Regime {
	return c.regime
}

// Execute selects the regime and brews. The output is the machine's message.
func (c *MakeCoffee) Execute(ctx context.Context) (Result, error) {
	m, err := c.target(ctx)
	if err != nil {
		return Result{}, err
	}
	m.SetRegime(uint(c.regime))
	return c.result(m.MakeCoffee().Message()), nil
}

// CoffeeMachineOff switches the coffee machine to the off regime without
// brewing.
type CoffeeMachineOff struct {
	coffeeMachineCommand
}

// NewCoffeeMachineOff creates an unbound "Turn the coffee machine off" command.
func NewCoffeeMachineOff() *CoffeeMachineOff {
	return &CoffeeMachineOff{coffeeMachineCommand{newFamily[CoffeeMachineDevice](
		device.KindCoffeeMachine, "Turn the coffee machine off")}}
}

// Execute selects the off regime.
func (c *CoffeeMachineOff) Execute(ctx context.Context) (Result, error) {
	m, err := c.target(ctx)
	if err != nil {
		return Result{}, err
	}
	m.SetRegime(uint(device.RegimeOff))
	return c.result(m.State()), nil
}
