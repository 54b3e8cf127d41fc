package command

import (
	"context"

	"github.com/yandexplus/yplus-go/pkg/device"
)

// SocketDevice is what socket commands need from a socket.
type SocketDevice interface {
	TurnOn()
	TurnOff()
	State() string
}

var _ SocketDevice = (*device.Socket)(nil)

// SocketCommand is a command of the socket family.
type SocketCommand interface {
	Command
	SetSocket(d SocketDevice)
}

type socketCommand struct {
	family[SocketDevice]
}

// Bind binds the command to the socket in devs.
func (c *socketCommand) Bind(devs Devices) {
	if s := devs.Socket(); s != nil {
		c.SetSocket(s)
	}
}

// SetSocket rebinds the command to d.
func (c *socketCommand) SetSocket(d SocketDevice) {
	c.set(d)
}

// SocketOn switches the socket on.
type SocketOn struct {
	socketCommand
}

// NewSocketOn creates an unbound "Turn Smart Socket on" command.
func NewSocketOn() *SocketOn {
	return &SocketOn{socketCommand{newFamily[SocketDevice](device.KindSocket, "Turn Smart Socket on")}}
}

// Execute switches the socket on.
func (c *SocketOn) Execute(ctx context.Context) (Result, error) {
	s, err := c.target(ctx)
	if err != nil {
		return Result{}, err
	}
	s.TurnOn()
	return c.result(s.State()), nil
}

// SocketOff switches the socket off.
type SocketOff struct {
	socketCommand
}

// NewSocketOff creates an unbound "Turn Smart Socket off" command.
func NewSocketOff() *SocketOff {
	return &SocketOff{socketCommand{newFamily[SocketDevice](device.KindSocket, "Turn Smart Socket off")}}
}

// Execute switches the socket off.
func (c *SocketOff) Execute(ctx context.Context) (Result, error) {
	s, err := c.target(ctx)
	if err != nil {
		return Result{}, err
	}
	s.TurnOff()
	return c.result(s.State()), nil
}
