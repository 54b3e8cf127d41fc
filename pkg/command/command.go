package command

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/yandexplus/yplus-go/pkg/device"
)

// Command errors.
var (
	ErrUnbound = errors.New("command not bound to a device")
)

// Command is a named action on one device.
type Command interface {
	// Name returns the display name. It never changes after construction.
	Name() string

	// Kind returns the device kind the command acts on.
	Kind() device.Kind

	// Bound reports whether the command holds a device reference.
	Bound() bool

	// Bind (re)binds the command to the device of its kind in devs.
	Bind(devs Devices)

	// Execute performs the action on the bound device.
	Execute(ctx context.Context) (Result, error)

	command()
}

// Devices provides one device per kind.
type Devices interface {
	Socket() *device.Socket
	Light() *device.Light
	FireAlarm() *device.FireAlarm
	SecurityAlarm() *device.SecurityAlarm
	CoffeeMachine() *device.CoffeeMachine
	MusicCenter() *device.MusicCenter
}

var _ Devices = (*device.Set)(nil)

// Result describes an executed command.
type Result struct {
	// Command is the name of the executed command.
	Command string

	// Kind is the device kind the command acted on.
	Kind device.Kind

	// Output is the device's report: the brew or playback message for
	// coffee and music commands, the resulting device state otherwise.
	Output string
}

// family is the state shared by all commands of one device kind.
type family[D any] struct {
	name string
	kind device.Kind

	mu    sync.RWMutex
	dev   D
	bound bool
}

func newFamily[D any](kind device.Kind, name string) family[D] {
	return family[D]{name: name, kind: kind}
}

// Name returns the command name.
func (f *family[D]) Name() string {
	return f.name
}

// Kind returns the device kind.
func (f *family[D]) Kind() device.Kind {
	return f.kind
}

// Bound reports whether the command holds a device reference.
func (f *family[D]) Bound() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.bound
}

func (f *family[D]) command() {}

// set replaces the device reference. A nil device, including a typed nil
// pointer, unbinds the command.
func (f *family[D]) set(d D) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if isNil(d) {
		var zero D
		f.dev, f.bound = zero, false
		return
	}
	f.dev, f.bound = d, true
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// target returns the bound device, or an error if the command cannot run.
func (f *family[D]) target(ctx context.Context) (D, error) {
	var zero D
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.bound {
		return zero, fmt.Errorf("%q: %w", f.name, ErrUnbound)
	}
	return f.dev, nil
}

func (f *family[D]) result(output string) Result {
	return Result{Command: f.name, Kind: f.kind, Output: output}
}

var (
	_ SocketCommand        = (*SocketOn)(nil)
	_ SocketCommand        = (*SocketOff)(nil)
	_ LightCommand         = (*LightOn)(nil)
	_ LightCommand         = (*LightOff)(nil)
	_ LightCommand         = (*LightIncrease)(nil)
	_ LightCommand         = (*LightDecrease)(nil)
	_ FireAlarmCommand     = (*FireAlarmOn)(nil)
	_ FireAlarmCommand     = (*FireAlarmOff)(nil)
	_ SecurityAlarmCommand = (*SecurityAlarmOn)(nil)
	_ SecurityAlarmCommand = (*SecurityAlarmOff)(nil)
	_ CoffeeMachineCommand = (*MakeCoffee)(nil)
	_ CoffeeMachineCommand = (*CoffeeMachineOff)(nil)
	_ MusicCenterCommand   = (*MusicCenterOn)(nil)
	_ MusicCenterCommand   = (*MusicCenterOff)(nil)
	_ MusicCenterCommand   = (*PlaySong)(nil)
)
