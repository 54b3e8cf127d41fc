package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yandexplus/yplus-go/pkg/device"
)

func TestNames(t *testing.T) {
	tests := []struct {
		cmd  Command
		name string
		kind device.Kind
	}{
		{NewSocketOn(), "Turn Smart Socket on", device.KindSocket},
		{NewSocketOff(), "Turn Smart Socket off", device.KindSocket},
		{NewLightOn(device.DefaultLevel), "Turn Smart Light on", device.KindLight},
		{NewLightOff(), "Turn Smart Light off", device.KindLight},
		{NewLightIncrease(50), "Increase light by 50", device.KindLight},
		{NewLightDecrease(7), "Decrease light by 7", device.KindLight},
		{NewFireAlarmOn(), "Set fire alarm on", device.KindFireAlarm},
		{NewFireAlarmOff(), "Set fire alarm off", device.KindFireAlarm},
		{NewSecurityAlarmOn(), "Set security alarm on", device.KindSecurityAlarm},
		{NewSecurityAlarmOff(), "Set security alarm off", device.KindSecurityAlarm},
		{NewMakeLatte(), "Make Latte in the coffee machine", device.KindCoffeeMachine},
		{NewMakeCappuccino(), "Make Cappuccino in the coffee machine", device.KindCoffeeMachine},
		{NewMakeEspresso(), "Make Espresso in the coffee machine", device.KindCoffeeMachine},
		{NewMakeRistretto(), "Make Ristretto in the coffee machine", device.KindCoffeeMachine},
		{NewCoffeeMachineOff(), "Turn the coffee machine off", device.KindCoffeeMachine},
		{NewMusicCenterOn(), "Turn music center on", device.KindMusicCenter},
		{NewMusicCenterOff(), "Turn music center off", device.KindMusicCenter},
		{NewPlaySong("Jethro Tull - Roots to Branches"), `Play "Jethro Tull - Roots to Branches" with the Music center`, device.KindMusicCenter},
		{NewPlaySong("The \"Wall\"\tLive"), "Play \"The \"Wall\"\tLive\" with the Music center", device.KindMusicCenter},
	}

	devs := device.NewSet()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.cmd.Name())
			assert.Equal(t, tt.kind, tt.cmd.Kind())
			assert.False(t, tt.cmd.Bound())

			tt.cmd.Bind(devs)
			assert.True(t, tt.cmd.Bound())
			assert.Equal(t, tt.name, tt.cmd.Name(), "name must not change on bind")
		})
	}
}

func TestExecuteUnbound(t *testing.T) {
	cmds := []Command{
		NewSocketOn(),
		NewLightIncrease(3),
		NewFireAlarmOn(),
		NewSecurityAlarmOff(),
		NewMakeLatte(),
		NewPlaySong("x"),
	}

	for _, cmd := range cmds {
		t.Run(cmd.Name(), func(t *testing.T) {
			_, err := cmd.Execute(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnbound))
		})
	}
}

func TestExecuteCanceledContext(t *testing.T) {
	devs := device.NewSet()
	cmd := NewSocketOff()
	cmd.Bind(devs)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cmd.Execute(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, devs.Socket().IsOn(), "socket must not change")
}

func TestSocketCommands(t *testing.T) {
	ctx := context.Background()
	devs := device.NewSet()

	off := NewSocketOff()
	off.Bind(devs)
	res, err := off.Execute(ctx)
	require.NoError(t, err)
	assert.False(t, devs.Socket().IsOn())
	assert.Equal(t, "off", res.Output)
	assert.Equal(t, "Turn Smart Socket off", res.Command)

	on := NewSocketOn()
	on.Bind(devs)
	_, err = on.Execute(ctx)
	require.NoError(t, err)
	assert.True(t, devs.Socket().IsOn())
}

func TestLightCommands(t *testing.T) {
	ctx := context.Background()
	devs := device.NewSet()

	inc := NewLightIncrease(60)
	inc.Bind(devs)

	_, err := inc.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60, devs.Light().Level())

	res, err := inc.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 19, devs.Light().Level())
	assert.Equal(t, "level 19", res.Output)

	dec := NewLightDecrease(50)
	dec.Bind(devs)
	_, err = dec.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, devs.Light().Level())

	on := NewLightOn(device.DefaultLevel)
	on.Bind(devs)
	_, err = on.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, devs.Light().Level())

	off := NewLightOff()
	off.Bind(devs)
	_, err = off.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, devs.Light().Level())
}

func TestAlarmCommands(t *testing.T) {
	ctx := context.Background()
	devs := device.NewSet()

	for _, cmd := range []Command{NewFireAlarmOn(), NewSecurityAlarmOn()} {
		cmd.Bind(devs)
		_, err := cmd.Execute(ctx)
		require.NoError(t, err)
	}
	assert.True(t, devs.FireAlarm().IsOn())
	assert.True(t, devs.SecurityAlarm().IsOn())

	off := NewFireAlarmOff()
	off.Bind(devs)
	_, err := off.Execute(ctx)
	require.NoError(t, err)
	assert.False(t, devs.FireAlarm().IsOn())
	assert.True(t, devs.SecurityAlarm().IsOn(), "security alarm belongs to another family")
}

func TestCoffeeCommands(t *testing.T) {
	ctx := context.Background()
	devs := device.NewSet()

	tests := []struct {
		cmd    *MakeCoffee
		regime device.Regime
		output string
	}{
		{NewMakeLatte(), device.RegimeLatte, "Making latte... Done!"},
		{NewMakeCappuccino(), device.RegimeCappuccino, "Making cappuccino... Done!"},
		{NewMakeEspresso(), device.RegimeEspresso, "Making espresso... Done!"},
		{NewMakeRistretto(), device.RegimeRistretto, "Making ristretto... Done!"},
	}
	for _, tt := range tests {
		t.Run(tt.cmd.Name(), func(t *testing.T) {
			tt.cmd.Bind(devs)
			res, err := tt.cmd.Execute(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.regime, devs.CoffeeMachine().Regime())
			assert.Equal(t, tt.output, res.Output)
		})
	}

	off := NewCoffeeMachineOff()
	off.Bind(devs)
	res, err := off.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, device.RegimeOff, devs.CoffeeMachine().Regime())
	assert.Equal(t, "regime OFF", res.Output)
}

func TestMusicCommands(t *testing.T) {
	ctx := context.Background()
	devs := device.NewSet()

	play := NewPlaySong("Mumford and Sons - Little Lion Man")
	play.Bind(devs)

	res, err := play.Execute(ctx)
	require.NoError(t, err, "a powered-off center is an outcome, not an error")
	assert.Equal(t, "Music center is off!", res.Output)
	assert.Equal(t, "Mumford and Sons - Little Lion Man", devs.MusicCenter().Song())

	on := NewMusicCenterOn()
	on.Bind(devs)
	_, err = on.Execute(ctx)
	require.NoError(t, err)

	res, err = play.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Playing Mumford and Sons - Little Lion Man", res.Output)

	off := NewMusicCenterOff()
	off.Bind(devs)
	_, err = off.Execute(ctx)
	require.NoError(t, err)
	assert.False(t, devs.MusicCenter().IsOn())
}

type recordingLight struct {
	calls []string
}

func (l *recordingLight) TurnOn(level uint)   { l.calls = append(l.calls, "on") }
func (l *recordingLight) TurnOff()            { l.calls = append(l.calls, "off") }
func (l *recordingLight) Increase(delta uint) { l.calls = append(l.calls, "increase") }
func (l *recordingLight) Decrease(delta uint) { l.calls = append(l.calls, "decrease") }
func (l *recordingLight) State() string       { return "recorded" }

func TestRebind(t *testing.T) {
	ctx := context.Background()
	cmd := NewLightIncrease(5)

	fake := &recordingLight{}
	cmd.SetLight(fake)
	require.True(t, cmd.Bound())

	res, err := cmd.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"increase"}, fake.calls)
	assert.Equal(t, "recorded", res.Output)

	devs := device.NewSet()
	cmd.Bind(devs)
	_, err = cmd.Execute(ctx)
	require.NoError(t, err)
	assert.Len(t, fake.calls, 1, "old device must not be used after rebinding")
	assert.Equal(t, 5, devs.Light().Level())

	cmd.SetLight(nil)
	assert.False(t, cmd.Bound())
	_, err = cmd.Execute(ctx)
	assert.ErrorIs(t, err, ErrUnbound)
}

func TestRebindTypedNil(t *testing.T) {
	ctx := context.Background()

	light := NewLightOn(device.DefaultLevel)
	light.Bind(device.NewSet())
	require.True(t, light.Bound())

	light.SetLight((*device.Light)(nil))
	assert.False(t, light.Bound())
	_, err := light.Execute(ctx)
	assert.ErrorIs(t, err, ErrUnbound)

	socket := NewSocketOn()
	socket.SetSocket((*device.Socket)(nil))
	assert.False(t, socket.Bound())
	_, err = socket.Execute(ctx)
	assert.ErrorIs(t, err, ErrUnbound)

	play := NewPlaySong("Song")
	play.SetMusicCenter((*device.MusicCenter)(nil))
	_, err = play.Execute(ctx)
	assert.ErrorIs(t, err, ErrUnbound)
}
