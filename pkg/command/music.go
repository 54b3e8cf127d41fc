package command

import (
	"context"

	"github.com/yandexplus/yplus-go/pkg/device"
)

// MusicCenterDevice is what music center commands need from the center.
type MusicCenterDevice interface {
	TurnOn()
	TurnOff()
	SetSong(title string)
	Play() device.Playback
	State() string
}

var _ MusicCenterDevice = (*device.MusicCenter)(nil)

// MusicCenterCommand is a command of the music center family.
type MusicCenterCommand interface {
	Command
	SetMusicCenter(d MusicCenterDevice)
}

type musicCenterCommand struct {
	family[MusicCenterDevice]
}

// Bind binds the command to the music center in devs.
func (c *musicCenterCommand) Bind(devs Devices) {
	if m := devs.MusicCenter(); m != nil {
		c.SetMusicCenter(m)
	}
}

// SetMusicCenter rebinds the command to d.
func (c *musicCenterCommand) SetMusicCenter(d MusicCenterDevice) {
	c.set(d)
}

// MusicCenterOn powers the music center on.
type MusicCenterOn struct {
	musicCenterCommand
}

// NewMusicCenterOn creates an unbound "Turn music center on" command.
func NewMusicCenterOn() *MusicCenterOn {
	return &MusicCenterOn{musicCenterCommand{newFamily[MusicCenterDevice](device.KindMusicCenter, "Turn music center on")}}
}

// Execute powers the music center on.
func (c *MusicCenterOn) Execute(ctx context.Context) (Result, error) {
	m, err := c.target(ctx)
	if err != nil {
		return Result{}, err
	}
	m.TurnOn()
	return c.result(m.State()), nil
}

// MusicCenterOff powers the music center off.
type MusicCenterOff struct {
	musicCenterCommand
}

// NewMusicCenterOff creates an unbound "Turn music center off" command.
func NewMusicCenterOff() *MusicCenterOff {
	return &MusicCenterOff{musicCenterCommand{newFamily[MusicCenterDevice](device.KindMusicCenter, "Turn music center off")}}
}

// Execute powers the music center off.
func (c *MusicCenterOff) Execute(ctx context.Context) (Result, error) {
	m, err := c.target(ctx)
	if err != nil {
		return Result{}, err
	}
	m.TurnOff()
	return c.result(m.State()), nil
}

// PlaySong selects a song and plays it in one step.
type PlaySong struct {
	musicCenterCommand
	song string
}

// NewPlaySong creates an unbound `Play "<song>" with the Music center` command.
func NewPlaySong(song string) *PlaySong {
	return &PlaySong{
		musicCenterCommand: musicCenterCommand{newFamily[MusicCenterDevice](
			device.KindMusicCenter, "Play \""+song+"\" with the Music center")},
		song: song,
	}
}

// Song returns the song the command plays.
func (c *PlaySong) Song() string {
	return c.song
}

// Execute selects the song and plays it. The output is the center's message,
// which reports a powered-off center instead of playing.
func (c *PlaySong) Execute(ctx context.Context) (Result, error) {
	m, err := c.target(ctx)
	if err != nil {
		return Result{}, err
	}
	m.SetSong(c.song)
	return c.result(m.Play().Message()), nil
}
