package device

import (
	"fmt"
	"sync"
)

// PlayStatus is the outcome class of MusicCenter.Play.
type PlayStatus uint8

// Play outcomes. Exactly one applies for any (power, song) combination.
const (
	PlayStatusOff PlayStatus = iota
	PlayStatusNoSong
	PlayStatusPlaying
)

// String returns the status name.
func (s PlayStatus) String() string {
	switch s {
	case PlayStatusOff:
		return "OFF"
	case PlayStatusNoSong:
		return "NO_SONG"
	case PlayStatusPlaying:
		return "PLAYING"
	default:
		return fmt.Sprintf("PLAY_STATUS(%d)", uint8(s))
	}
}

// Playback is the outcome of MusicCenter.Play.
type Playback struct {
	Status PlayStatus
	Song   string
}

// Message returns the text the music center shows for this playback.
func (p Playback) Message() string {
	switch p.Status {
	case PlayStatusOff:
		return "Music center is off!"
	case PlayStatusNoSong:
		return "No song selected!"
	default:
		return "Playing " + p.Song
	}
}

// MusicCenter is the smart music center. A new center is off with no song.
type MusicCenter struct {
	mu   sync.RWMutex
	on   bool
	song string
}

// NewMusicCenter creates a music center that is off.
func NewMusicCenter() *MusicCenter {
	return &MusicCenter{}
}

// TurnOn powers the music center on.
func (m *MusicCenter) TurnOn() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.on = true
}

// TurnOff powers the music center off. The selected song is kept.
func (m *MusicCenter) TurnOff() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.on = false
}

// SetSong selects a song. An empty title clears the selection.
func (m *MusicCenter) SetSong(title string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.song = title
}

// IsOn reports whether the music center is powered.
func (m *MusicCenter) IsOn() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.on
}

// Song returns the selected song, or "" when none is selected.
func (m *MusicCenter) Song() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.song
}

// Play plays the selected song if the center is on and a song is selected.
func (m *MusicCenter) Play() Playback {
	m.mu.RLock()
	defer m.mu.RUnlock()

	switch {
	case !m.on:
		return Playback{Status: PlayStatusOff, Song: m.song}
	case m.song == "":
		return Playback{Status: PlayStatusNoSong}
	default:
		return Playback{Status: PlayStatusPlaying, Song: m.song}
	}
}

// State returns the state text, e.g. `on, song "Roots to Branches"`.
func (m *MusicCenter) State() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.song == "" {
		return onOff(m.on) + ", no song"
	}
	return fmt.Sprintf("%s, song %q", onOff(m.on), m.song)
}
