package catalog

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yandexplus/yplus-go/pkg/command"
	"github.com/yandexplus/yplus-go/pkg/device"
	"github.com/yandexplus/yplus-go/pkg/version"
)

// Catalog errors.
var (
	ErrUnknownCommand = errors.New("unknown command kind")
	ErrMissingSong    = errors.New("music_play requires a song")
	ErrBadParameter   = errors.New("invalid command parameter")
)

// Document is a catalog file.
type Document struct {
	Version     string  `yaml:"version"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Commands    []Entry `yaml:"commands"`
}

// Entry is one command of a document.
type Entry struct {
	// Command is the command kind, e.g. "light_increase".
	Command string `yaml:"command"`

	// Level is the light_on level (default device.DefaultLevel).
	Level *uint `yaml:"level,omitempty"`

	// By is the light_increase / light_decrease delta (default 1).
	By *uint `yaml:"by,omitempty"`

	// Song is the music_play title.
	Song string `yaml:"song,omitempty"`
}

// UnmarshalYAML accepts either a bare kind or a mapping.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*e = Entry{Command: node.Value}
		return nil
	}

	type plain Entry
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*e = Entry(p)
	return nil
}

// MarshalYAML writes entries without parameters as a bare kind.
func (e Entry) MarshalYAML() (any, error) {
	if e.Level == nil && e.By == nil && e.Song == "" {
		return e.Command, nil
	}
	type plain Entry
	return plain(e), nil
}

type builder func(e Entry) (command.Command, error)

func fixed(newCmd func() command.Command) builder {
	return func(Entry) (command.Command, error) { return newCmd(), nil }
}

func delta(e Entry) uint {
	if e.By == nil {
		return 1
	}
	return *e.By
}

// kinds maps every command kind to its constructor.
var kinds = map[string]builder{
	"socket_on":  fixed(func() command.Command { return command.NewSocketOn() }),
	"socket_off": fixed(func() command.Command { return command.NewSocketOff() }),
	"light_on": func(e Entry) (command.Command, error) {
		level := uint(device.DefaultLevel)
		if e.Level != nil {
			if *e.Level > device.MaxLevel {
				return nil, fmt.Errorf("level %d above %d: %w", *e.Level, device.MaxLevel, ErrBadParameter)
			}
			level = *e.Level
		}
		return command.NewLightOn(level), nil
	},
	"light_off": fixed(func() command.Command { return command.NewLightOff() }),
	"light_increase": func(e Entry) (command.Command, error) {
		return command.NewLightIncrease(delta(e)), nil
	},
	"light_decrease": func(e Entry) (command.Command, error) {
		return command.NewLightDecrease(delta(e)), nil
	},
	"fire_alarm_on":      fixed(func() command.Command { return command.NewFireAlarmOn() }),
	"fire_alarm_off":     fixed(func() command.Command { return command.NewFireAlarmOff() }),
	"security_alarm_on":  fixed(func() command.Command { return command.NewSecurityAlarmOn() }),
	"security_alarm_off": fixed(func() command.Command { return command.NewSecurityAlarmOff() }),
	"coffee_latte":       fixed(func() command.Command { return command.NewMakeLatte() }),
	"coffee_cappuccino":  fixed(func() command.Command { return command.NewMakeCappuccino() }),
	"coffee_espresso":    fixed(func() command.Command { return command.NewMakeEspresso() }),
	"coffee_ristretto":   fixed(func() command.Command { return command.NewMakeRistretto() }),
	"coffee_off":         fixed(func() command.Command { return command.NewCoffeeMachineOff() }),
	"music_on":           fixed(func() command.Command { return command.NewMusicCenterOn() }),
	"music_off":          fixed(func() command.Command { return command.NewMusicCenterOff() }),
	"music_play": func(e Entry) (command.Command, error) {
		if strings.TrimSpace(e.Song) == "" {
			return nil, ErrMissingSong
		}
		return command.NewPlaySong(e.Song), nil
	},
}

// Kinds returns all command kinds, sorted.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Build creates the unbound command described by e.
func (e Entry) Build() (command.Command, error) {
	b, ok := kinds[e.Command]
	if !ok {
		return nil, fmt.Errorf("%q: %w", e.Command, ErrUnknownCommand)
	}
	return b(e)
}

// Build creates the commands for entries, in order.
func Build(entries []Entry) ([]command.Command, error) {
	cmds := make([]command.Command, 0, len(entries))
	for i, e := range entries {
		cmd, err := e.Build()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// Build creates the document's commands, in order.
func (d *Document) Build() ([]command.Command, error) {
	return Build(d.Commands)
}

// Parse decodes and validates a document.
func Parse(data []byte) (*Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks the version and that every entry builds.
func (d *Document) Validate() error {
	if _, err := version.Check(d.Version); err != nil {
		return fmt.Errorf("catalog %q: %w", d.Name, err)
	}
	if _, err := d.Build(); err != nil {
		return fmt.Errorf("catalog %q: %w", d.Name, err)
	}
	return nil
}

// Load reads and parses a document file. ${VAR} references are expanded
// from the environment.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse([]byte(os.ExpandEnv(string(data))))
}

// Marshal encodes a document as YAML.
func Marshal(d *Document) ([]byte, error) {
	if d.Version == "" {
		cp := *d
		cp.Version = version.Current
		d = &cp
	}
	return yaml.Marshal(d)
}

// ParseEntry builds an entry from console words: a kind followed by its
// parameter, e.g. "light_increase 30" or "music_play Little Lion Man".
func ParseEntry(args []string) (Entry, error) {
	if len(args) == 0 {
		return Entry{}, fmt.Errorf("empty command: %w", ErrUnknownCommand)
	}

	e := Entry{Command: args[0]}
	rest := args[1:]

	switch e.Command {
	case "light_on", "light_increase", "light_decrease":
		if len(rest) == 0 {
			break
		}
		n, err := strconv.ParseUint(rest[0], 10, 32)
		if err != nil {
			return Entry{}, fmt.Errorf("%s %q: %w", e.Command, rest[0], ErrBadParameter)
		}
		v := uint(n)
		if e.Command == "light_on" {
			e.Level = &v
		} else {
			e.By = &v
		}
	case "music_play":
		e.Song = strings.Join(rest, " ")
	}

	if _, err := e.Build(); err != nil {
		return Entry{}, err
	}
	return e, nil
}
