package main

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/yandexplus/yplus-go/pkg/catalog"
	"github.com/yandexplus/yplus-go/pkg/hub"
	"github.com/yandexplus/yplus-go/pkg/ident"
)

// Run modes.
const (
	ModeDemo        = "demo"
	ModeInteractive = "interactive"
)

// ID allocator names.
const (
	IDsUUID    = "uuid"
	IDsCounter = "counter"
)

// Config holds the hub configuration.
type Config struct {
	Mode    string        `yaml:"mode"`
	Hub     HubConfig     `yaml:"hub"`
	Log     LogConfig     `yaml:"log"`
	Journal JournalConfig `yaml:"journal"`
	Catalog CatalogConfig `yaml:"catalog"`
	Users   UsersConfig   `yaml:"users"`
	Demo    DemoConfig    `yaml:"demo"`
}

// HubConfig names the hub.
type HubConfig struct {
	Name string `yaml:"name"`
}

// LogConfig selects the operational log output.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// JournalConfig selects where journal events go.
type JournalConfig struct {
	// Path of the CBOR journal file. Empty disables the file.
	Path string `yaml:"path"`

	// Console also writes journal events to the operational log at debug level.
	Console bool `yaml:"console"`
}

// CatalogConfig selects the command catalog installed at start-up.
// File takes precedence over Preset.
type CatalogConfig struct {
	Preset string `yaml:"preset"`
	File   string `yaml:"file"`
}

// UsersConfig controls user creation.
type UsersConfig struct {
	IDs    string `yaml:"ids"`
	Prefix string `yaml:"prefix"`
	// Count is the number of demo users. Nil means 1; 0 runs without users.
	Count *int `yaml:"count"`
}

// DemoConfig controls the scripted demo run.
type DemoConfig struct {
	// Run lists the catalog indexes the first user runs, in order.
	Run []int `yaml:"run"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// LoadConfig reads a YAML config file. ${VAR} references are expanded from
// the environment before parsing.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Mode == "" {
		c.Mode = ModeDemo
	}
	if c.Hub.Name == "" {
		c.Hub.Name = hub.DefaultName
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Catalog.Preset == "" && c.Catalog.File == "" {
		c.Catalog.Preset = catalog.DefaultPreset
	}
	if c.Users.IDs == "" {
		c.Users.IDs = IDsCounter
	}
	if c.Users.Prefix == "" && c.Users.IDs == IDsCounter {
		c.Users.Prefix = "user-"
	}
	if c.Users.Count == nil {
		n := 1
		c.Users.Count = &n
	}
	if c.Demo.Run == nil {
		c.Demo.Run = []int{17, 15, 17}
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	if !slices.Contains([]string{ModeDemo, ModeInteractive}, c.Mode) {
		return fmt.Errorf("mode must be %s or %s, got %q", ModeDemo, ModeInteractive, c.Mode)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log format must be text or json, got %q", c.Log.Format)
	}
	if c.Users.IDs != IDsUUID && c.Users.IDs != IDsCounter {
		return fmt.Errorf("users.ids must be %s or %s, got %q", IDsUUID, IDsCounter, c.Users.IDs)
	}
	if c.UserCount() < 0 {
		return fmt.Errorf("users.count must not be negative, got %d", c.UserCount())
	}
	return nil
}

// UserCount returns the configured number of demo users.
func (c *Config) UserCount() int {
	if c.Users.Count == nil {
		return 1
	}
	return *c.Users.Count
}

// Allocator returns the user ID allocator the config selects.
func (c *Config) Allocator() ident.Allocator {
	if c.Users.IDs == IDsUUID {
		return ident.NewUUID()
	}
	return ident.NewCounter(c.Users.Prefix)
}

// Document loads the configured catalog.
func (c *Config) Document() (*catalog.Document, error) {
	if c.Catalog.File != "" {
		return catalog.Load(c.Catalog.File)
	}
	return catalog.Preset(c.Catalog.Preset)
}
