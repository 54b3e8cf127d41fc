// Command yplus-hub runs a YandexPlus smart-home hub.
//
// The hub owns one socket, light, fire alarm, security alarm, coffee machine
// and music center. At start-up it installs a command catalog (an embedded
// preset or a YAML file) and then either plays the scripted demo or opens an
// interactive console.
//
// Usage:
//
//	yplus-hub [flags]
//
// Flags:
//
//	-config string      Configuration file path
//	-interactive        Open the interactive console instead of the demo
//	-preset string      Embedded catalog preset (default "default")
//	-catalog string     Catalog file path (overrides -preset)
//	-journal string     Append journal events to this CBOR file
//	-ids string         User ID allocator: counter, uuid (default "counter")
//	-log-level string   Log level: debug, info, warn, error (default "info")
//	-log-format string  Log format: text, json (default "text")
//
// Examples:
//
//	# Run the demo with the default catalog
//	yplus-hub
//
//	# Console with a custom catalog and a journal file
//	yplus-hub -interactive -catalog evening.yaml -journal hub.ylog
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/yandexplus/yplus-go/cmd/yplus-hub/interactive"
	"github.com/yandexplus/yplus-go/pkg/hub"
	ylog "github.com/yandexplus/yplus-go/pkg/log"
)

var (
	configFile  string
	flagMode    bool
	flagPreset  string
	flagCatalog string
	flagJournal string
	flagIDs     string
	flagLevel   string
	flagFormat  string
)

func init() {
	flag.StringVar(&configFile, "config", "", "Configuration file path")
	flag.BoolVar(&flagMode, "interactive", false, "Open the interactive console instead of the demo")
	flag.StringVar(&flagPreset, "preset", "", "Embedded catalog preset")
	flag.StringVar(&flagCatalog, "catalog", "", "Catalog file path (overrides -preset)")
	flag.StringVar(&flagJournal, "journal", "", "Append journal events to this CBOR file")
	flag.StringVar(&flagIDs, "ids", "", "User ID allocator: counter, uuid")
	flag.StringVar(&flagLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.StringVar(&flagFormat, "log-format", "", "Log format: text, json")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Ltime)

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cancel, cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("yplus-hub: %v", err)
	}
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig() (*Config, error) {
	cfg := DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = LoadConfig(configFile); err != nil {
			return nil, err
		}
	}

	if flagMode {
		cfg.Mode = ModeInteractive
	}
	if flagPreset != "" {
		cfg.Catalog.Preset = flagPreset
		cfg.Catalog.File = ""
	}
	if flagCatalog != "" {
		cfg.Catalog.File = flagCatalog
	}
	if flagJournal != "" {
		cfg.Journal.Path = flagJournal
	}
	if flagIDs != "" {
		cfg.Users.IDs = flagIDs
	}
	if flagLevel != "" {
		cfg.Log.Level = flagLevel
	}
	if flagFormat != "" {
		cfg.Log.Format = flagFormat
	}

	cfg.setDefaults()
	return cfg, cfg.Validate()
}

func run(ctx context.Context, cancel context.CancelFunc, cfg *Config, stdout, stderr io.Writer) error {
	var console *interactive.Console
	if cfg.Mode == ModeInteractive {
		var err error
		if console, err = interactive.New(); err != nil {
			return err
		}
		// Route log output through readline so it does not clobber the prompt.
		stdout, stderr = console.Stdout(), console.Stderr()
	}

	logger := setupLogger(cfg.Log, stderr)

	journal, closeJournal, err := openJournal(cfg.Journal, logger)
	if err != nil {
		return err
	}
	defer closeJournal()

	h := hub.New(
		hub.WithName(cfg.Hub.Name),
		hub.WithLogger(logger),
		hub.WithJournal(journal),
	)

	doc, err := cfg.Document()
	if err != nil {
		return err
	}
	cmds, err := doc.Build()
	if err != nil {
		return err
	}
	if err := h.AddCommands(cmds...); err != nil {
		return err
	}
	logger.Info("Catalog installed", "catalog", doc.Name, "commands", h.Len())

	if console != nil {
		console.Attach(h, cfg.Allocator())
		console.Run(ctx, cancel)
		return nil
	}
	return runDemo(ctx, h, cfg, stdout)
}

func setupLogger(cfg LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// openJournal builds the configured journal sinks. The returned close
// function is always safe to call.
func openJournal(cfg JournalConfig, logger *slog.Logger) (ylog.Logger, func(), error) {
	var sinks []ylog.Logger
	closeFn := func() {}

	if cfg.Path != "" {
		file, err := ylog.NewFileLogger(cfg.Path)
		if err != nil {
			return nil, closeFn, fmt.Errorf("opening journal: %w", err)
		}
		sinks = append(sinks, file)
		closeFn = func() {
			if err := file.Close(); err != nil {
				logger.Warn("Closing journal failed", "path", cfg.Path, "error", err)
			}
		}
	}
	if cfg.Console {
		sinks = append(sinks, ylog.NewSlogAdapter(logger))
	}

	switch len(sinks) {
	case 0:
		return ylog.NoopLogger{}, closeFn, nil
	case 1:
		return sinks[0], closeFn, nil
	default:
		return ylog.NewMultiLogger(sinks...), closeFn, nil
	}
}
