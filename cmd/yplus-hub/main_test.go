package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yandexplus/yplus-go/pkg/ident"
	ylog "github.com/yandexplus/yplus-go/pkg/log"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ModeDemo, cfg.Mode)
	assert.Equal(t, "YandexPlus", cfg.Hub.Name)
	assert.Equal(t, "default", cfg.Catalog.Preset)
	assert.Equal(t, IDsCounter, cfg.Users.IDs)
	assert.Equal(t, "user-", cfg.Users.Prefix)
	assert.Equal(t, 1, cfg.UserCount())
	assert.Equal(t, []int{17, 15, 17}, cfg.Demo.Run)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("YPLUS_HUB_NAME", "Dacha")
	path := writeFile(t, "hub.yaml", `
mode: interactive
hub:
  name: ${YPLUS_HUB_NAME}
log:
  level: debug
  format: json
catalog:
  preset: minimal
users:
  ids: uuid
  count: 2
demo:
  run: [0, 2]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ModeInteractive, cfg.Mode)
	assert.Equal(t, "Dacha", cfg.Hub.Name)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "", cfg.Users.Prefix)
	assert.Equal(t, []int{0, 2}, cfg.Demo.Run)
	assert.Equal(t, 2, cfg.UserCount())

	_, isUUID := cfg.Allocator().(*ident.UUID)
	assert.True(t, isUUID)

	doc, err := cfg.Document()
	require.NoError(t, err)
	assert.Equal(t, "minimal", doc.Name)
}

func TestLoadConfigZeroUsers(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, "hub.yaml", "users:\n  count: 0\n"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0, cfg.UserCount(), "an explicit zero must survive defaults")

	cfg, err = LoadConfig(writeFile(t, "empty.yaml", "users:\n  ids: counter\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.UserCount())
}

func TestDemoWithoutUsers(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cfg := DefaultConfig()
	n := 0
	cfg.Users.Count = &n

	err := run(context.Background(), func() {}, cfg, &stdout, &stderr)
	require.NoError(t, err)
	assert.NotContains(t, stdout.String(), "has the following commands available")
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "bad.yaml", "hub: ["))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"Mode", func(c *Config) { c.Mode = "daemon" }},
		{"Level", func(c *Config) { c.Log.Level = "loud" }},
		{"Format", func(c *Config) { c.Log.Format = "xml" }},
		{"IDs", func(c *Config) { c.Users.IDs = "random" }},
		{"Count", func(c *Config) { n := -1; c.Users.Count = &n }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDemo(t *testing.T) {
	var stdout, stderr bytes.Buffer
	journalPath := filepath.Join(t.TempDir(), "hub.ylog")

	cfg := DefaultConfig()
	cfg.Journal.Path = journalPath

	err := run(context.Background(), func() {}, cfg, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	for _, want := range []string{
		"User user-1 has the following commands available:",
		"\t0: Turn Smart Socket on",
		"\t19: Play \"Mumford and Sons - Little Lion Man\" with the Music center",
		"#17 Play \"Pink Floyd - Shine on you crazy diamond\" with the Music center: Music center is off!",
		"#15 Turn music center on: on, song \"Pink Floyd - Shine on you crazy diamond\"",
		"#17 Play \"Pink Floyd - Shine on you crazy diamond\" with the Music center: Playing Pink Floyd - Shine on you crazy diamond",
	} {
		assert.True(t, strings.Contains(out, want), "missing %q in:\n%s", want, out)
	}

	logs := stderr.String()
	for _, want := range []string{"Hub receives command", "Adding command", "User joins", "User receives software updates", "User leaves"} {
		assert.True(t, strings.Contains(logs, want), "missing %q in logs", want)
	}

	reader, err := ylog.NewReader(journalPath)
	require.NoError(t, err)
	defer reader.Close()
	events, err := reader.ReadAll()
	require.NoError(t, err)

	counts := map[ylog.Category]int{}
	for _, e := range events {
		counts[e.Category]++
	}
	assert.Equal(t, 20, counts[ylog.CategoryCatalog])
	assert.Equal(t, 3, counts[ylog.CategoryExecution])
	assert.Equal(t, 2, counts[ylog.CategorySubscription])
	assert.Equal(t, 2, counts[ylog.CategoryDelivery])
}

func TestDemoReportsMissingIndexes(t *testing.T) {
	var stdout, stderr bytes.Buffer

	cfg := DefaultConfig()
	cfg.Catalog.Preset = "minimal"
	cfg.Demo.Run = []int{2, 3, 17}

	require.NoError(t, run(context.Background(), func() {}, cfg, &stdout, &stderr))

	out := stdout.String()
	assert.Contains(t, out, "#2 Increase light by 50: level 50")
	assert.Contains(t, out, "Command #3 does not exist!")
	assert.Contains(t, out, "Command #17 does not exist!")
}

func TestRunWithCatalogFile(t *testing.T) {
	var stdout, stderr bytes.Buffer

	cfg := DefaultConfig()
	cfg.Catalog.File = writeFile(t, "catalog.yaml", "name: file\ncommands:\n  - coffee_espresso\n")
	cfg.Demo.Run = []int{0}

	require.NoError(t, run(context.Background(), func() {}, cfg, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "#0 Make Espresso in the coffee machine: Making espresso... Done!")

	cfg.Catalog.File = writeFile(t, "broken.yaml", "commands: [kettle_on]\n")
	assert.Error(t, run(context.Background(), func() {}, cfg, &stdout, &stderr))
}

func TestOpenJournal(t *testing.T) {
	logger := setupLogger(LogConfig{Level: "debug"}, &bytes.Buffer{})

	j, closeFn, err := openJournal(JournalConfig{}, logger)
	require.NoError(t, err)
	closeFn()
	assert.IsType(t, ylog.NoopLogger{}, j)

	j, closeFn, err = openJournal(JournalConfig{Path: filepath.Join(t.TempDir(), "j.ylog"), Console: true}, logger)
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &ylog.MultiLogger{}, j)

	_, _, err = openJournal(JournalConfig{Path: filepath.Join(t.TempDir(), "no", "such", "dir.ylog")}, logger)
	assert.Error(t, err)
}
