package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yandexplus/yplus-go/pkg/log"
)

// createTestJournal writes events to a fresh journal file and returns its path.
func createTestJournal(t *testing.T, events []log.Event) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.ylog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func TestExportToJSONL(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)
	events := []log.Event{
		{
			Timestamp: ts,
			Hub:       "YandexPlus",
			Actor:     log.ActorHub,
			Category:  log.CategoryCatalog,
			Catalog:   &log.CatalogEvent{Index: 0, Name: "Turn socket on", Kind: "socket"},
		},
		{
			Timestamp: ts.Add(time.Second),
			Hub:       "YandexPlus",
			Actor:     log.ActorUser,
			Category:  log.CategoryExecution,
			UserID:    "user-1",
			Execution: &log.ExecutionEvent{Index: 0, Name: "Turn socket on", Kind: "socket", Output: "on"},
		},
	}

	path := createTestJournal(t, events)

	outPath := filepath.Join(t.TempDir(), "out.jsonl")
	if err := RunExport(path, "jsonl", outPath); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var second map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("failed to parse line 2: %v", err)
	}
	if second["UserID"] != "user-1" {
		t.Errorf("expected UserID user-1, got %v", second["UserID"])
	}
	exec, ok := second["Execution"].(map[string]any)
	if !ok {
		t.Fatalf("expected Execution object, got %v", second["Execution"])
	}
	if exec["Output"] != "on" {
		t.Errorf("expected output on, got %v", exec["Output"])
	}
}

func TestExportToCSV(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 0, time.UTC)
	idx := 20
	events := []log.Event{
		{
			Timestamp: ts,
			Hub:       "YandexPlus",
			Actor:     log.ActorUser,
			Category:  log.CategoryExecution,
			UserID:    "user-1",
			Execution: &log.ExecutionEvent{Index: 17, Name: "Turn music center off", Kind: "music center", Output: "off, no song"},
		},
		{
			Timestamp: ts,
			Hub:       "YandexPlus",
			Actor:     log.ActorUser,
			Category:  log.CategoryError,
			UserID:    "user-1",
			Error:     &log.ErrorEventData{Message: "no such command", Context: "run", Index: &idx},
		},
	}

	path := createTestJournal(t, events)

	outPath := filepath.Join(t.TempDir(), "out.csv")
	if err := RunExport(path, "csv", outPath); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "timestamp,hub,actor,category,user_id,index,command,kind,detail" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "USER,EXECUTION,user-1,17,Turn music center off,music center") {
		t.Errorf("unexpected execution row: %s", lines[1])
	}
	if !strings.HasSuffix(lines[2], "ERROR,user-1,20,,,no such command") {
		t.Errorf("unexpected error row: %s", lines[2])
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestJournal(t, []log.Event{
		{Timestamp: time.Now(), Category: log.CategoryDelivery, Delivery: &log.DeliveryEvent{Size: 3}},
	})
	outPath := filepath.Join(t.TempDir(), "out.xml")

	err := RunExport(path, "xml", outPath)
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("expected 'unknown format' error, got: %v", err)
	}
}

func TestExportMissingFile(t *testing.T) {
	err := RunExport(filepath.Join(t.TempDir(), "missing.ylog"), "jsonl", "")
	if err == nil {
		t.Fatal("expected error for missing journal")
	}
}
