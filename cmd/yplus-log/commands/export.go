package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/yandexplus/yplus-go/pkg/log"
)

// RunExport exports the journal to the specified format.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

var csvHeader = []string{"timestamp", "hub", "actor", "category", "user_id", "index", "command", "kind", "detail"}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		var index, name, kind, detail string
		switch {
		case event.Catalog != nil:
			index = strconv.Itoa(event.Catalog.Index)
			name, kind = event.Catalog.Name, event.Catalog.Kind
		case event.Subscription != nil:
			detail = event.Subscription.Action.String()
		case event.Delivery != nil:
			detail = strconv.Itoa(event.Delivery.Size)
		case event.Execution != nil:
			index = strconv.Itoa(event.Execution.Index)
			name, kind = event.Execution.Name, event.Execution.Kind
			detail = event.Execution.Output
		case event.Error != nil:
			if event.Error.Index != nil {
				index = strconv.Itoa(*event.Error.Index)
			}
			detail = event.Error.Message
		}

		row := []string{
			event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			event.Hub,
			event.Actor.String(),
			event.Category.String(),
			event.UserID,
			index,
			name,
			kind,
			detail,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
