// Package commands implements the yplus-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/yandexplus/yplus-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Actor    *log.Actor
	Category *log.Category
	UserID   string
}

func (f ViewFilter) matches(event log.Event) bool {
	lf := log.Filter{Actor: f.Actor, Category: f.Category, UserID: f.UserID}
	return lf.Matches(event)
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [hub] ACTOR CATEGORY user
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [%s] %-4s %s", ts, event.Hub, event.Actor.String(), event.Category.String())
	if event.UserID != "" {
		fmt.Fprintf(w, " user:%s", shortenID(event.UserID))
	}
	fmt.Fprintln(w)

	switch {
	case event.Catalog != nil:
		fmt.Fprintf(w, "  #%d %s (%s)\n", event.Catalog.Index, event.Catalog.Name, event.Catalog.Kind)
	case event.Subscription != nil:
		fmt.Fprintf(w, "  %s, %d observers\n", event.Subscription.Action.String(), event.Subscription.Observers)
	case event.Delivery != nil:
		fmt.Fprintf(w, "  Commands: %d\n", event.Delivery.Size)
		if event.Delivery.Observers > 0 {
			fmt.Fprintf(w, "  Observers: %d\n", event.Delivery.Observers)
		}
	case event.Execution != nil:
		formatExecutionDetails(w, event.Execution)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenID returns the first 8 characters of a UUID-style user ID.
func shortenID(id string) string {
	if len(id) > 8 && strings.Count(id, "-") == 4 {
		return id[:8]
	}
	return id
}

func formatExecutionDetails(w io.Writer, ex *log.ExecutionEvent) {
	fmt.Fprintf(w, "  #%d %s (%s)\n", ex.Index, ex.Name, ex.Kind)
	if ex.Output != "" {
		fmt.Fprintf(w, "  Output: %s\n", ex.Output)
	}
	if ex.Duration > 0 {
		fmt.Fprintf(w, "  Duration: %s\n", formatDuration(ex.Duration))
	}
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
	if err.Index != nil {
		fmt.Fprintf(w, "  Index: %d\n", *err.Index)
	}
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// ParseActorFlag parses an actor string from a command-line flag (case-insensitive).
func ParseActorFlag(s string) (log.Actor, error) {
	switch strings.ToLower(s) {
	case "hub":
		return log.ActorHub, nil
	case "user":
		return log.ActorUser, nil
	default:
		return 0, fmt.Errorf("invalid actor: %s (must be hub or user)", s)
	}
}

// ParseCategoryFlag parses a category string from a command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	c, ok := log.ParseCategory(strings.ToUpper(s))
	if !ok {
		return 0, fmt.Errorf("invalid category: %s (must be catalog, subscription, delivery, execution, or error)", s)
	}
	return c, nil
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		if !filter.matches(event) {
			continue
		}

		formatEvent(output, event)
	}

	return nil
}
