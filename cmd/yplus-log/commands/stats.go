package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/yandexplus/yplus-go/pkg/log"
)

// Stats holds aggregate statistics about a journal.
type Stats struct {
	TotalEvents      int
	EventsByActor    map[log.Actor]int
	EventsByCategory map[log.Category]int
	Users            map[string]*UserStats
	Commands         map[string]int
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// UserStats holds statistics for a single user.
type UserStats struct {
	FirstSeen  time.Time
	LastSeen   time.Time
	Events     int
	Executions int
	Rejected   int
}

// RunStats analyzes the journal and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByActor:    make(map[log.Actor]int),
		EventsByCategory: make(map[log.Category]int),
		Users:            make(map[string]*UserStats),
		Commands:         make(map[string]int),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}

	printStats(w, stats)
	return nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByActor[event.Actor]++
	s.EventsByCategory[event.Category]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	if event.Execution != nil {
		s.Commands[event.Execution.Name]++
	}
	if event.Error != nil {
		s.Errors++
	}

	if event.UserID == "" {
		return
	}
	u, ok := s.Users[event.UserID]
	if !ok {
		u = &UserStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
		s.Users[event.UserID] = u
	}
	u.Events++
	if event.Timestamp.After(u.LastSeen) {
		u.LastSeen = event.Timestamp
	}
	if event.Execution != nil {
		u.Executions++
	}
	if event.Error != nil {
		u.Rejected++
	}
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== YandexPlus Hub Journal Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Actor:")
	for _, a := range []log.Actor{log.ActorHub, log.ActorUser} {
		if count := stats.EventsByActor[a]; count > 0 {
			fmt.Fprintf(w, "  %-14s %d\n", a.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for c := log.CategoryCatalog; c <= log.CategoryError; c++ {
		if count := stats.EventsByCategory[c]; count > 0 {
			fmt.Fprintf(w, "  %-14s %d\n", c.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(stats.Commands) > 0 {
		names := make([]string, 0, len(stats.Commands))
		for name := range stats.Commands {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintln(w, "Executed Commands:")
		for _, name := range names {
			fmt.Fprintf(w, "  %-40s %d\n", name, stats.Commands[name])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Users: %d\n", len(stats.Users))
	if len(stats.Users) > 0 {
		type userInfo struct {
			id    string
			stats *UserStats
		}
		users := make([]userInfo, 0, len(stats.Users))
		for id, us := range stats.Users {
			users = append(users, userInfo{id, us})
		}
		sort.Slice(users, func(i, j int) bool {
			if users[i].stats.FirstSeen.Equal(users[j].stats.FirstSeen) {
				return users[i].id < users[j].id
			}
			return users[i].stats.FirstSeen.Before(users[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, u := range users {
			duration := u.stats.LastSeen.Sub(u.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortenID(u.id), u.stats.Events, duration)
			if u.stats.Executions > 0 {
				fmt.Fprintf(w, "           Executed: %d\n", u.stats.Executions)
			}
			if u.stats.Rejected > 0 {
				fmt.Fprintf(w, "           Rejected: %d\n", u.stats.Rejected)
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
