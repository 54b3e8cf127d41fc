package user

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/yandexplus/yplus-go/pkg/command"
	"github.com/yandexplus/yplus-go/pkg/hub"
	"github.com/yandexplus/yplus-go/pkg/ident"
	"github.com/yandexplus/yplus-go/pkg/log"
)

// User errors.
var (
	ErrNoSuchCommand = errors.New("command does not exist")
)

// Subject is what a user subscribes to.
type Subject interface {
	Attach(o hub.Observer)
	Detach(o hub.Observer)
}

// Subjects may additionally provide a name and the sinks users should log to.
type (
	named     interface{ Name() string }
	logged    interface{ Logger() *slog.Logger }
	journaled interface{ Journal() log.Logger }
)

// Entry is one line of a user's command listing.
type Entry struct {
	Index int
	Name  string
}

// String formats the entry as "index: name".
func (e Entry) String() string {
	return strconv.Itoa(e.Index) + ": " + e.Name
}

// User is an observer holding the last catalog snapshot it received.
type User struct {
	id      string
	subject Subject
	hubName string

	mu       sync.RWMutex
	snapshot []command.Command
	closed   bool

	ids     ident.Allocator
	logger  *slog.Logger
	journal log.Logger
	now     func() time.Time
}

// Option configures a User.
type Option func(*User)

// WithIDs sets the allocator the user's identifier is taken from.
func WithIDs(ids ident.Allocator) Option {
	return func(u *User) {
		if ids != nil {
			u.ids = ids
		}
	}
}

// WithLogger sets the operational logger. By default the subject's logger is
// used if it has one.
func WithLogger(logger *slog.Logger) Option {
	return func(u *User) {
		if logger != nil {
			u.logger = logger
		}
	}
}

// WithJournal sets the event journal. By default the subject's journal is
// used if it has one.
func WithJournal(journal log.Logger) Option {
	return func(u *User) {
		u.journal = log.OrNoop(journal)
	}
}

// WithClock sets the time source for journal timestamps and durations.
func WithClock(now func() time.Time) Option {
	return func(u *User) {
		if now != nil {
			u.now = now
		}
	}
}

// New creates a user with a fresh identifier and attaches it to subject.
func New(subject Subject, opts ...Option) *User {
	u := &User{
		subject: subject,
		ids:     ident.Default,
		now:     time.Now,
	}
	if n, ok := subject.(named); ok {
		u.hubName = n.Name()
	}
	if l, ok := subject.(logged); ok {
		u.logger = l.Logger()
	}
	if j, ok := subject.(journaled); ok {
		u.journal = j.Journal()
	}

	for _, opt := range opts {
		opt(u)
	}

	if u.logger == nil {
		u.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	u.journal = log.OrNoop(u.journal)
	u.id = u.ids.Next()

	u.logger.Info("User joins", "hub", u.hubName, "user", u.id)
	subject.Attach(u)
	return u
}

// ID returns the user's identifier.
func (u *User) ID() string {
	return u.id
}

// Update replaces the snapshot with a copy of catalog.
func (u *User) Update(catalog []command.Command) {
	u.mu.Lock()
	u.snapshot = slices.Clone(catalog)
	u.mu.Unlock()

	u.logger.Info("User receives software updates", "hub", u.hubName, "user", u.id, "commands", len(catalog))
	for i, cmd := range catalog {
		u.logger.Info("Adding command", "hub", u.hubName, "user", u.id, "index", i, "command", cmd.Name())
	}
	u.log(log.CategoryDelivery, func(e *log.Event) {
		e.Delivery = &log.DeliveryEvent{Size: len(catalog)}
	})
}

// Len returns the number of commands in the snapshot.
func (u *User) Len() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.snapshot)
}

// Snapshot returns a copy of the snapshot.
func (u *User) Snapshot() []command.Command {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return slices.Clone(u.snapshot)
}

// List returns the snapshot as numbered entries.
func (u *User) List() []Entry {
	u.mu.RLock()
	defer u.mu.RUnlock()

	entries := make([]Entry, len(u.snapshot))
	for i, cmd := range u.snapshot {
		entries[i] = Entry{Index: i, Name: cmd.Name()}
	}
	return entries
}

// Run executes the command at index in the snapshot. An index outside
// [0, Len()) returns ErrNoSuchCommand and runs nothing.
func (u *User) Run(ctx context.Context, index int) (command.Result, error) {
	u.mu.RLock()
	if index < 0 || index >= len(u.snapshot) {
		u.mu.RUnlock()
		u.logger.Warn("Command does not exist", "hub", u.hubName, "user", u.id, "index", index)
		u.logError(index, ErrNoSuchCommand)
		return command.Result{}, fmt.Errorf("command #%d: %w", index, ErrNoSuchCommand)
	}
	cmd := u.snapshot[index]
	u.mu.RUnlock()

	u.logger.Info("Running command", "hub", u.hubName, "user", u.id, "index", index, "command", cmd.Name())

	start := u.now()
	res, err := cmd.Execute(ctx)
	if err != nil {
		u.logger.Error("Command failed", "hub", u.hubName, "user", u.id, "index", index, "command", cmd.Name(), "error", err)
		u.logError(index, err)
		return res, fmt.Errorf("command #%d: %w", index, err)
	}
	elapsed := u.now().Sub(start)

	u.log(log.CategoryExecution, func(e *log.Event) {
		e.Execution = &log.ExecutionEvent{
			Index:    index,
			Name:     res.Command,
			Kind:     res.Kind.String(),
			Output:   res.Output,
			Duration: elapsed,
		}
	})
	return res, nil
}

// Close detaches the user from its subject. The snapshot is kept.
// Calling Close more than once has no further effect.
func (u *User) Close() {
	u.mu.Lock()
	if u.closed {
		u.mu.Unlock()
		return
	}
	u.closed = true
	u.mu.Unlock()

	u.subject.Detach(u)
	u.logger.Info("User leaves", "hub", u.hubName, "user", u.id)
}

// Closed reports whether Close has been called.
func (u *User) Closed() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.closed
}

func (u *User) logError(index int, err error) {
	u.log(log.CategoryError, func(e *log.Event) {
		e.Error = &log.ErrorEventData{Message: err.Error(), Context: "run", Index: &index}
	})
}

func (u *User) log(category log.Category, fill func(*log.Event)) {
	e := log.Event{
		Timestamp: u.now(),
		Hub:       u.hubName,
		Actor:     log.ActorUser,
		Category:  category,
		UserID:    u.id,
	}
	fill(&e)
	u.journal.Log(e)
}

var (
	_ hub.Observer   = (*User)(nil)
	_ hub.Identified = (*User)(nil)
	_ Subject        = (*hub.Hub)(nil)
)
