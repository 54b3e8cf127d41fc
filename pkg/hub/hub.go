package hub

import (
	"errors"
	"io"
	"log/slog"
	"reflect"
	"slices"
	"sync"
	"time"

	"github.com/yandexplus/yplus-go/pkg/command"
	"github.com/yandexplus/yplus-go/pkg/device"
	"github.com/yandexplus/yplus-go/pkg/log"
)

// DefaultName is the name of a hub created without WithName.
const DefaultName = "YandexPlus"

// Hub errors.
var (
	ErrNilCommand = errors.New("nil command")
)

// Observer receives catalog snapshots from a hub. Observers are matched by
// interface equality, so implementations must have comparable dynamic types;
// pointer receivers are the usual choice.
type Observer interface {
	// Update is called with a snapshot of the catalog. The slice belongs to
	// the observer.
	Update(catalog []command.Command)
}

// Identified is implemented by observers that have an identity to report
// in logs and the journal.
type Identified interface {
	ID() string
}

// Hub is the subject that owns the devices and the command catalog.
type Hub struct {
	mu sync.RWMutex

	name    string
	devices *device.Set

	// Attachment order is notification order.
	observers []Observer

	catalog []command.Command

	logger  *slog.Logger
	journal log.Logger
	now     func() time.Time
}

// Option configures a Hub.
type Option func(*Hub)

// WithName sets the hub name used in logs and the journal.
func WithName(name string) Option {
	return func(h *Hub) {
		if name != "" {
			h.name = name
		}
	}
}

// WithLogger sets the operational logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Hub) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithJournal sets the event journal.
func WithJournal(journal log.Logger) Option {
	return func(h *Hub) {
		h.journal = log.OrNoop(journal)
	}
}

// WithClock sets the time source for journal timestamps.
func WithClock(now func() time.Time) Option {
	return func(h *Hub) {
		if now != nil {
			h.now = now
		}
	}
}

// New creates a hub with one device of every kind and an empty catalog.
func New(opts ...Option) *Hub {
	h := &Hub{
		name:    DefaultName,
		devices: device.NewSet(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		journal: log.NoopLogger{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Name returns the hub name.
func (h *Hub) Name() string {
	return h.name
}

// Devices returns the hub's devices.
func (h *Hub) Devices() *device.Set {
	return h.devices
}

// Logger returns the hub's operational logger.
func (h *Hub) Logger() *slog.Logger {
	return h.logger
}

// Journal returns the hub's event journal.
func (h *Hub) Journal() log.Logger {
	return h.journal
}

// AddCommand binds cmd to the hub's device of its kind and appends it to the
// catalog. Observers are not notified.
func (h *Hub) AddCommand(cmd command.Command) error {
	if cmd == nil {
		return ErrNilCommand
	}

	cmd.Bind(h.devices)

	h.mu.Lock()
	index := len(h.catalog)
	h.catalog = append(h.catalog, cmd)
	h.mu.Unlock()

	h.logger.Info("Hub receives command", "hub", h.name, "index", index, "command", cmd.Name(), "kind", cmd.Kind().String())
	h.journal.Log(log.Event{
		Timestamp: h.now(),
		Hub:       h.name,
		Actor:     log.ActorHub,
		Category:  log.CategoryCatalog,
		Catalog: &log.CatalogEvent{
			Index: index,
			Name:  cmd.Name(),
			Kind:  cmd.Kind().String(),
		},
	})
	return nil
}

// AddCommands adds commands in order, stopping at the first error.
func (h *Hub) AddCommands(cmds ...command.Command) error {
	for _, cmd := range cmds {
		if err := h.AddCommand(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Catalog returns a copy of the catalog in insertion order.
func (h *Hub) Catalog() []command.Command {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.catalog)
}

// Len returns the number of commands in the catalog.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.catalog)
}

// Attach adds o to the end of the observer list. Attaching an observer that
// is already attached does nothing. Observers of a non-comparable type, such
// as func adapters, are ignored.
func (h *Hub) Attach(o Observer) {
	if o == nil {
		return
	}
	if !isComparable(o) {
		h.logger.Warn("Ignoring observer of non-comparable type", "hub", h.name, "type", reflect.TypeOf(o).String())
		return
	}

	h.mu.Lock()
	if slices.Contains(h.observers, o) {
		h.mu.Unlock()
		return
	}
	h.observers = append(h.observers, o)
	count := len(h.observers)
	h.mu.Unlock()

	h.logSubscription(o, log.SubscriptionAttach, count)
}

// Detach removes o from the observer list. Detaching a non-member does
// nothing.
func (h *Hub) Detach(o Observer) {
	if o == nil || !isComparable(o) {
		return
	}

	h.mu.Lock()
	i := slices.Index(h.observers, o)
	if i < 0 {
		h.mu.Unlock()
		return
	}
	h.observers = slices.Delete(h.observers, i, i+1)
	count := len(h.observers)
	h.mu.Unlock()

	h.logSubscription(o, log.SubscriptionDetach, count)
}

// Observers returns the attached observers in attachment order.
func (h *Hub) Observers() []Observer {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.observers)
}

// Notify pushes the whole catalog to every attached observer in attachment
// order. Each observer gets its own copy of the catalog.
func (h *Hub) Notify() {
	// Snapshot under lock, deliver outside it so observers can call back.
	h.mu.RLock()
	catalog := slices.Clone(h.catalog)
	observers := slices.Clone(h.observers)
	h.mu.RUnlock()

	h.logger.Info("Notifying observers", "hub", h.name, "commands", len(catalog), "observers", len(observers))
	h.journal.Log(log.Event{
		Timestamp: h.now(),
		Hub:       h.name,
		Actor:     log.ActorHub,
		Category:  log.CategoryDelivery,
		Delivery:  &log.DeliveryEvent{Size: len(catalog), Observers: len(observers)},
	})

	for _, o := range observers {
		o.Update(slices.Clone(catalog))
	}
}

func (h *Hub) logSubscription(o Observer, action log.SubscriptionAction, count int) {
	id := observerID(o)
	h.logger.Debug("Observer "+action.String(), "hub", h.name, "observer", id, "observers", count)
	h.journal.Log(log.Event{
		Timestamp:    h.now(),
		Hub:          h.name,
		Actor:        log.ActorHub,
		Category:     log.CategorySubscription,
		UserID:       id,
		Subscription: &log.SubscriptionEvent{Action: action, Observers: count},
	})
}

func observerID(o Observer) string {
	if id, ok := o.(Identified); ok {
		return id.ID()
	}
	return ""
}

// isComparable reports whether o can be compared with ==.
func isComparable(o Observer) bool {
	return reflect.TypeOf(o).Comparable()
}
