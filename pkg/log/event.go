package log

import (
	"time"
)

// Event is one journal entry. CBOR encoding uses integer keys.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// Hub is the name of the hub the event belongs to.
	Hub string `cbor:"2,keyasint"`

	// Actor is the component that recorded the event.
	Actor Actor `cbor:"3,keyasint"`

	// Category classifies the event and selects the payload.
	Category Category `cbor:"4,keyasint"`

	// UserID identifies the user involved, if any.
	UserID string `cbor:"5,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Catalog      *CatalogEvent      `cbor:"10,keyasint,omitempty"`
	Subscription *SubscriptionEvent `cbor:"11,keyasint,omitempty"`
	Delivery     *DeliveryEvent     `cbor:"12,keyasint,omitempty"`
	Execution    *ExecutionEvent    `cbor:"13,keyasint,omitempty"`
	Error        *ErrorEventData    `cbor:"14,keyasint,omitempty"`
}

// Actor is the component that recorded an event.
type Actor uint8

const (
	// ActorHub marks events recorded by the hub.
	ActorHub Actor = 0
	// ActorUser marks events recorded by a user.
	ActorUser Actor = 1
)

// String returns the actor name.
func (a Actor) String() string {
	switch a {
	case ActorHub:
		return "HUB"
	case ActorUser:
		return "USER"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryCatalog indicates a command was added to the catalog.
	CategoryCatalog Category = 0
	// CategorySubscription indicates an observer attached or detached.
	CategorySubscription Category = 1
	// CategoryDelivery indicates a catalog snapshot was pushed or received.
	CategoryDelivery Category = 2
	// CategoryExecution indicates a command was executed.
	CategoryExecution Category = 3
	// CategoryError indicates a rejected request.
	CategoryError Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryCatalog:
		return "CATALOG"
	case CategorySubscription:
		return "SUBSCRIPTION"
	case CategoryDelivery:
		return "DELIVERY"
	case CategoryExecution:
		return "EXECUTION"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory parses a category name as printed by String.
func ParseCategory(s string) (Category, bool) {
	for c := CategoryCatalog; c <= CategoryError; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// CatalogEvent records a command added to the catalog.
type CatalogEvent struct {
	// Index is the position of the command in the catalog.
	Index int `cbor:"1,keyasint"`

	// Name is the command name.
	Name string `cbor:"2,keyasint"`

	// Kind is the device kind the command is bound to.
	Kind string `cbor:"3,keyasint"`
}

// SubscriptionEvent records an observer attaching or detaching.
type SubscriptionEvent struct {
	// Action is attach or detach.
	Action SubscriptionAction `cbor:"1,keyasint"`

	// Observers is the number of attached observers after the change.
	Observers int `cbor:"2,keyasint"`
}

// SubscriptionAction distinguishes attach from detach.
type SubscriptionAction uint8

const (
	// SubscriptionAttach indicates an observer joined.
	SubscriptionAttach SubscriptionAction = 0
	// SubscriptionDetach indicates an observer left.
	SubscriptionDetach SubscriptionAction = 1
)

// String returns the action name.
func (a SubscriptionAction) String() string {
	switch a {
	case SubscriptionAttach:
		return "ATTACH"
	case SubscriptionDetach:
		return "DETACH"
	default:
		return "UNKNOWN"
	}
}

// DeliveryEvent records a catalog snapshot delivery.
type DeliveryEvent struct {
	// Size is the number of commands in the snapshot.
	Size int `cbor:"1,keyasint"`

	// Observers is the number of observers notified (hub side only).
	Observers int `cbor:"2,keyasint,omitempty"`
}

// ExecutionEvent records a command run by a user.
type ExecutionEvent struct {
	// Index is the position of the command in the user's snapshot.
	Index int `cbor:"1,keyasint"`

	// Name is the command name.
	Name string `cbor:"2,keyasint"`

	// Kind is the device kind the command acted on.
	Kind string `cbor:"3,keyasint"`

	// Output is the device report returned by the command.
	Output string `cbor:"4,keyasint,omitempty"`

	// Duration is the time spent executing. Stored as nanoseconds.
	Duration time.Duration `cbor:"5,keyasint,omitempty"`
}

// ErrorEventData records a rejected request.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes the operation that was attempted.
	Context string `cbor:"2,keyasint,omitempty"`

	// Index is the requested command index, if the request had one.
	Index *int `cbor:"3,keyasint,omitempty"`
}
