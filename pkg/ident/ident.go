// Package ident allocates user identifiers.
//
// Two allocators are provided: random UUIDs, and a counter that produces
// "<prefix>1", "<prefix>2", ... Both are safe for concurrent use and never
// hand out the same identifier twice within a process.
package ident

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Allocator hands out unique identifiers.
type Allocator interface {
	Next() string
}

// Default is the process-wide allocator used when none is configured.
var Default Allocator = NewUUID()

// UUID allocates random (version 4) UUIDs.
type UUID struct{}

// NewUUID creates a UUID allocator.
func NewUUID() *UUID {
	return &UUID{}
}

// Next returns a new random UUID string.
func (*UUID) Next() string {
	return uuid.NewString()
}

// Counter allocates identifiers from a monotonically increasing counter.
type Counter struct {
	prefix string
	last   atomic.Uint64
}

// NewCounter creates a counter allocator. The first identifier is prefix+"1".
func NewCounter(prefix string) *Counter {
	return &Counter{prefix: prefix}
}

// Next returns the next identifier.
func (c *Counter) Next() string {
	return c.prefix + strconv.FormatUint(c.last.Add(1), 10)
}

// Parse reports whether s is a valid UUID, returning its canonical form.
func Parse(s string) (string, bool) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", false
	}
	return id.String(), true
}
