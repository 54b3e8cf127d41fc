package ident

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	c := NewCounter("user-")
	assert.Equal(t, "user-1", c.Next())
	assert.Equal(t, "user-2", c.Next())

	bare := NewCounter("")
	assert.Equal(t, "1", bare.Next())
}

func TestUUID(t *testing.T) {
	a := NewUUID()
	id := a.Next()

	canonical, ok := Parse(id)
	require.True(t, ok, "expected %q to parse as a UUID", id)
	assert.Equal(t, id, canonical)
	assert.NotEqual(t, id, a.Next())

	_, ok = Parse("not-a-uuid")
	assert.False(t, ok)
}

func TestAllocatorsUniqueUnderConcurrency(t *testing.T) {
	for name, alloc := range map[string]Allocator{
		"counter": NewCounter("u"),
		"uuid":    NewUUID(),
	} {
		t.Run(name, func(t *testing.T) {
			const workers, perWorker = 8, 200

			var mu sync.Mutex
			seen := make(map[string]struct{}, workers*perWorker)

			var wg sync.WaitGroup
			for w := 0; w < workers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for k := 0; k < perWorker; k++ {
						id := alloc.Next()
						mu.Lock()
						seen[id] = struct{}{}
						mu.Unlock()
					}
				}()
			}
			wg.Wait()

			assert.Len(t, seen, workers*perWorker)
		})
	}
}
