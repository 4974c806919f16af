// Package cache provides the time-based result cache used by the print
// query engine.
//
// Cache is the injected abstraction; Memory is a process-local map with
// absolute expiry read from an injected clock, and Noop disables caching.
// Entries are only ever invalidated by time. Expired entries are treated as
// absent, deleted when touched, and swept opportunistically every
// sweepEvery writes so that one-off keys do not accumulate.
package cache

import (
	"sync"
	"time"

	"github.com/tbourn/sejm-prints-backend/internal/sysutil"
)

// Cache stores values of type V under string keys for a limited time.
// Implementations must be safe for concurrent use.
type Cache[V any] interface {
	// Get returns the live value for key.
	Get(key string) (V, bool)
	// Set stores v under key until ttl elapses, replacing any previous entry.
	Set(key string, v V, ttl time.Duration)
	// Has reports whether a live entry exists for key.
	Has(key string) bool
}

const sweepEvery = 256

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Memory is an in-memory Cache. Concurrent writers for the same key are
// last-writer-wins.
type Memory[V any] struct {
	clock sysutil.Clock

	mu      sync.Mutex
	entries map[string]entry[V]
	writes  uint64
}

// NewMemory returns an empty Memory cache reading time from clock. A nil
// clock uses sysutil.SystemClock.
func NewMemory[V any](clock sysutil.Clock) *Memory[V] {
	if clock == nil {
		clock = sysutil.SystemClock
	}
	return &Memory[V]{clock: clock, entries: make(map[string]entry[V])}
}

// Get implements Cache.
func (m *Memory[V]) Get(key string) (V, bool) {
	now := m.clock.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if now.After(e.expiresAt) {
		delete(m.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Has implements Cache.
func (m *Memory[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set implements Cache. A non-positive ttl stores nothing.
func (m *Memory[V]) Set(key string, v V, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	now := m.clock.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Sweep before inserting so the new entry is never a candidate.
	m.writes++
	if m.writes >= sweepEvery {
		for k, e := range m.entries {
			if now.After(e.expiresAt) {
				delete(m.entries, k)
			}
		}
		m.writes = 0
	}
	m.entries[key] = entry[V]{value: v, expiresAt: now.Add(ttl)}
}

// Len returns the number of stored entries, live or not yet swept.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Noop is a Cache that never stores anything.
type Noop[V any] struct{}

// Get implements Cache.
func (Noop[V]) Get(string) (V, bool) {
	var zero V
	return zero, false
}

// Set implements Cache.
func (Noop[V]) Set(string, V, time.Duration) {}

// Has implements Cache.
func (Noop[V]) Has(string) bool { return false }
