package cache

import (
	"sync"
	"time"
)

// Clock returns the current time. Tests replace it to move TTL windows deterministically.
type Clock func() time.Time

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// TTL is a read-through snapshot cache: an entry is served until ttl has elapsed since it was stored.
type TTL[K comparable, V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     Clock
	entries map[K]entry[V]
}

// NewTTL builds a cache. A nil clock means time.Now; a ttl <= 0 disables caching.
func NewTTL[K comparable, V any](ttl time.Duration, clock Clock) *TTL[K, V] {
	if clock == nil {
		clock = time.Now
	}
	return &TTL[K, V]{
		ttl:     ttl,
		now:     clock,
		entries: make(map[K]entry[V]),
	}
}

func (c *TTL[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		return zero, false
	}
	return e.value, true
}

func (c *TTL[K, V]) Set(key K, value V) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, storedAt: c.now()}
}

func (c *TTL[K, V]) Delete(keys ...K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
}

func (c *TTL[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]entry[V])
}
