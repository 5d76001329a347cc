// Package cache provides a small LRU cache used to memoize text measurements
// across frames.
package cache

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 512

// Stats is a snapshot of cache counters.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	HitRate   float64
}

// LRU is a fixed-capacity least-recently-used cache with hit and miss
// counters. LRU is safe for concurrent use.
type LRU[K comparable, V any] struct {
	capacity int
	entries  *lru.Cache[K, V]

	hits, misses, evictions atomic.Uint64
}

// New creates an LRU holding at most capacity entries.
// If capacity <= 0, DefaultCapacity is used.
func New[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	// lru.New only fails for a non-positive size.
	entries, _ := lru.New[K, V](capacity)
	return &LRU[K, V]{capacity: capacity, entries: entries}
}

// Get returns the value for key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	v, ok := c.entries.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// Set stores value under key, evicting the least recently used entry when full.
func (c *LRU[K, V]) Set(key K, value V) {
	if c.entries.Add(key, value) {
		c.evictions.Add(1)
	}
}

// GetOrCreate returns the cached value or stores the result of create.
// Values for which create returns an error are not cached.
func (c *LRU[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := create()
	if err != nil {
		return v, err
	}
	c.Set(key, v)
	return v, nil
}

// Delete removes key. It reports whether the key was present.
func (c *LRU[K, V]) Delete(key K) bool { return c.entries.Remove(key) }

// Clear removes all entries. Counters are kept.
func (c *LRU[K, V]) Clear() { c.entries.Purge() }

// Len returns the number of entries.
func (c *LRU[K, V]) Len() int { return c.entries.Len() }

// Capacity returns the maximum number of entries.
func (c *LRU[K, V]) Capacity() int { return c.capacity }

// Stats returns current counters.
func (c *LRU[K, V]) Stats() Stats {
	hits, misses := c.hits.Load(), c.misses.Load()
	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}
	return Stats{
		Len:       c.entries.Len(),
		Capacity:  c.capacity,
		Hits:      hits,
		Misses:    misses,
		Evictions: c.evictions.Load(),
		HitRate:   rate,
	}
}
