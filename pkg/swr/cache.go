// Package swr is a small stale-while-revalidate fetch cache. Entries carry
// explicit expiry timestamps checked on read against an injected clock, so
// eviction is deterministic and testable without real delays.
package swr

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/metrics"
)

// ErrMiss is returned by Get when no entry exists for the key.
var ErrMiss = errors.New("cache miss")

// ErrStale is returned by Get alongside the stale value when the entry has
// expired; callers may render it while revalidating.
var ErrStale = errors.New("cache entry stale")

type entry[T any] struct {
	value     T
	size      int64
	fetchedAt time.Time
	expiresAt time.Time
}

// Cache maps string keys to values with a fixed TTL, a bounded entry
// count, and an optional byte budget (oldest entries are evicted first).
type Cache[T any] struct {
	mu         sync.Mutex
	entries    map[string]entry[T]
	ttl        time.Duration
	maxEntries int
	maxBytes   int64
	bytes      int64
	clock      Clock
	group      singleflight.Group
}

// New builds a cache. maxEntries <= 0 means unbounded; a nil clock falls
// back to the system clock.
func New[T any](ttl time.Duration, maxEntries int, clock Clock) *Cache[T] {
	if clock == nil {
		clock = SystemClock()
	}
	return &Cache[T]{
		entries:    make(map[string]entry[T]),
		ttl:        ttl,
		maxEntries: maxEntries,
		clock:      clock,
	}
}

// Get returns the cached value for key. A fresh entry returns (value, nil);
// an expired one returns (value, ErrStale); a missing one returns the zero
// value and ErrMiss.
func (c *Cache[T]) Get(key string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		metrics.CacheMisses.Inc()
		var zero T
		return zero, ErrMiss
	}
	if c.clock.Now().After(e.expiresAt) {
		metrics.CacheStale.Inc()
		return e.value, ErrStale
	}
	metrics.CacheHits.Inc()
	return e.value, nil
}

// SetMaxBytes bounds the total JSON-encoded size of cached values; 0
// disables the cap. The budget is enforced immediately and on every Put.
func (c *Cache[T]) SetMaxBytes(n int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxBytes = n
	c.enforceCapLocked()
}

// Put stores value under key with a fresh expiry.
func (c *Cache[T]) Put(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if old, ok := c.entries[key]; ok {
		c.bytes -= old.size
	}
	now := c.clock.Now()
	e := entry[T]{value: value, size: sizeOf(value), fetchedAt: now, expiresAt: now.Add(c.ttl)}
	c.entries[key] = e
	c.bytes += e.size
	c.enforceCapLocked()
}

// GetOrFetch returns a fresh cached value, or runs loader to revalidate.
// Concurrent fetches for the same key are coalesced into one loader call.
// A loader failure is returned to the caller; any stale entry is kept so a
// subsequent Get can still serve it.
func (c *Cache[T]) GetOrFetch(ctx context.Context, key string, loader func(context.Context) (T, error)) (T, error) {
	if v, err := c.Get(key); err == nil {
		return v, nil
	}
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		val, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		c.Put(key, val)
		return val, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Invalidate drops the entry for key if present.
func (c *Cache[T]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(key)
}

// Len returns the number of entries, expired ones included.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Sweep removes all expired entries and returns how many were dropped.
// The janitor calls this on a schedule; tests call it directly.
func (c *Cache[T]) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.clock.Now()
	dropped := 0
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			c.removeLocked(k)
			dropped++
		}
	}
	if dropped > 0 {
		metrics.CacheEvictions.Add(float64(dropped))
	}
	return dropped
}

// removeLocked deletes the entry for key and releases its byte budget.
// Caller holds c.mu.
func (c *Cache[T]) removeLocked(key string) {
	if e, ok := c.entries[key]; ok {
		c.bytes -= e.size
		delete(c.entries, key)
	}
}

// overBudgetLocked reports whether either the entry-count cap or the byte
// budget is exceeded. Caller holds c.mu.
func (c *Cache[T]) overBudgetLocked() bool {
	if c.maxEntries > 0 && len(c.entries) > c.maxEntries {
		return true
	}
	return c.maxBytes > 0 && c.bytes > c.maxBytes
}

// enforceCapLocked evicts oldest-fetched entries until the cache fits
// maxEntries and maxBytes. Caller holds c.mu.
func (c *Cache[T]) enforceCapLocked() {
	for len(c.entries) > 0 && c.overBudgetLocked() {
		oldestKey := ""
		var oldest time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.fetchedAt.Before(oldest) {
				oldestKey = k
				oldest = e.fetchedAt
			}
		}
		c.removeLocked(oldestKey)
		metrics.CacheEvictions.Inc()
	}
}

// sizeOf approximates a value's footprint by its JSON encoding, the same
// shape cached values travel over the wire in.
func sizeOf[T any](v T) int64 {
	b, err := json.Marshal(v)
	if err != nil {
		return 0
	}
	return int64(len(b))
}
