package ttlcache

import (
	"container/list"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrymomot/clientkit/pkg/clock"
)

// Config defines the cache limits. Both fields are required.
type Config struct {
	// Capacity is the maximum number of resident entries.
	Capacity int `env:"CACHE_CAPACITY" envDefault:"100"`
	// DefaultTTL is applied by Set and by SetWithTTL when given a
	// non-positive duration.
	DefaultTTL time.Duration `env:"CACHE_DEFAULT_TTL" envDefault:"5m"`
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.DefaultTTL <= 0 {
		return fmt.Errorf("%w: default TTL must be positive, got %v", ErrInvalidConfig, c.DefaultTTL)
	}
	return nil
}

type entry[K comparable, V any] struct {
	key        K
	value      V
	insertedAt time.Time
	ttl        time.Duration
}

func (e *entry[K, V]) expired(now time.Time) bool {
	return now.Sub(e.insertedAt) > e.ttl
}

// Cache is a thread-safe key/value store with per-entry TTL and a fixed
// capacity. When full, inserting a new key evicts the earliest-inserted
// resident entry. Reads never promote an entry, so eviction order is FIFO
// by insertion, not LRU; see the package documentation for the rationale.
//
// Expired entries are removed lazily, on the read that discovers them.
// There is no background sweeper.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*list.Element
	queue   *list.List // front = earliest inserted
	config  Config
	clock   clock.Clock
	metrics Metrics
	onEvict func(key K, value V)
}

// New creates a cache with the given limits. It returns ErrInvalidConfig
// when the capacity or default TTL is not positive.
func New[K comparable, V any](cfg Config, opts ...Option[K, V]) (*Cache[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	c := &Cache[K, V]{
		entries: make(map[K]*list.Element),
		queue:   list.New(),
		config:  cfg,
		clock:   clock.System(),
		metrics: NoopMetrics{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Set stores value under key with the default TTL.
func (c *Cache[K, V]) Set(key K, value V) {
	c.SetWithTTL(key, value, 0)
}

// SetWithTTL stores value under key, expiring ttl after insertion. A
// non-positive ttl falls back to the configured default. Storing a new key
// at capacity first evicts the earliest-inserted entry. Re-setting a
// resident key refreshes its value and expiry in place without changing its
// position in the eviction order.
func (c *Cache[K, V]) SetWithTTL(key K, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.config.DefaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()

	if elem, ok := c.entries[key]; ok {
		e := elem.Value.(*entry[K, V])
		e.value = value
		e.insertedAt = now
		e.ttl = ttl
		return
	}

	if c.queue.Len() >= c.config.Capacity {
		c.evictOldestLocked()
	}

	e := &entry[K, V]{key: key, value: value, insertedAt: now, ttl: ttl}
	c.entries[key] = c.queue.PushBack(e)
}

// Get returns the value stored under key. An entry past its TTL is removed
// and reported as absent. A hit does not refresh the entry's insertion
// position or expiry.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		c.metrics.Miss()
		var zero V
		return zero, false
	}

	e := elem.Value.(*entry[K, V])
	if e.expired(c.clock.Now()) {
		c.removeLocked(elem, EvictReasonExpired)
		c.metrics.Miss()
		var zero V
		return zero, false
	}

	c.metrics.Hit()
	return e.value, true
}

// Has reports whether key holds a live entry. Like Get, it removes an
// expired entry it encounters.
func (c *Cache[K, V]) Has(key K) bool {
	_, ok := c.Get(key)
	return ok
}

// Delete removes key and reports whether it was resident.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return false
	}
	c.removeLocked(elem, EvictReasonDeleted)
	return true
}

// Clear drops every entry unconditionally. The evict callback, if set, is
// invoked for each dropped entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.onEvict != nil {
		for elem := c.queue.Front(); elem != nil; elem = elem.Next() {
			e := elem.Value.(*entry[K, V])
			c.onEvict(e.key, e.value)
		}
	}

	c.entries = make(map[K]*list.Element)
	c.queue.Init()
}

// Len returns the number of resident entries. Entries past their TTL but
// not yet touched by a read are still counted; Len does not expire.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.Len()
}

// Must be called with mu held.
func (c *Cache[K, V]) evictOldestLocked() {
	if elem := c.queue.Front(); elem != nil {
		c.removeLocked(elem, EvictReasonCapacity)
	}
}

// Must be called with mu held.
func (c *Cache[K, V]) removeLocked(elem *list.Element, reason EvictReason) {
	e := elem.Value.(*entry[K, V])
	c.queue.Remove(elem)
	delete(c.entries, e.key)
	c.metrics.Evict(reason)

	if c.onEvict != nil {
		c.onEvict(e.key, e.value)
	}
}
