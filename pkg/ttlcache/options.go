package ttlcache

import "github.com/dmitrymomot/clientkit/pkg/clock"

// Option configures a Cache at construction time.
type Option[K comparable, V any] func(*Cache[K, V])

// WithClock substitutes the time source, which tests use to simulate
// expiry without sleeping. Nil clocks are ignored.
func WithClock[K comparable, V any](c clock.Clock) Option[K, V] {
	return func(cache *Cache[K, V]) {
		if c != nil {
			cache.clock = c
		}
	}
}

// WithMetrics attaches a metrics recorder. Nil recorders are ignored,
// leaving the no-op default in place.
func WithMetrics[K comparable, V any](m Metrics) Option[K, V] {
	return func(cache *Cache[K, V]) {
		if m != nil {
			cache.metrics = m
		}
	}
}

// WithEvictCallback registers fn to run for every entry leaving the cache,
// whatever the reason. Useful for releasing resources held by values.
// The callback runs with the cache lock held; it must not call back into
// the cache.
func WithEvictCallback[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(cache *Cache[K, V]) {
		cache.onEvict = fn
	}
}
