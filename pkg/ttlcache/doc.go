// Package ttlcache provides a generic, thread-safe, bounded key/value cache
// with per-entry time-to-live expiration.
//
// The cache holds at most Config.Capacity entries. Inserting a new key at
// capacity evicts exactly one resident entry: the one inserted earliest.
// Reads never promote an entry and re-setting a resident key does not move
// it, so the eviction order is strictly first-in-first-out by insertion.
// This FIFO contract is deliberate — it keeps eviction independent of access
// patterns and cheap to reason about. If your workload needs recency-based
// eviction, use an LRU cache instead; do not expect this package to grow one.
//
// Expiration is lazy: an entry past its TTL is removed by the read that
// discovers it (Get or Has). There is no background sweeper, so Len may
// count stale entries that nothing has read since they expired.
//
// # Usage
//
//	c, err := ttlcache.New[string, *Profile](ttlcache.Config{
//	    Capacity:   500,
//	    DefaultTTL: 5 * time.Minute,
//	})
//	if err != nil {
//	    return err
//	}
//
//	c.Set("user:42", profile)                        // default TTL
//	c.SetWithTTL("token:abc", tok, 30*time.Second)   // per-entry TTL
//
//	if p, ok := c.Get("user:42"); ok {
//	    // fresh hit
//	}
//
// Construct one cache per logical domain and pass it down explicitly; the
// package intentionally exposes no shared global instance. An application
// that wants a process-wide cache creates it once at its composition root.
//
// Configuration can come from the environment through the config package:
//
//	var cfg ttlcache.Config
//	if err := config.Load(&cfg); err != nil { … }
//	c, err := ttlcache.New[string, []byte](cfg)
//
// # Observability
//
// The cache reports hits, misses, and evictions (with a reason) to an
// optional Metrics recorder. The default recorder discards everything; the
// prom subpackage adapts the interface to Prometheus.
//
// # Error Handling
//
// Only construction can fail (ErrInvalidConfig for a non-positive capacity
// or default TTL). Every operation on a constructed cache succeeds; a miss
// or an expired entry is reported through the boolean result, never an
// error.
package ttlcache
