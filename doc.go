// Package clientkit is a suite of small runtime utilities for coordinating
// expensive or repeated client-side work: caching, request deduplication,
// throttling, batching, virtual-scroll windowing, and progressive reveal.
//
// Each concern lives in its own package under pkg/ and is importable on its
// own; the utilities never call into one another, they are siblings the
// application composes:
//
//   - pkg/ttlcache — bounded key/value cache with per-entry TTL and FIFO
//     eviction by insertion order
//   - pkg/window — pure index-range arithmetic for virtual scrolling
//   - pkg/singleflight — collapses concurrent identical operations into one
//     in-flight execution with a shared result handle
//   - pkg/throttle — leading/trailing rate limiting for hot callbacks
//   - pkg/batch — slice-at-a-time processing with bounded concurrency and
//     inter-slice yielding
//   - pkg/progressive — incrementally growing visible prefix of a loaded
//     collection
//
// pkg/loader shows the intended composition: a typed registry of resource
// loaders that coalesces concurrent loads and memoizes results in a
// ttlcache.
//
// Shared scaffolding: pkg/clock (injectable time source with a
// deterministic mock), pkg/async (generic futures), pkg/config (typed env
// configuration), pkg/logger (slog factory). pkg/ttlcache/prom exports
// cache metrics to Prometheus.
//
// Typical wiring at a composition root:
//
//	cache, err := ttlcache.New[string, []Row](ttlcache.Config{
//	    Capacity:   200,
//	    DefaultTTL: time.Minute,
//	})
//	if err != nil {
//	    return err
//	}
//
//	flights := singleflight.New[string, []Row]()
//
//	fetchRows := func(ctx context.Context, q string) ([]Row, error) {
//	    if rows, ok := cache.Get(q); ok {
//	        return rows, nil
//	    }
//	    rows, err := flights.Do(ctx, q, func(ctx context.Context) ([]Row, error) {
//	        return api.Search(ctx, q)
//	    }).AwaitContext(ctx)
//	    if err == nil {
//	        cache.Set(q, rows)
//	    }
//	    return rows, err
//	}
//
//	search, err := throttle.New(300*time.Millisecond, onQueryChanged)
//	if err != nil {
//	    return err
//	}
//	defer search.Stop()
package clientkit
