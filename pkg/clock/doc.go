// Package clock abstracts time for components that schedule work: a Clock
// produces the current instant and single-shot timers, and a deterministic
// Mock drives those timers from tests without real sleeps.
//
// Production code uses the system clock:
//
//	c := clock.System()
//	timer := c.AfterFunc(time.Second, flush)
//	defer timer.Stop()
//
// Tests substitute a mock and move time explicitly:
//
//	mock := clock.NewMock()
//	cache, _ := ttlcache.New[string, int](cfg, ttlcache.WithClock[string, int](mock))
//
//	cache.Set("k", 1)
//	mock.Advance(11 * time.Millisecond)
//	_, ok := cache.Get("k") // ok == false, entry expired
//
// # Behaviour Guarantees
//
// Mock timers fire synchronously inside Advance/Set, in chronological order,
// and the mock's Now reflects each timer's deadline while its callback runs.
// Stopping a timer before its deadline prevents it from ever firing.
//
// All Clock and Timer implementations in this package are safe for concurrent
// use by multiple goroutines.
package clock
