// Package throttle limits how often a callback actually runs, however often
// it is requested. It is meant for high-frequency UI-adjacent events —
// scroll positions, resize notifications, keystroke-driven searches — where
// only the rate matters, not every individual occurrence.
//
// The behaviour combines a leading and a trailing edge:
//
//   - an attempt after a full idle interval invokes the callback
//     immediately;
//   - an attempt inside the interval arms one trailing invocation for the
//     remainder of the interval, carrying that attempt's argument;
//   - further attempts while a trailing invocation is armed are dropped.
//     The armed argument is kept, not replaced.
//
// # Usage
//
//	search, err := throttle.New(300*time.Millisecond, func(q string) {
//	    runSearch(q)
//	})
//	if err != nil {
//	    return err
//	}
//	defer search.Stop()
//
//	// Called on every keystroke; runSearch fires at most ~3x per second.
//	search.Call(query)
//
// Stop cancels an armed trailing invocation and permanently disposes the
// throttle. Always stop a throttle whose owner goes away, otherwise a
// trailing call can fire into a context that no longer exists.
//
// # Concurrency
//
// Call, Stop, and Pending are safe for concurrent use. The callback runs
// without the throttle's internal lock held, either on the caller's
// goroutine (leading edge) or on the timer's goroutine (trailing edge), so
// the callback itself must be safe for whichever goroutines those are.
package throttle
