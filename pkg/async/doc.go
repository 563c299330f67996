// Package async provides a generic Future type: a one-shot handle to the
// eventual result of an operation running in its own goroutine.
//
// A Future is obtained from Go, which starts the supplied function
// immediately, or from Resolved/Rejected for already-settled values. Callers
// wait with Await, bound the wait with AwaitWithTimeout or AwaitContext, or
// poll with Settled. Done exposes the settlement channel for use in select
// statements.
//
// # Usage
//
//	future := async.Go(ctx, func(ctx context.Context) (string, error) {
//	    return fetchRemote(ctx, id)
//	})
//
//	// do other work …
//
//	value, err := future.Await()
//
// All collects the results of several futures in order, stopping at the
// first error:
//
//	values, err := async.All(f1, f2, f3)
//
// # Error Handling
//
// A Future settles with whatever error the underlying function returned.
// AwaitWithTimeout returns ErrAwaitTimeout when the deadline passes first;
// the operation itself is not interrupted, and a subsequent Await still
// observes its real outcome. Cancelling the context passed to Go before the
// function starts settles the Future with the context error without invoking
// the function at all.
//
// # Performance Considerations
//
// Each Future costs one goroutine and one channel. For bulk workloads
// prefer a bounded mechanism such as the batch package rather than spawning
// one Future per item.
package async
