package singleflight

import (
	"context"
	"sync"
)

// Group collapses concurrent operations that share a key into a single
// in-flight execution. The first caller for a key becomes the leader and
// runs the operation; every caller holding the returned Flight observes the
// same settled value or error.
//
// The registration for a key is removed when its operation settles, success
// or failure alike, so a failed operation never blocks later attempts under
// the same key.
type Group[K comparable, V any] struct {
	mu      sync.Mutex
	calls   map[K]*call[V]
	metrics Metrics
}

// New creates a Group. Options are applied in order.
func New[K comparable, V any](opts ...Option[K, V]) *Group[K, V] {
	g := &Group[K, V]{
		calls:   make(map[K]*call[V]),
		metrics: NoopMetrics{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// call is the single shared execution behind one key. value and err are
// written once, before done closes; readers wait on done first.
type call[V any] struct {
	done  chan struct{}
	value V
	err   error
}

// Flight is a caller's handle to an in-flight operation. Handles from
// concurrent Do calls under one key share the same underlying execution
// and settle with the identical outcome.
type Flight[V any] struct {
	call   *call[V]
	shared bool
}

// Await blocks until the operation settles and returns its outcome.
func (f *Flight[V]) Await() (V, error) {
	<-f.call.done
	return f.call.value, f.call.err
}

// AwaitContext blocks until the operation settles or ctx is done.
// Abandoning the wait does not cancel the operation; it runs to completion
// for the remaining holders.
func (f *Flight[V]) AwaitContext(ctx context.Context) (V, error) {
	select {
	case <-f.call.done:
		return f.call.value, f.call.err
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}

// Done returns a channel closed when the operation settles.
func (f *Flight[V]) Done() <-chan struct{} { return f.call.done }

// Settled reports whether the operation has settled, without blocking.
func (f *Flight[V]) Settled() bool {
	select {
	case <-f.call.done:
		return true
	default:
		return false
	}
}

// Shared reports whether this handle joined an operation started by an
// earlier caller.
func (f *Flight[V]) Shared() bool { return f.shared }

// Do returns a Flight for key, starting op if none is in flight. Callers
// joining an existing flight get a handle to the leader's execution and op
// is not invoked for them. op must not be nil.
func (g *Group[K, V]) Do(ctx context.Context, key K, op func(context.Context) (V, error)) *Flight[V] {
	g.mu.Lock()
	if c, ok := g.calls[key]; ok {
		g.mu.Unlock()
		g.metrics.Joined()
		return &Flight[V]{call: c, shared: true}
	}

	c := &call[V]{done: make(chan struct{})}
	g.calls[key] = c
	g.mu.Unlock()
	g.metrics.Led()

	go func() {
		// Unregister before publishing so a caller arriving after
		// settlement starts a fresh operation instead of observing a
		// stale one. Runs on every exit path, error included.
		defer func() {
			g.mu.Lock()
			if g.calls[key] == c {
				delete(g.calls, key)
			}
			g.mu.Unlock()
			close(c.done)
		}()

		c.value, c.err = op(ctx)
	}()

	return &Flight[V]{call: c}
}

// Forget drops the registration for key without waiting for its operation
// to settle. The next Do for key starts a fresh operation; holders of the
// forgotten flight still receive its eventual outcome.
func (g *Group[K, V]) Forget(key K) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.calls, key)
}

// InFlight returns the number of keys with an operation currently in
// flight.
func (g *Group[K, V]) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}
