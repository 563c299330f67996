package throttle

import (
	"fmt"
	"sync"
	"time"

	"github.com/dmitrymomot/clientkit/pkg/clock"
)

// Throttle rate-limits invocations of a callback to at most one per wait
// interval. The first attempt in an idle interval invokes immediately
// (leading edge); attempts arriving inside the interval arm at most one
// trailing invocation that fires when the interval ends, carrying the
// arguments present when it was armed. Attempts while a trailing call is
// armed are dropped.
type Throttle[T any] struct {
	mu      sync.Mutex
	fn      func(T)
	wait    time.Duration
	clock   clock.Clock
	last    time.Time
	pending clock.Timer
	stopped bool
}

// New wraps fn in a throttle with the given interval. It returns
// ErrInvalidWait when wait is not positive and ErrNilCallback when fn is
// nil.
func New[T any](wait time.Duration, fn func(T), opts ...Option[T]) (*Throttle[T], error) {
	if wait <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidWait, wait)
	}
	if fn == nil {
		return nil, ErrNilCallback
	}

	t := &Throttle[T]{
		fn:    fn,
		wait:  wait,
		clock: clock.System(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Call requests an invocation with v. It either invokes the callback
// synchronously (leading edge), arms a trailing invocation, or is dropped
// when one is already armed or the throttle is stopped.
func (t *Throttle[T]) Call(v T) {
	t.mu.Lock()

	if t.stopped {
		t.mu.Unlock()
		return
	}

	now := t.clock.Now()
	elapsed := now.Sub(t.last)

	if t.last.IsZero() || elapsed >= t.wait {
		t.last = now
		fn := t.fn
		t.mu.Unlock()
		fn(v)
		return
	}

	if t.pending == nil {
		remaining := t.wait - elapsed
		t.pending = t.clock.AfterFunc(remaining, func() { t.fireTrailing(v) })
	}
	t.mu.Unlock()
}

func (t *Throttle[T]) fireTrailing(v T) {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.pending = nil
	t.last = t.clock.Now()
	fn := t.fn
	t.mu.Unlock()
	fn(v)
}

// Stop cancels any armed trailing invocation and disposes the throttle;
// subsequent Calls are no-ops. Stop is idempotent and safe to call from any
// goroutine.
func (t *Throttle[T]) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopped = true
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}

// Pending reports whether a trailing invocation is armed.
func (t *Throttle[T]) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending != nil
}
