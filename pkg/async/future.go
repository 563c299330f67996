package async

import (
	"context"
	"time"
)

// Future is the handle to the eventual result of an asynchronous operation.
// It settles exactly once, with either a value or an error, and every reader
// observes the same settled outcome.
type Future[T any] struct {
	result T
	err    error
	done   chan struct{}
}

// Go starts fn in its own goroutine and returns a Future settling with its
// result. If ctx is already cancelled the Future settles immediately with
// the context error and fn is never invoked.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.result, f.err = fn(ctx)
	}()

	return f
}

// Resolved returns a Future already settled with the given value.
func Resolved[T any](v T) *Future[T] {
	f := &Future[T]{result: v, done: make(chan struct{})}
	close(f.done)
	return f
}

// Rejected returns a Future already settled with the given error.
func Rejected[T any](err error) *Future[T] {
	f := &Future[T]{err: err, done: make(chan struct{})}
	close(f.done)
	return f
}

// Await blocks until the Future settles and returns its outcome.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout blocks until the Future settles or the timeout elapses,
// in which case it returns ErrAwaitTimeout. The underlying operation keeps
// running; a later Await still yields its outcome.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrAwaitTimeout
	}
}

// AwaitContext blocks until the Future settles or ctx is done. Cancellation
// abandons only this wait, not the underlying operation.
func (f *Future[T]) AwaitContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel closed when the Future settles.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Settled reports whether the Future has settled, without blocking.
func (f *Future[T]) Settled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// All awaits every future in order and collects their values. The first
// error encountered is returned alongside the partially filled results.
func All[T any](futures ...*Future[T]) ([]T, error) {
	results := make([]T, len(futures))
	for i, f := range futures {
		v, err := f.Await()
		results[i] = v
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
