package batch

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/clientkit/pkg/async"
	"github.com/dmitrymomot/clientkit/pkg/clock"
)

// DefaultSize is the slice size used when WithSize is not given.
const DefaultSize = 50

// Transform converts one input item into one result.
type Transform[T, R any] func(ctx context.Context, item T) (R, error)

type options struct {
	size     int
	interval time.Duration
	clock    clock.Clock
}

// Option adjusts how Process partitions and paces the work.
type Option func(*options)

// WithSize sets the maximum number of items per slice. Process rejects a
// non-positive size with ErrInvalidBatchSize.
func WithSize(n int) Option {
	return func(o *options) { o.size = n }
}

// WithInterval sets the pause between consecutive slices. The pause yields
// the scheduler between slices on large inputs; zero (the default) runs the
// slices back to back. Negative intervals are treated as zero.
func WithInterval(d time.Duration) Option {
	return func(o *options) { o.interval = d }
}

// WithClock substitutes the time source for the inter-slice pause. Nil
// clocks are ignored.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// Process runs transform over items in contiguous slices of at most the
// configured size. Items within a slice run concurrently; slices run
// strictly one after another, separated by the configured interval. Results
// are returned in input order.
//
// The first transform error fails the whole call: the remaining items of
// the current slice are cancelled through the group context and no further
// slice starts. Callers that need per-item resilience catch errors inside
// their own transform.
func Process[T, R any](ctx context.Context, items []T, transform Transform[T, R], opts ...Option) ([]R, error) {
	if transform == nil {
		return nil, ErrNilTransform
	}

	o := options{size: DefaultSize, clock: clock.System()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBatchSize, o.size)
	}

	results := make([]R, len(items))

	for start := 0; start < len(items); start += o.size {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		end := min(start+o.size, len(items))

		g, gctx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			g.Go(func() error {
				r, err := transform(gctx, items[i])
				if err != nil {
					return err
				}
				results[i] = r
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		if o.interval > 0 && end < len(items) {
			if err := sleep(ctx, o.clock, o.interval); err != nil {
				return nil, err
			}
		}
	}

	return results, nil
}

// ProcessAsync runs Process in its own goroutine and returns a future for
// the result list.
func ProcessAsync[T, R any](ctx context.Context, items []T, transform Transform[T, R], opts ...Option) *async.Future[[]R] {
	return async.Go(ctx, func(ctx context.Context) ([]R, error) {
		return Process(ctx, items, transform, opts...)
	})
}

func sleep(ctx context.Context, c clock.Clock, d time.Duration) error {
	timer := c.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
