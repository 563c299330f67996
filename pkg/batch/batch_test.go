package batch_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clientkit/pkg/batch"
)

func TestProcess(t *testing.T) {
	t.Parallel()

	t.Run("results keep input order", func(t *testing.T) {
		t.Parallel()
		square := func(ctx context.Context, n int) (int, error) {
			// Finish later items sooner to prove ordering is positional.
			time.Sleep(time.Duration(5-n) * time.Millisecond)
			return n * n, nil
		}

		results, err := batch.Process(context.Background(), []int{1, 2, 3, 4, 5}, square, batch.WithSize(2))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 4, 9, 16, 25}, results)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		t.Parallel()
		results, err := batch.Process(context.Background(), []int{}, func(ctx context.Context, n int) (int, error) {
			return n, nil
		})
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("slices never overlap", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var active, maxActive int

		track := func(ctx context.Context, n int) (int, error) {
			mu.Lock()
			active++
			if active > maxActive {
				maxActive = active
			}
			mu.Unlock()

			time.Sleep(2 * time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
			return n, nil
		}

		items := make([]int, 20)
		_, err := batch.Process(context.Background(), items, track, batch.WithSize(4))
		require.NoError(t, err)

		assert.LessOrEqual(t, maxActive, 4, "concurrency is bounded by the slice size")
	})

	t.Run("single slice when size exceeds input", func(t *testing.T) {
		t.Parallel()
		results, err := batch.Process(context.Background(), []int{1, 2, 3}, func(ctx context.Context, n int) (int, error) {
			return n * 10, nil
		}, batch.WithSize(100))
		require.NoError(t, err)
		assert.Equal(t, []int{10, 20, 30}, results)
	})
}

func TestProcess_Validation(t *testing.T) {
	t.Parallel()

	t.Run("non-positive size", func(t *testing.T) {
		t.Parallel()
		_, err := batch.Process(context.Background(), []int{1}, func(ctx context.Context, n int) (int, error) {
			return n, nil
		}, batch.WithSize(0))
		assert.ErrorIs(t, err, batch.ErrInvalidBatchSize)
	})

	t.Run("nil transform", func(t *testing.T) {
		t.Parallel()
		_, err := batch.Process[int, int](context.Background(), []int{1}, nil)
		assert.ErrorIs(t, err, batch.ErrNilTransform)
	})
}

func TestProcess_FailFast(t *testing.T) {
	t.Parallel()

	t.Run("first error fails the whole call", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("item 3 exploded")

		var transformed atomic.Int32
		_, err := batch.Process(context.Background(), []int{1, 2, 3, 4, 5, 6}, func(ctx context.Context, n int) (int, error) {
			if n == 3 {
				return 0, wantErr
			}
			transformed.Add(1)
			return n, nil
		}, batch.WithSize(2))

		assert.ErrorIs(t, err, wantErr)
		// Slice 3 (items 5, 6) never starts.
		assert.LessOrEqual(t, transformed.Load(), int32(4))
	})

	t.Run("error cancels the rest of the slice", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("fast failure")

		_, err := batch.Process(context.Background(), []int{1, 2}, func(ctx context.Context, n int) (int, error) {
			if n == 1 {
				return 0, wantErr
			}
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			case <-time.After(5 * time.Second):
				return n, nil
			}
		}, batch.WithSize(2))

		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("cancelled context stops between slices", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())

		var transformed atomic.Int32
		_, err := batch.Process(ctx, []int{1, 2, 3, 4}, func(c context.Context, n int) (int, error) {
			transformed.Add(1)
			cancel()
			return n, nil
		}, batch.WithSize(2))

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, int32(2), transformed.Load(), "second slice never starts")
	})
}

func TestProcess_Interval(t *testing.T) {
	t.Parallel()

	t.Run("pauses between slices but not after the last", func(t *testing.T) {
		t.Parallel()

		start := time.Now()
		_, err := batch.Process(context.Background(), []int{1, 2, 3, 4, 5, 6}, func(ctx context.Context, n int) (int, error) {
			return n, nil
		}, batch.WithSize(2), batch.WithInterval(20*time.Millisecond))
		require.NoError(t, err)

		elapsed := time.Since(start)
		// Three slices, two pauses.
		assert.GreaterOrEqual(t, elapsed, 40*time.Millisecond)
		assert.Less(t, elapsed, 200*time.Millisecond)
	})

	t.Run("cancellation during the pause is honoured", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := batch.Process(ctx, []int{1, 2, 3, 4}, func(ctx context.Context, n int) (int, error) {
			return n, nil
		}, batch.WithSize(2), batch.WithInterval(time.Hour))

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestProcessAsync(t *testing.T) {
	t.Parallel()

	future := batch.ProcessAsync(context.Background(), []int{1, 2, 3}, func(ctx context.Context, n int) (int, error) {
		return n + 1, nil
	})

	results, err := future.Await()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, results)
}
