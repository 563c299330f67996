package throttle_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clientkit/pkg/clock"
	"github.com/dmitrymomot/clientkit/pkg/throttle"
)

type recorder struct {
	mu    sync.Mutex
	calls []int
}

func (r *recorder) record(v int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, v)
}

func (r *recorder) snapshot() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.calls...)
}

func newThrottle(t *testing.T, mock *clock.Mock, rec *recorder) *throttle.Throttle[int] {
	t.Helper()
	th, err := throttle.New(100*time.Millisecond, rec.record, throttle.WithClock[int](mock))
	require.NoError(t, err)
	return th
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	t.Run("non-positive wait", func(t *testing.T) {
		t.Parallel()
		_, err := throttle.New(0, func(int) {})
		assert.ErrorIs(t, err, throttle.ErrInvalidWait)

		_, err = throttle.New(-time.Second, func(int) {})
		assert.ErrorIs(t, err, throttle.ErrInvalidWait)
	})

	t.Run("nil callback", func(t *testing.T) {
		t.Parallel()
		_, err := throttle.New[int](time.Second, nil)
		assert.ErrorIs(t, err, throttle.ErrNilCallback)
	})
}

func TestThrottle_LeadingEdge(t *testing.T) {
	t.Parallel()

	t.Run("first call fires immediately", func(t *testing.T) {
		t.Parallel()
		mock := clock.NewMock()
		rec := &recorder{}
		th := newThrottle(t, mock, rec)
		defer th.Stop()

		th.Call(1)
		assert.Equal(t, []int{1}, rec.snapshot())
	})

	t.Run("call after a full idle interval fires immediately", func(t *testing.T) {
		t.Parallel()
		mock := clock.NewMock()
		rec := &recorder{}
		th := newThrottle(t, mock, rec)
		defer th.Stop()

		th.Call(1)
		mock.Advance(100 * time.Millisecond)
		th.Call(2)

		assert.Equal(t, []int{1, 2}, rec.snapshot())
	})
}

func TestThrottle_TrailingEdge(t *testing.T) {
	t.Parallel()

	t.Run("attempt inside the interval arms one trailing call", func(t *testing.T) {
		t.Parallel()
		mock := clock.NewMock()
		rec := &recorder{}
		th := newThrottle(t, mock, rec)
		defer th.Stop()

		th.Call(1) // leading, fires
		mock.Advance(40 * time.Millisecond)
		th.Call(2) // inside interval, armed for +60ms
		assert.True(t, th.Pending())
		assert.Equal(t, []int{1}, rec.snapshot())

		mock.Advance(60 * time.Millisecond)
		assert.Equal(t, []int{1, 2}, rec.snapshot())
		assert.False(t, th.Pending())
	})

	t.Run("attempts while armed are dropped and keep the armed argument", func(t *testing.T) {
		t.Parallel()
		mock := clock.NewMock()
		rec := &recorder{}
		th := newThrottle(t, mock, rec)
		defer th.Stop()

		th.Call(1)
		mock.Advance(10 * time.Millisecond)
		th.Call(2) // armed with 2
		th.Call(3) // dropped
		th.Call(4) // dropped

		mock.Advance(90 * time.Millisecond)
		assert.Equal(t, []int{1, 2}, rec.snapshot())
	})

	t.Run("trailing call resets the interval", func(t *testing.T) {
		t.Parallel()
		mock := clock.NewMock()
		rec := &recorder{}
		th := newThrottle(t, mock, rec)
		defer th.Stop()

		th.Call(1)
		mock.Advance(50 * time.Millisecond)
		th.Call(2)
		mock.Advance(50 * time.Millisecond) // trailing fires here

		// 10ms after the trailing invocation: still throttled.
		mock.Advance(10 * time.Millisecond)
		th.Call(3)
		assert.Equal(t, []int{1, 2}, rec.snapshot())
		assert.True(t, th.Pending())
	})
}

func TestThrottle_Stop(t *testing.T) {
	t.Parallel()

	t.Run("cancels an armed trailing call", func(t *testing.T) {
		t.Parallel()
		mock := clock.NewMock()
		rec := &recorder{}
		th := newThrottle(t, mock, rec)

		th.Call(1)
		mock.Advance(10 * time.Millisecond)
		th.Call(2)
		require.True(t, th.Pending())

		th.Stop()
		mock.Advance(time.Second)

		assert.Equal(t, []int{1}, rec.snapshot(), "trailing call must not fire after Stop")
	})

	t.Run("calls after stop are no-ops", func(t *testing.T) {
		t.Parallel()
		mock := clock.NewMock()
		rec := &recorder{}
		th := newThrottle(t, mock, rec)

		th.Stop()
		th.Call(1)
		mock.Advance(time.Second)

		assert.Empty(t, rec.snapshot())
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		t.Parallel()
		mock := clock.NewMock()
		th := newThrottle(t, mock, &recorder{})

		th.Stop()
		th.Stop()
	})
}

func TestThrottle_SystemClock(t *testing.T) {
	t.Parallel()

	// Smoke test against real timers: a burst of calls collapses into a
	// leading and one trailing invocation.
	rec := &recorder{}
	th, err := throttle.New(20*time.Millisecond, rec.record)
	require.NoError(t, err)
	defer th.Stop()

	for i := range 10 {
		th.Call(i)
		time.Sleep(time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return len(rec.snapshot()) >= 2
	}, time.Second, 5*time.Millisecond)

	calls := rec.snapshot()
	assert.Equal(t, 0, calls[0], "leading edge carries the first argument")
	assert.Less(t, len(calls), 10, "burst must collapse")
}
