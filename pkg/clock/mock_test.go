package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clientkit/pkg/clock"
)

func TestMock_Advance(t *testing.T) {
	t.Parallel()

	t.Run("now moves by the advanced amount", func(t *testing.T) {
		t.Parallel()
		mock := clock.NewMock()
		start := mock.Now()

		mock.Advance(5 * time.Second)

		assert.Equal(t, start.Add(5*time.Second), mock.Now())
	})

	t.Run("due timers fire in chronological order", func(t *testing.T) {
		t.Parallel()
		mock := clock.NewMock()

		var order []int
		mock.AfterFunc(30*time.Millisecond, func() { order = append(order, 3) })
		mock.AfterFunc(10*time.Millisecond, func() { order = append(order, 1) })
		mock.AfterFunc(20*time.Millisecond, func() { order = append(order, 2) })

		mock.Advance(50 * time.Millisecond)

		assert.Equal(t, []int{1, 2, 3}, order)
	})

	t.Run("timer not yet due does not fire", func(t *testing.T) {
		t.Parallel()
		mock := clock.NewMock()

		fired := false
		mock.AfterFunc(100*time.Millisecond, func() { fired = true })

		mock.Advance(99 * time.Millisecond)
		assert.False(t, fired)

		mock.Advance(time.Millisecond)
		assert.True(t, fired)
	})
}

func TestMock_Timer(t *testing.T) {
	t.Parallel()

	t.Run("channel timer delivers deadline", func(t *testing.T) {
		t.Parallel()
		mock := clock.NewMock()
		deadline := mock.Now().Add(time.Second)

		timer := mock.NewTimer(time.Second)
		mock.Advance(time.Second)

		select {
		case got := <-timer.C():
			assert.Equal(t, deadline, got)
		default:
			t.Fatal("expected timer channel delivery")
		}
	})

	t.Run("stop prevents firing", func(t *testing.T) {
		t.Parallel()
		mock := clock.NewMock()

		fired := false
		timer := mock.AfterFunc(time.Second, func() { fired = true })

		require.True(t, timer.Stop())
		mock.Advance(2 * time.Second)

		assert.False(t, fired)
		assert.False(t, timer.Stop(), "second stop reports already stopped")
	})

	t.Run("stop after fire returns false", func(t *testing.T) {
		t.Parallel()
		mock := clock.NewMock()

		timer := mock.AfterFunc(time.Second, func() {})
		mock.Advance(time.Second)

		assert.False(t, timer.Stop())
	})
}

func TestSystem(t *testing.T) {
	t.Parallel()

	c := clock.System()
	before := time.Now()
	now := c.Now()
	after := time.Now()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))

	done := make(chan struct{})
	timer := c.AfterFunc(time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("system AfterFunc did not fire")
	}
	assert.False(t, timer.Stop())
}
