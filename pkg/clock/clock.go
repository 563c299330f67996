package clock

import "time"

// Clock abstracts wall-clock time and timer scheduling so that
// time-dependent components can be driven deterministically in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// NewTimer returns a timer that delivers the current time on its
	// channel once d has elapsed.
	NewTimer(d time.Duration) Timer

	// AfterFunc schedules fn to run in its own goroutine once d has
	// elapsed. The returned timer can cancel the pending call.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a single-shot timer created by a Clock.
type Timer interface {
	// C returns the channel the timer delivers on. Timers created with
	// AfterFunc deliver nothing on C.
	C() <-chan time.Time

	// Stop prevents the timer from firing. It returns false if the timer
	// has already fired or been stopped.
	Stop() bool
}

// System returns a Clock backed by the runtime timers.
func System() Clock { return systemClock{} }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) NewTimer(d time.Duration) Timer {
	return &systemTimer{t: time.NewTimer(d)}
}

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return &systemTimer{t: time.AfterFunc(d, fn)}
}

type systemTimer struct {
	t *time.Timer
}

func (st *systemTimer) C() <-chan time.Time { return st.t.C }
func (st *systemTimer) Stop() bool          { return st.t.Stop() }
