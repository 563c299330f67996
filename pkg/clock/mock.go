package clock

import (
	"sort"
	"sync"
	"time"
)

// Mock is a Clock whose time only moves when the test advances it.
// Timers fire synchronously inside Advance/Set, in due order, which keeps
// time-dependent assertions deterministic.
type Mock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*mockTimer
}

// NewMock creates a mock clock. The starting instant is arbitrary but fixed,
// so durations measured against it are stable across runs.
func NewMock() *Mock {
	return &Mock{now: time.Unix(1700000000, 0)}
}

// Now returns the mock's current time.
func (m *Mock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d, firing every timer due on the way
// in chronological order.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()
	m.Set(target)
}

// Set moves the clock to t, firing every timer due on the way. Moving the
// clock backwards only changes Now; no timers fire.
func (m *Mock) Set(t time.Time) {
	for {
		m.mu.Lock()
		next := m.nextDueLocked(t)
		if next == nil {
			m.now = t
			m.mu.Unlock()
			return
		}
		m.now = next.deadline
		m.removeLocked(next)
		m.mu.Unlock()

		next.fire()
	}
}

func (m *Mock) NewTimer(d time.Duration) Timer {
	return m.schedule(d, nil)
}

func (m *Mock) AfterFunc(d time.Duration, fn func()) Timer {
	return m.schedule(d, fn)
}

func (m *Mock) schedule(d time.Duration, fn func()) *mockTimer {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &mockTimer{
		clock:    m,
		deadline: m.now.Add(d),
		fn:       fn,
		ch:       make(chan time.Time, 1),
	}
	m.timers = append(m.timers, t)
	return t
}

// nextDueLocked returns the earliest timer with deadline <= limit.
func (m *Mock) nextDueLocked(limit time.Time) *mockTimer {
	due := make([]*mockTimer, 0, len(m.timers))
	for _, t := range m.timers {
		if !t.deadline.After(limit) {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool { return due[i].deadline.Before(due[j].deadline) })
	return due[0]
}

func (m *Mock) removeLocked(t *mockTimer) {
	for i, existing := range m.timers {
		if existing == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}

type mockTimer struct {
	clock    *Mock
	deadline time.Time
	fn       func()
	ch       chan time.Time

	mu      sync.Mutex
	stopped bool
	fired   bool
}

func (t *mockTimer) C() <-chan time.Time { return t.ch }

func (t *mockTimer) Stop() bool {
	t.clock.mu.Lock()
	t.clock.removeLocked(t)
	t.clock.mu.Unlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

func (t *mockTimer) fire() {
	t.mu.Lock()
	if t.stopped || t.fired {
		t.mu.Unlock()
		return
	}
	t.fired = true
	fn := t.fn
	t.mu.Unlock()

	if fn != nil {
		fn()
		return
	}
	select {
	case t.ch <- t.deadline:
	default:
	}
}
