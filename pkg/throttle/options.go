package throttle

import "github.com/dmitrymomot/clientkit/pkg/clock"

// Option configures a Throttle at construction time.
type Option[T any] func(*Throttle[T])

// WithClock substitutes the time source used for interval accounting and
// the trailing timer. Tests use it to drive the throttle deterministically.
// Nil clocks are ignored.
func WithClock[T any](c clock.Clock) Option[T] {
	return func(t *Throttle[T]) {
		if c != nil {
			t.clock = c
		}
	}
}
