package throttle

import "errors"

var (
	// ErrInvalidWait indicates a non-positive throttle interval.
	ErrInvalidWait = errors.New("throttle: wait must be positive")

	// ErrNilCallback indicates a nil callback function.
	ErrNilCallback = errors.New("throttle: callback must not be nil")
)
