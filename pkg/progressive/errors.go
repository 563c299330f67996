package progressive

import "errors"

var (
	// ErrInvalidConfig indicates a negative count or a non-positive
	// increment.
	ErrInvalidConfig = errors.New("progressive: invalid configuration")
)
