package batch

import "errors"

var (
	// ErrInvalidBatchSize indicates a non-positive slice size.
	ErrInvalidBatchSize = errors.New("batch: size must be positive")

	// ErrNilTransform indicates a nil transform function.
	ErrNilTransform = errors.New("batch: transform must not be nil")
)
