package window

import "errors"

var (
	// ErrInvalidItemExtent indicates a non-positive item extent, which
	// would otherwise divide by zero.
	ErrInvalidItemExtent = errors.New("window: item extent must be positive")

	// ErrInvalidViewport indicates a negative viewport extent.
	ErrInvalidViewport = errors.New("window: viewport extent must not be negative")

	// ErrInvalidOverscan indicates a negative overscan count.
	ErrInvalidOverscan = errors.New("window: overscan must not be negative")

	// ErrInvalidTotal indicates a negative item total.
	ErrInvalidTotal = errors.New("window: total items must not be negative")
)
