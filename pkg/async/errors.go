package async

import "errors"

var (
	// ErrAwaitTimeout is returned by AwaitWithTimeout when the future does
	// not settle before the timeout elapses.
	ErrAwaitTimeout = errors.New("async: timed out awaiting future")
)
