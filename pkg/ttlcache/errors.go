package ttlcache

import "errors"

var (
	// ErrInvalidConfig indicates a non-positive capacity or default TTL.
	ErrInvalidConfig = errors.New("ttlcache: invalid configuration")
)
