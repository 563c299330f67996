package loader

import "errors"

var (
	// ErrNotRegistered indicates a Load for a key no loader was registered
	// under.
	ErrNotRegistered = errors.New("loader: no loader registered for key")

	// ErrAlreadyRegistered indicates a second Register for the same key.
	ErrAlreadyRegistered = errors.New("loader: key already registered")

	// ErrNilLoader indicates a Register with a nil function.
	ErrNilLoader = errors.New("loader: loader function must not be nil")
)
