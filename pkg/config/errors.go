package config

import "errors"

var (
	// ErrParse indicates the environment could not be parsed into the
	// config struct (missing required variables, bad values).
	ErrParse = errors.New("config: failed to parse environment")

	// ErrEnvFileLoad indicates an explicitly named .env file could not be
	// read.
	ErrEnvFileLoad = errors.New("config: failed to load env file")

	// ErrNilPointer indicates a nil target passed to Load.
	ErrNilPointer = errors.New("config: nil pointer provided")
)
