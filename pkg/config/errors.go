package config

import "errors"

var (
	// ErrParsingConfig wraps failures to parse environment variables into a struct.
	ErrParsingConfig = errors.New("config: failed to parse environment variables")

	// ErrLoadingEnvFile wraps failures to read an explicitly named .env file.
	ErrLoadingEnvFile = errors.New("config: failed to load .env file")

	// ErrConfigNotLoaded is returned when a configuration type's parse failed
	// in a concurrent caller and no cached value exists.
	ErrConfigNotLoaded = errors.New("config: configuration has not been loaded")

	// ErrNilPointer is returned when Load receives a nil pointer.
	ErrNilPointer = errors.New("config: nil pointer provided to loader")
)
