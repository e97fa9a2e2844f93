package config

import "errors"

var (
	// ErrParsingEnv is returned when environment variables cannot be parsed
	// into the config struct.
	ErrParsingEnv = errors.New("config: failed to parse environment variables")

	// ErrReadingFile is returned when a configuration file cannot be read.
	ErrReadingFile = errors.New("config: failed to read configuration file")

	// ErrParsingYAML is returned when a configuration file is not valid YAML
	// for the target struct.
	ErrParsingYAML = errors.New("config: failed to parse configuration file")

	// ErrNilPointer is returned when a nil pointer is passed to a loader.
	ErrNilPointer = errors.New("config: nil pointer provided to loader")
)
