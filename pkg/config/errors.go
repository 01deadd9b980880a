package config

import "errors"

var (
	// ErrParsingConfig wraps env tag parsing failures, including missing required variables
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidConfigType is returned when a cached value does not match the requested type
	ErrInvalidConfigType = errors.New("invalid config type")

	// ErrConfigNotLoaded is returned when the cache holds no value after a load attempt
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when Load is handed a nil destination
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrLoadingEnvFile wraps godotenv failures for named .env files
	ErrLoadingEnvFile = errors.New("failed to load env file")
)
