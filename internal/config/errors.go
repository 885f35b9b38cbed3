package config

import "errors"

var (
	// ErrInvalidConfig wraps validation failures of the merged configuration.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrDotEnv indicates a .env file that exists but cannot be loaded.
	ErrDotEnv = errors.New("error loading .env file")
	// ErrConfigFile indicates an appsettings file that exists but cannot be parsed.
	ErrConfigFile = errors.New("error reading config file")
)
