package config

import "errors"

var (
	// ErrInvalidConfig wraps every Validate failure.
	ErrInvalidConfig = errors.New("naturapi config: invalid value")
	// ErrLoadConfig wraps failures reading the YAML file or the environment.
	ErrLoadConfig = errors.New("naturapi config: cannot load")
)
