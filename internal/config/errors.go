package config

import (
	"errors"
)

var (
	// ErrInvalidConfig wraps every validation failure of the loaded config.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrConfigFileNotFound is returned if main.toml does not exist in the config directory.
	ErrConfigFileNotFound = errors.New("config file main.toml not found")
)
