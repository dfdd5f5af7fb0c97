package config

import "errors"

// Sentinel errors
var (
	ErrInvalidConfig = errors.New("invalid configuration")
)
