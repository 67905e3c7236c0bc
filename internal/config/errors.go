package config

import "errors"

// Configuration errors.
var (
	ErrUnknownPackageManager = errors.New("unknown package manager")
	ErrGeneratorRequired     = errors.New("generator package is required")
)
