package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates a missing application name.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLauncherConfigs indicates invalid launcher settings
	// (for example, empty command or scheme, or a negative timeout).
	ErrInvalidLauncherConfigs = errors.New("invalid launcher configuration")
	// ErrInvalidServerConfigs indicates invalid transport settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
