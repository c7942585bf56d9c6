package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServicesConfigs indicates invalid application-level settings
	// (for example, a missing token sign key or CSRF hash key).
	ErrInvalidServicesConfigs = errors.New("invalid services configuration")
)
