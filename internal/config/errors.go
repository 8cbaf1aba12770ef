package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidBudgetConfigs indicates invalid budget API settings
	// (for example, missing access token or default budget ID).
	ErrInvalidBudgetConfigs = errors.New("invalid budget configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, negative sync interval or staleness threshold).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
