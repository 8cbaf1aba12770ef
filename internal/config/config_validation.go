// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The access token and the default budget are mandatory: without them the
// repository has nothing to cache and every API call would fail with 401.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Budget.AccessToken == "" {
		return ErrInvalidBudgetConfigs
	}

	if cfg.Budget.DefaultBudget == "" {
		return ErrInvalidBudgetConfigs
	}

	if cfg.Workers.SyncInterval < 0 || cfg.Workers.MaxAge < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
