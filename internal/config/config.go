// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-budget-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Budget holds credentials and endpoint settings for the YNAB API.
	Budget Budget `envPrefix:"YNAB_"`

	// Server holds network address and timeout settings for the optional
	// ops HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background refresh workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged with the values already
	// loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Budget holds everything needed to talk to the remote budget service.
type Budget struct {
	// AccessToken is the personal access token presented as a bearer token
	// on every API request. Must be kept confidential.
	// Env: YNAB_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// DefaultBudget is the budget ID the repository caches and tools operate
	// on when no explicit budget is given.
	// Env: YNAB_DEFAULT_BUDGET
	DefaultBudget string `env:"DEFAULT_BUDGET"`

	// BaseURL overrides the public API endpoint; empty means the production
	// endpoint. Useful for tests and mock servers.
	// Env: YNAB_API_BASE_URL
	BaseURL string `env:"API_BASE_URL"`

	// RequestTimeout is the per-request timeout for outbound API calls
	// (e.g. "30s", "1m").
	// Env: YNAB_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network settings for the ops HTTP surface (health, status,
// version). An empty address disables the HTTP server entirely; the MCP
// stdio transport is always on.
type Server struct {
	// HTTPAddress is the TCP address the ops server listens on, in
	// "host:port" format (e.g. "127.0.0.1:8081").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for the background refresh worker.
type Workers struct {
	// SyncInterval defines how often the periodic refresher re-checks cached
	// kinds for staleness. Zero disables the worker.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// MaxAge is the staleness threshold for cached collections.
	// Env: WORKERS_MAX_AGE
	MaxAge time.Duration `env:"MAX_AGE"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application,
	// exposed via the MCP server info and the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (first non-zero value
// wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
