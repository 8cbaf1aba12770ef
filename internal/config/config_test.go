package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("YNAB_ACCESS_TOKEN", "token-123")
	t.Setenv("YNAB_DEFAULT_BUDGET", "budget-1")
	t.Setenv("YNAB_API_BASE_URL", "http://localhost:9999/v1")
	t.Setenv("YNAB_REQUEST_TIMEOUT", "10s")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:8081")
	t.Setenv("WORKERS_SYNC_INTERVAL", "2m")
	t.Setenv("WORKERS_MAX_AGE", "3m")
	t.Setenv("APP_VERSION", "1.2.3")
	t.Setenv("CONFIG", "/tmp/cfg.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "token-123", cfg.Budget.AccessToken)
	assert.Equal(t, "budget-1", cfg.Budget.DefaultBudget)
	assert.Equal(t, "http://localhost:9999/v1", cfg.Budget.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Budget.RequestTimeout)
	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 3*time.Minute, cfg.Workers.MaxAge)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/tmp/cfg.json", cfg.JSONFilePath)
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("YNAB_REQUEST_TIMEOUT", "not-a-duration")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"budget": {
			"access_token": "token-json",
			"default_budget": "budget-json",
			"request_timeout": "15s"
		},
		"server": {"http_address": "0.0.0.0:8080"},
		"workers": {"sync_interval": "4m", "max_age": 60000000000},
		"app": {"version": "0.9.0"}
	}`), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "token-json", cfg.Budget.AccessToken)
	assert.Equal(t, "budget-json", cfg.Budget.DefaultBudget)
	assert.Equal(t, 15*time.Second, cfg.Budget.RequestTimeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 4*time.Minute, cfg.Workers.SyncInterval)

	// numeric durations are raw nanoseconds
	assert.Equal(t, time.Minute, cfg.Workers.MaxAge)
	assert.Equal(t, "0.9.0", cfg.App.Version)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestBuilder_MergePriority(t *testing.T) {
	builder := newConfigBuilder()
	builder.configs = append(builder.configs,
		&StructuredConfig{Budget: Budget{AccessToken: "from-env", DefaultBudget: "budget-env"}},
		&StructuredConfig{Budget: Budget{AccessToken: "from-json", BaseURL: "http://json"}},
	)

	cfg, err := builder.withDefaults().build()
	require.NoError(t, err)

	// the earlier source wins; later sources only fill gaps
	assert.Equal(t, "from-env", cfg.Budget.AccessToken)
	assert.Equal(t, "budget-env", cfg.Budget.DefaultBudget)
	assert.Equal(t, "http://json", cfg.Budget.BaseURL)

	// defaults fill everything no source set
	assert.Equal(t, 30*time.Second, cfg.Budget.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 5*time.Minute, cfg.Workers.MaxAge)
}

func TestValidate(t *testing.T) {
	valid := StructuredConfig{
		Budget: Budget{AccessToken: "t", DefaultBudget: "b"},
	}
	assert.NoError(t, valid.validate())

	noToken := valid
	noToken.Budget.AccessToken = ""
	assert.ErrorIs(t, noToken.validate(), ErrInvalidBudgetConfigs)

	noBudget := valid
	noBudget.Budget.DefaultBudget = ""
	assert.ErrorIs(t, noBudget.validate(), ErrInvalidBudgetConfigs)

	negative := valid
	negative.Workers.SyncInterval = -time.Second
	assert.ErrorIs(t, negative.validate(), ErrInvalidWorkerConfigs)
}

func TestBuilder_ValidationFailureSurfacesFromBuild(t *testing.T) {
	builder := newConfigBuilder()
	builder.configs = append(builder.configs, &StructuredConfig{})

	_, err := builder.withDefaults().build()
	assert.ErrorIs(t, err, ErrInvalidBudgetConfigs)
}
