package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that all default values load correctly without any env vars.
func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port, "default server port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "30s", cfg.Server.WriteTimeout.String(), "default write timeout")

	assert.Equal(t, "http://localhost:4000", cfg.Lookup.BaseURL)
	assert.Equal(t, "/user-search/search", cfg.Lookup.SearchPath)
	assert.Equal(t, "10s", cfg.Lookup.Timeout.String(), "default lookup timeout")

	assert.Equal(t, "data/cities.json", cfg.Catalog.File)
	assert.Empty(t, cfg.Catalog.DefaultFrom)
	assert.Empty(t, cfg.Catalog.DefaultTo)

	assert.Equal(t, "30m0s", cfg.Session.TTL.String())
	assert.Equal(t, "1m0s", cfg.Session.SweepInterval.String())

	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "route_finder", cfg.Metrics.Namespace)

	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, "json", cfg.Logging.Format, "default log format")
	assert.Equal(t, "development", cfg.App.Env, "default app environment")
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"SERVER_PORT":            "3000",
		"LOOKUP_BASE_URL":        "https://routes.example.com",
		"LOOKUP_SEARCH_PATH":     "/v2/search",
		"LOOKUP_TIMEOUT":         "0s",
		"CATALOG_FILE":           "/etc/route-finder/cities.json",
		"CATALOG_DEFAULT_FROM":   "Delhi",
		"CATALOG_DEFAULT_TO":     "Goa",
		"SESSION_TTL":            "1h",
		"SESSION_SWEEP_INTERVAL": "5m",
		"METRICS_ENABLED":        "false",
		"LOG_LEVEL":              "debug",
		"LOG_FORMAT":             "console",
		"APP_ENV":                "production",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "https://routes.example.com", cfg.Lookup.BaseURL)
	assert.Equal(t, "/v2/search", cfg.Lookup.SearchPath)
	assert.Zero(t, cfg.Lookup.Timeout, "zero disables the lookup deadline")
	assert.Equal(t, "/etc/route-finder/cities.json", cfg.Catalog.File)
	assert.Equal(t, "Delhi", cfg.Catalog.DefaultFrom)
	assert.Equal(t, "Goa", cfg.Catalog.DefaultTo)
	assert.Equal(t, "1h0m0s", cfg.Session.TTL.String())
	assert.Equal(t, "5m0s", cfg.Session.SweepInterval.String())
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.IsProduction())
}

// TestLoad_Validation tests that invalid values are rejected with a helpful message.
func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name   string
		vars   map[string]string
		errMsg string
	}{
		{"port zero", map[string]string{"SERVER_PORT": "0"}, "SERVER_PORT must be between 1 and 65535"},
		{"port too high", map[string]string{"SERVER_PORT": "65536"}, "SERVER_PORT must be between 1 and 65535"},
		{"zero read timeout", map[string]string{"SERVER_READ_TIMEOUT": "0s"}, "SERVER_READ_TIMEOUT must be positive"},
		{"negative write timeout", map[string]string{"SERVER_WRITE_TIMEOUT": "-1s"}, "SERVER_WRITE_TIMEOUT must be positive"},
		{"relative base url", map[string]string{"LOOKUP_BASE_URL": "/api"}, "LOOKUP_BASE_URL must be an absolute http(s) URL"},
		{"ftp base url", map[string]string{"LOOKUP_BASE_URL": "ftp://example.com"}, "LOOKUP_BASE_URL must be an absolute http(s) URL"},
		{"negative lookup timeout", map[string]string{"LOOKUP_TIMEOUT": "-5s"}, "LOOKUP_TIMEOUT must not be negative"},
		{"zero session ttl", map[string]string{"SESSION_TTL": "0s"}, "SESSION_TTL must be positive"},
		{"zero sweep interval", map[string]string{"SESSION_SWEEP_INTERVAL": "0s"}, "SESSION_SWEEP_INTERVAL must be positive"},
		{
			"sweep not less than ttl",
			map[string]string{"SESSION_TTL": "1m", "SESSION_SWEEP_INTERVAL": "1m"},
			"should be less than SESSION_TTL",
		},
		{"invalid log level", map[string]string{"LOG_LEVEL": "trace"}, "LOG_LEVEL must be one of"},
		{"invalid log format", map[string]string{"LOG_FORMAT": "text"}, "LOG_FORMAT must be one of"},
		{"invalid app env", map[string]string{"APP_ENV": "local"}, "APP_ENV must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, tt.vars)

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, cfg)
		})
	}
}

// TestConfig_Validate_Overrides tests re-validation after programmatic overrides.
func TestConfig_Validate_Overrides(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	cfg.Lookup.BaseURL = "not a url"
	assert.Error(t, cfg.Validate())

	cfg.Lookup.BaseURL = "https://routes.example.com"
	cfg.Metrics.Namespace = ""
	assert.ErrorContains(t, cfg.Validate(), "METRICS_NAMESPACE")

	cfg.Metrics.Enabled = false
	assert.NoError(t, cfg.Validate())
}

// TestMustLoad tests MustLoad success and panic paths.
func TestMustLoad(t *testing.T) {
	clearEnvVars(t)
	assert.NotPanics(t, func() {
		assert.NotNil(t, MustLoad())
	})

	setEnvVars(t, map[string]string{"SERVER_PORT": "0"})
	assert.Panics(t, func() {
		MustLoad()
	})
}

// TestConfig_EnvHelpers tests the IsDevelopment and IsProduction helpers.
func TestConfig_EnvHelpers(t *testing.T) {
	tests := []struct {
		env      string
		wantDev  bool
		wantProd bool
	}{
		{"development", true, false},
		{"staging", false, false},
		{"production", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.wantDev, cfg.IsDevelopment())
			assert.Equal(t, tt.wantProd, cfg.IsProduction())
		})
	}
}

// Helper functions

// clearEnvVars unsets all config-related environment variables for the duration of the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		"SERVER_PORT",
		"SERVER_READ_TIMEOUT",
		"SERVER_WRITE_TIMEOUT",
		"LOOKUP_BASE_URL",
		"LOOKUP_SEARCH_PATH",
		"LOOKUP_TIMEOUT",
		"CATALOG_FILE",
		"CATALOG_DEFAULT_FROM",
		"CATALOG_DEFAULT_TO",
		"SESSION_TTL",
		"SESSION_SWEEP_INTERVAL",
		"METRICS_ENABLED",
		"METRICS_NAMESPACE",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"APP_ENV",
	}
	for _, v := range envVars {
		// t.Setenv restores the original value when the test ends
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

// setEnvVars sets multiple environment variables for the duration of the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
