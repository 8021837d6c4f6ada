// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Lookup  LookupConfig
	Catalog CatalogConfig
	Session SessionConfig
	Metrics MetricsConfig
	Logging LoggingConfig
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// LookupConfig holds settings for the connection lookup service.
type LookupConfig struct {
	BaseURL    string `env:"LOOKUP_BASE_URL" envDefault:"http://localhost:4000"`
	SearchPath string `env:"LOOKUP_SEARCH_PATH" envDefault:"/user-search/search"`

	// Timeout bounds a single lookup. Zero disables the deadline, in which case a hung
	// service leaves the search pending until the caller gives up.
	Timeout time.Duration `env:"LOOKUP_TIMEOUT" envDefault:"10s"`
}

// CatalogConfig holds the city catalog source and default selection overrides.
type CatalogConfig struct {
	File        string `env:"CATALOG_FILE" envDefault:"data/cities.json"`
	DefaultFrom string `env:"CATALOG_DEFAULT_FROM"`
	DefaultTo   string `env:"CATALOG_DEFAULT_TO"`
}

// SessionConfig holds search session lifetime settings.
type SessionConfig struct {
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
}

// MetricsConfig holds prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `env:"METRICS_ENABLED" envDefault:"true"`
	Namespace string `env:"METRICS_NAMESPACE" envDefault:"route_finder"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// Validate checks configuration values for correctness.
// It is exported so callers that override values (CLI flags) can re-check them.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if err := validateBaseURL(c.Lookup.BaseURL); err != nil {
		return err
	}
	if c.Lookup.Timeout < 0 {
		return fmt.Errorf("LOOKUP_TIMEOUT must not be negative")
	}

	if c.Catalog.File == "" {
		return fmt.Errorf("CATALOG_FILE must not be empty")
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}
	if c.Session.SweepInterval >= c.Session.TTL {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL (%s) should be less than SESSION_TTL (%s)",
			c.Session.SweepInterval, c.Session.TTL)
	}

	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("METRICS_NAMESPACE must not be empty when metrics are enabled")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", c.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[c.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", c.App.Env)
	}

	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("LOOKUP_BASE_URL must be an absolute http(s) URL, got %q", raw)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
