// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/zapponejosh/holidays-api/internal/countries"
)

// Config holds all application configuration.
// Fields are populated from environment variables.
type Config struct {
	// Server settings
	Port int    // HTTP port to listen on
	Env  string // development, staging, production

	// Database
	DatabasePath string // Path to SQLite file

	// Authentication
	APIKey string // API key for admin endpoints

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text

	// Holidays
	DefaultCountry  string // used when a CLI gets no -country
	DefaultLanguage string // empty means each country's own default

	// Snapshots
	RefreshCron        string   // robfig/cron spec
	SnapshotYearsAhead int      // years after the current one to regenerate
	SnapshotCountries  []string // countries the scheduler regenerates

	// OverlayPath is an optional YAML file of extra holidays.
	OverlayPath string
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// MaxYearsAhead bounds SNAPSHOT_YEARS_AHEAD.
const MaxYearsAhead = 50

// Load reads configuration from environment variables.
// In development, it first loads from .env file if present.
func Load() (*Config, error) {
	// A missing .env file is not an error
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Port = getEnvInt("PORT", 8080)
	cfg.Env = getEnv("ENV", EnvDevelopment)

	cfg.DatabasePath = getEnv("DATABASE_PATH", "./data/holidays.db")

	cfg.APIKey = getEnv("API_KEY", "")

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "text")

	cfg.DefaultCountry = strings.ToUpper(getEnv("DEFAULT_COUNTRY", "US"))
	cfg.DefaultLanguage = getEnv("DEFAULT_LANGUAGE", "")

	cfg.RefreshCron = getEnv("REFRESH_CRON", "@daily")
	cfg.SnapshotYearsAhead = getEnvInt("SNAPSHOT_YEARS_AHEAD", 2)
	cfg.SnapshotCountries = getEnvList("SNAPSHOT_COUNTRIES", []string{cfg.DefaultCountry})

	cfg.OverlayPath = getEnv("OVERLAY_PATH", "")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration is present and valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	switch c.Env {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		errs = append(errs, fmt.Errorf("ENV must be one of: development, staging, production; got %q", c.Env))
	}

	if c.DatabasePath == "" {
		errs = append(errs, errors.New("DATABASE_PATH is required"))
	}

	// API key is required in production
	if c.Env == EnvProduction && c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY is required in production"))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	switch c.LogFormat {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	if _, err := countries.Lookup(c.DefaultCountry); err != nil {
		errs = append(errs, fmt.Errorf("DEFAULT_COUNTRY: %w", err))
	}
	for _, code := range c.SnapshotCountries {
		if _, err := countries.Lookup(code); err != nil {
			errs = append(errs, fmt.Errorf("SNAPSHOT_COUNTRIES: %w", err))
		}
	}

	if _, err := cron.ParseStandard(c.RefreshCron); err != nil {
		errs = append(errs, fmt.Errorf("REFRESH_CRON %q: %w", c.RefreshCron, err))
	}

	if c.SnapshotYearsAhead < 0 || c.SnapshotYearsAhead > MaxYearsAhead {
		errs = append(errs, fmt.Errorf("SNAPSHOT_YEARS_AHEAD must be between 0 and %d, got %d", MaxYearsAhead, c.SnapshotYearsAhead))
	}

	return errors.Join(errs...)
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvList reads a comma separated list, upper-casing each entry.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.ToUpper(part))
		}
	}
	return out
}
