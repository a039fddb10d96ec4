package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear any existing env vars that might interfere
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	// Check defaults are applied
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
	if cfg.RefreshCron != "@daily" {
		t.Errorf("RefreshCron = %q, want %q", cfg.RefreshCron, "@daily")
	}
	if cfg.SnapshotYearsAhead != 2 {
		t.Errorf("SnapshotYearsAhead = %d, want 2", cfg.SnapshotYearsAhead)
	}
	if len(cfg.SnapshotCountries) != 1 || cfg.SnapshotCountries[0] != "US" {
		t.Errorf("SnapshotCountries = %v, want [US]", cfg.SnapshotCountries)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv()

	// Set custom values
	os.Setenv("PORT", "3000")
	os.Setenv("ENV", "production")
	os.Setenv("DATABASE_PATH", "/data/test.db")
	os.Setenv("API_KEY", "secret-key-123")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	os.Setenv("DEFAULT_COUNTRY", "gb")
	os.Setenv("REFRESH_CRON", "0 3 * * 1")
	os.Setenv("SNAPSHOT_YEARS_AHEAD", "5")
	os.Setenv("SNAPSHOT_COUNTRIES", "al, cn ,")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.Env != EnvProduction {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvProduction)
	}
	if cfg.DatabasePath != "/data/test.db" {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, "/data/test.db")
	}
	if cfg.APIKey != "secret-key-123" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "secret-key-123")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
	if cfg.DefaultCountry != "GB" {
		t.Errorf("DefaultCountry = %q, want %q", cfg.DefaultCountry, "GB")
	}
	if cfg.RefreshCron != "0 3 * * 1" {
		t.Errorf("RefreshCron = %q", cfg.RefreshCron)
	}
	if cfg.SnapshotYearsAhead != 5 {
		t.Errorf("SnapshotYearsAhead = %d, want 5", cfg.SnapshotYearsAhead)
	}
	if got := cfg.SnapshotCountries; len(got) != 2 || got[0] != "AL" || got[1] != "CN" {
		t.Errorf("SnapshotCountries = %v, want [AL CN]", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	type testCase struct {
		name    string
		config  Config
		wantErr bool
	}
	tests := []testCase{
		{
			name: "valid development config",
			config: Config{
				Port:         8080,
				Env:          EnvDevelopment,
				DatabasePath: "./data/test.db",
				APIKey:       "", // OK in development
				LogLevel:     "info",
				LogFormat:    "text",
			}.withDefaults(),
			wantErr: false,
		},
		{
			name: "valid production config",
			config: Config{
				Port:         8080,
				Env:          EnvProduction,
				DatabasePath: "/data/holidays.db",
				APIKey:       "required-in-prod",
				LogLevel:     "info",
				LogFormat:    "json",
			}.withDefaults(),
			wantErr: false,
		},
		{
			name: "production requires API key",
			config: Config{
				Port:         8080,
				Env:          EnvProduction,
				DatabasePath: "/data/holidays.db",
				APIKey:       "", // Missing!
				LogLevel:     "info",
				LogFormat:    "json",
			}.withDefaults(),
			wantErr: true,
		},
		{
			name: "invalid port - too low",
			config: Config{
				Port:         0,
				Env:          EnvDevelopment,
				DatabasePath: "./data/test.db",
				LogLevel:     "info",
				LogFormat:    "text",
			}.withDefaults(),
			wantErr: true,
		},
		{
			name: "invalid port - too high",
			config: Config{
				Port:         70000,
				Env:          EnvDevelopment,
				DatabasePath: "./data/test.db",
				LogLevel:     "info",
				LogFormat:    "text",
			}.withDefaults(),
			wantErr: true,
		},
		{
			name: "invalid environment",
			config: Config{
				Port:         8080,
				Env:          "invalid",
				DatabasePath: "./data/test.db",
				LogLevel:     "info",
				LogFormat:    "text",
			}.withDefaults(),
			wantErr: true,
		},
		{
			name: "invalid log level",
			config: Config{
				Port:         8080,
				Env:          EnvDevelopment,
				DatabasePath: "./data/test.db",
				LogLevel:     "verbose", // Not valid
				LogFormat:    "text",
			}.withDefaults(),
			wantErr: true,
		},
		{
			name: "invalid log format",
			config: Config{
				Port:         8080,
				Env:          EnvDevelopment,
				DatabasePath: "./data/test.db",
				LogLevel:     "info",
				LogFormat:    "xml", // Not valid
			}.withDefaults(),
			wantErr: true,
		},
		{
			name: "empty database path",
			config: Config{
				Port:         8080,
				Env:          EnvDevelopment,
				DatabasePath: "",
				LogLevel:     "info",
				LogFormat:    "text",
			}.withDefaults(),
			wantErr: true,
		},
	}

	bad := func(mutate func(*Config)) Config {
		c := Config{Port: 8080, Env: EnvDevelopment, DatabasePath: "x.db", LogLevel: "info", LogFormat: "text"}.withDefaults()
		mutate(&c)
		return c
	}
	tests = append(tests,
		testCase{"unknown default country", bad(func(c *Config) { c.DefaultCountry = "ZZ" }), true},
		testCase{"unknown snapshot country", bad(func(c *Config) { c.SnapshotCountries = []string{"US", "XYZ"} }), true},
		testCase{"bad cron", bad(func(c *Config) { c.RefreshCron = "every day" }), true},
		testCase{"years ahead negative", bad(func(c *Config) { c.SnapshotYearsAhead = -1 }), true},
		testCase{"years ahead too large", bad(func(c *Config) { c.SnapshotYearsAhead = MaxYearsAhead + 1 }), true},
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{Env: EnvDevelopment}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true")
	}

	cfg.Env = EnvProduction
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true, want false")
	}
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{Env: EnvProduction}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}

	cfg.Env = EnvDevelopment
	if cfg.IsProduction() {
		t.Error("IsProduction() = true, want false")
	}
}

// withDefaults fills the holiday settings Load would use.
func (c Config) withDefaults() Config {
	c.DefaultCountry = "US"
	c.RefreshCron = "@daily"
	c.SnapshotYearsAhead = 2
	c.SnapshotCountries = []string{"US"}
	return c
}

// clearEnv removes all config-related environment variables
func clearEnv() {
	vars := []string{
		"PORT", "ENV", "DATABASE_PATH", "API_KEY",
		"LOG_LEVEL", "LOG_FORMAT",
		"DEFAULT_COUNTRY", "DEFAULT_LANGUAGE",
		"REFRESH_CRON", "SNAPSHOT_YEARS_AHEAD", "SNAPSHOT_COUNTRIES",
		"OVERLAY_PATH",
	}
	for _, v := range vars {
		os.Unsetenv(v)
	}
}
