// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Schedule provider selection values.
const (
	ProviderStatic      = "static"
	ProviderAeroDataBox = "aerodatabox"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Timeouts  TimeoutConfig
	Logging   LoggingConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Schedules SchedulesConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
}

// TimeoutConfig holds timeout settings for itinerary search operations.
type TimeoutConfig struct {
	GlobalSearch time.Duration `env:"TIMEOUT_GLOBAL_SEARCH" envDefault:"10s"`
	HubFetch     time.Duration `env:"TIMEOUT_HUB_FETCH" envDefault:"4s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// CacheConfig holds result cache settings.
type CacheConfig struct {
	Enabled bool          `env:"CACHE_ENABLED" envDefault:"true"`
	TTL     time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// RateLimitConfig holds the inbound request throttle settings.
type RateLimitConfig struct {
	Enabled           bool    `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RequestsPerSecond float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
	Burst             int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
}

// SchedulesConfig selects and configures the flight schedule source.
type SchedulesConfig struct {
	// Provider is "static" (JSON fixture) or "aerodatabox" (live RapidAPI).
	Provider string `env:"SCHEDULES_PROVIDER" envDefault:"static"`

	// StaticFilePath is the schedule fixture used by the static provider.
	StaticFilePath string `env:"SCHEDULES_STATIC_FILE" envDefault:"docs/schedule-fixture.json"`

	// RapidAPIKey and RapidAPIHost are the AeroDataBox credentials.
	RapidAPIKey  string `env:"RAPIDAPI_KEY"`
	RapidAPIHost string `env:"RAPIDAPI_HOST" envDefault:"aerodatabox.p.rapidapi.com"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
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

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Timeouts.GlobalSearch <= 0 {
		return fmt.Errorf("TIMEOUT_GLOBAL_SEARCH must be positive")
	}
	if cfg.Timeouts.HubFetch <= 0 {
		return fmt.Errorf("TIMEOUT_HUB_FETCH must be positive")
	}

	// A single hub fetch must fit inside the overall search budget
	if cfg.Timeouts.HubFetch >= cfg.Timeouts.GlobalSearch {
		return fmt.Errorf("TIMEOUT_HUB_FETCH (%s) should be less than TIMEOUT_GLOBAL_SEARCH (%s)",
			cfg.Timeouts.HubFetch, cfg.Timeouts.GlobalSearch)
	}

	if cfg.Cache.Enabled && cfg.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive when CACHE_ENABLED is true")
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("RATE_LIMIT_RPS must be positive when RATE_LIMIT_ENABLED is true")
		}
		if cfg.RateLimit.Burst < 1 {
			return fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when RATE_LIMIT_ENABLED is true")
		}
	}

	switch cfg.Schedules.Provider {
	case ProviderStatic:
		if cfg.Schedules.StaticFilePath == "" {
			return fmt.Errorf("SCHEDULES_STATIC_FILE is required for the static provider")
		}
	case ProviderAeroDataBox:
		if cfg.Schedules.RapidAPIKey == "" {
			return fmt.Errorf("RAPIDAPI_KEY is required for the aerodatabox provider")
		}
		if cfg.Schedules.RapidAPIHost == "" {
			return fmt.Errorf("RAPIDAPI_HOST is required for the aerodatabox provider")
		}
	default:
		return fmt.Errorf("SCHEDULES_PROVIDER must be one of: %s, %s; got %q",
			ProviderStatic, ProviderAeroDataBox, cfg.Schedules.Provider)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
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
