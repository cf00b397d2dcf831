// Package config loads application configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every tunable of the process. Defaults suit local development.
type Config struct {
	Port         string `envconfig:"PORT" default:"8080"`
	DatabasePath string `envconfig:"DATABASE_PATH" default:"devfolio.db"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	Compression  bool   `envconfig:"COMPRESSION" default:"true"`

	// Per-IP token bucket limits for the abuse-prone endpoints.
	LoginRatePerSec   float64 `envconfig:"LOGIN_RATE_PER_SEC" default:"0.5"`
	LoginBurst        float64 `envconfig:"LOGIN_BURST" default:"5"`
	ContactRatePerSec float64 `envconfig:"CONTACT_RATE_PER_SEC" default:"0.2"`
	ContactBurst      float64 `envconfig:"CONTACT_BURST" default:"3"`
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var c Config
	err := envconfig.Process("", &c)
	return c, err
}

// SlogLevel maps the configured log level onto a slog.Level. Unknown values
// fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
