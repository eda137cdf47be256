// Package config loads process settings for the long-running stategate commands.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/stategate/internal/logging"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when the environment cannot be decoded.
var ErrParsingConfig = errors.New("failed to parse config")

// Config holds the settings shared by serve and mcp.
type Config struct {
	Addr        string `env:"STATEGATE_ADDR" envDefault:":8080"`
	LogLevel    string `env:"STATEGATE_LOG_LEVEL" envDefault:"info"`
	Definitions string `env:"STATEGATE_DEFINITIONS" envDefault:"stategate.yaml"`
	Metrics     bool   `env:"STATEGATE_METRICS" envDefault:"true"`
}

// Load reads an optional .env file, then parses the environment.
func Load() (Config, error) {
	// The .env file is optional.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Level returns the parsed log level.
func (c Config) Level() (slog.Level, error) {
	lvl, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("STATEGATE_LOG_LEVEL: %w", err)
	}
	return lvl, nil
}
