// Package config loads service settings from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/couchcryptid/bencana-dashboard/internal/domain"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	Data2023Path string `envconfig:"DATA_2023_PATH" default:"data/Data_2023.xlsx"`
	Data2024Path string `envconfig:"DATA_2024_PATH" default:"data/Data_2024.xlsx"`

	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"json"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// CoercionPolicy is "clamp" (zero-fill and count bad cells) or
	// "reject" (drop the whole row).
	CoercionPolicy string `envconfig:"COERCION_POLICY" default:"clamp"`
	DefaultTopN    int    `envconfig:"DEFAULT_TOP_N" default:"10"`
}

// Load reads configuration from environment variables, applying defaults
// where unset, and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if cfg.Data2023Path == "" {
		return nil, fmt.Errorf("DATA_2023_PATH is required")
	}
	if cfg.Data2024Path == "" {
		return nil, fmt.Errorf("DATA_2024_PATH is required")
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	if cfg.DefaultTopN < 1 {
		return nil, fmt.Errorf("DEFAULT_TOP_N must be at least 1")
	}
	if _, err := domain.ParsePolicy(cfg.CoercionPolicy); err != nil {
		return nil, fmt.Errorf("COERCION_POLICY: %w", err)
	}

	return &cfg, nil
}

// Policy returns the validated coercion policy.
func (c *Config) Policy() domain.CoercionPolicy {
	return domain.CoercionPolicy(c.CoercionPolicy)
}
