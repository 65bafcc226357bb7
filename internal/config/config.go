// Package config holds runtime configuration resolved from the
// environment and command-line flags.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Environment variables read by FromEnv.
const (
	EnvCatalog  = "TRIAGE_CATALOG"
	EnvLogLevel = "TRIAGE_LOG_LEVEL"
)

// Config holds all runtime configuration.
type Config struct {
	// CatalogPath points to a YAML or JSON candidate catalog.
	// Empty selects the built-in catalog.
	CatalogPath string

	// LogLevel is one of "debug", "info", "warn", "error". Default: "info".
	LogLevel string
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		LogLevel: "info",
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() Config {
	cfg := Default()

	if p := os.Getenv(EnvCatalog); p != "" {
		cfg.CatalogPath = p
	}
	if l := os.Getenv(EnvLogLevel); l != "" {
		cfg.LogLevel = l
	}

	return cfg
}

// Validate checks the configured values.
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level: %q", c.LogLevel)
	}

	if c.CatalogPath != "" {
		info, err := os.Stat(c.CatalogPath)
		if err != nil {
			return fmt.Errorf("catalog path: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("catalog path %s is a directory", c.CatalogPath)
		}
	}
	return nil
}
