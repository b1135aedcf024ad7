// Package config resolves runtime settings from defaults, an optional TOML
// file, the environment and command-line flags, in increasing precedence.
package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Config holds the settings for the enterprise binary.
type Config struct {
	DatabasePath string
	Port         string
	LogLevel     string
}

// Default returns a Config with default values.
func Default() Config {
	return Config{
		DatabasePath: "enterprise.db",
		Port:         "8080",
		LogLevel:     "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("database path is required")
	}
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel into a slog level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// setter applies values unless the matching flag was set explicitly.
type setter struct {
	changed map[string]bool
}

func (s setter) setString(flag, value string, dst *string) {
	if s.changed[flag] || value == "" {
		return
	}
	*dst = value
}
