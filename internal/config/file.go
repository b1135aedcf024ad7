package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML representation of Config.
type FileConfig struct {
	DatabasePath string `toml:"database_path"`
	Port         string `toml:"port"`
	LogLevel     string `toml:"log_level"`
}

// LoadFile reads and parses a TOML config file.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// ApplyFile copies non-empty file values into cfg, skipping flags the user
// set explicitly.
func ApplyFile(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := setter{changed: changed}
	s.setString("db", fc.DatabasePath, &cfg.DatabasePath)
	s.setString("port", fc.Port, &cfg.Port)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
