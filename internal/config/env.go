package config

import "os"

// ApplyEnv applies ENTERPRISE_* variables, falling back to the unprefixed
// DATABASE_PATH and PORT. Explicit flags win.
func ApplyEnv(cfg *Config, changed map[string]bool) {
	s := setter{changed: changed}
	s.setString("db", firstEnv("ENTERPRISE_DATABASE_PATH", "DATABASE_PATH"), &cfg.DatabasePath)
	s.setString("port", firstEnv("ENTERPRISE_PORT", "PORT"), &cfg.Port)
	s.setString("log-level", firstEnv("ENTERPRISE_LOG_LEVEL"), &cfg.LogLevel)
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			return val
		}
	}
	return ""
}
