package config

import (
	"log"
	"os"
	"strconv"
)

type DatabaseConfig struct {
	Driver string // sqlite or postgres
	DSN    string
}

type Config struct {
	Database DatabaseConfig
	Env      string
	LogLevel string
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by the caller) > default.
func Load() Config {
	cfg := Config{}
	cfg.Database.Driver = getEnv("NOURA_DB_DRIVER", "sqlite")
	cfg.Database.DSN = getEnv("NOURA_DB_DSN", "noura_accounting.db?_foreign_keys=on")
	cfg.Env = getEnv("NOURA_ENV", "development")
	cfg.LogLevel = getEnv("NOURA_LOG_LEVEL", "info")
	return cfg
}

// IsProduction reports whether the app runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}
