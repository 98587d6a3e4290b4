package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ServerConfig holds runtime settings for the HTTP API
type ServerConfig struct {
	Port          int
	ReferenceFile string
	SessionTTL    time.Duration
	LogLevel      string
}

// DefaultServerConfig returns the settings used when no environment overrides are present
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:       8080,
		SessionTTL: 2 * time.Hour,
		LogLevel:   "info",
	}
}

// LoadServerConfig reads .env files (missing files are ignored) and then the process environment.
func LoadServerConfig(envFiles ...string) (ServerConfig, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ServerConfig{}, fmt.Errorf("failed to load env file: %w", err)
	}
	return ServerConfigFromEnv(os.Getenv)
}

// ServerConfigFromEnv builds the config from a lookup function
func ServerConfigFromEnv(getenv func(string) string) (ServerConfig, error) {
	cfg := DefaultServerConfig()

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return cfg, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = port
	}
	if v := getenv("BILLIMPACT_REFERENCE"); v != "" {
		cfg.ReferenceFile = v
	}
	if v := getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid SESSION_TTL %q: %w", v, err)
		}
		if ttl <= 0 {
			return cfg, fmt.Errorf("SESSION_TTL must be positive")
		}
		cfg.SessionTTL = ttl
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg, nil
}
