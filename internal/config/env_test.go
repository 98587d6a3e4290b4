package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestServerConfigFromEnv(t *testing.T) {
	cfg, err := ServerConfigFromEnv(envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultServerConfig(), cfg)

	cfg, err = ServerConfigFromEnv(envMap(map[string]string{
		"PORT":                 "9090",
		"BILLIMPACT_REFERENCE": "/etc/billimpact/reference.yaml",
		"SESSION_TTL":          "30m",
		"LOG_LEVEL":            "debug",
	}))
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/etc/billimpact/reference.yaml", cfg.ReferenceFile)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestServerConfigFromEnv_Invalid(t *testing.T) {
	_, err := ServerConfigFromEnv(envMap(map[string]string{"PORT": "http"}))
	assert.ErrorContains(t, err, "invalid PORT")

	_, err = ServerConfigFromEnv(envMap(map[string]string{"SESSION_TTL": "soon"}))
	assert.ErrorContains(t, err, "invalid SESSION_TTL")

	_, err = ServerConfigFromEnv(envMap(map[string]string{"SESSION_TTL": "-1m"}))
	assert.ErrorContains(t, err, "must be positive")
}

func TestLoadServerConfig_EnvFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SESSION_TTL", "")
	require.NoError(t, os.Unsetenv("SESSION_TTL"))
	path := writeTemp(t, ".env", "SESSION_TTL=45m\n")

	cfg, err := LoadServerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 45*time.Minute, cfg.SessionTTL)
}

func TestLoadServerConfig_MissingFileIgnored(t *testing.T) {
	_, err := LoadServerConfig(writeTemp(t, "unused", "") + ".missing")
	assert.NoError(t, err)
}
