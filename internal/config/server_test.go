package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearServerEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SHOWORDER_ADDR", "SHOWORDER_MAX_TIMEOUT", "SHOWORDER_BODY_LIMIT",
		"RATE_LIMIT_ENABLED", "RATE_LIMIT_CAPACITY", "RATE_LIMIT_REFILL_TOKENS",
		"RATE_LIMIT_REFILL_INTERVAL", "RATE_LIMIT_TTL", "RATE_LIMIT_PREFIX",
		"REDIS_ADDR", "REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadServerConfig_Defaults(t *testing.T) {
	clearServerEnv(t)

	cfg, err := LoadServerConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 60*time.Second, cfg.MaxTimeout)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 10, cfg.RateLimit.Capacity)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadServerConfig_Overrides(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("SHOWORDER_ADDR", ":9090")
	t.Setenv("RATE_LIMIT_ENABLED", "off")
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "1m")
	t.Setenv("RATE_LIMIT_TTL", "1s")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := LoadServerConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 1, cfg.RateLimit.Capacity, "capacity is clamped to 1")
	assert.Equal(t, 5*time.Minute, cfg.RateLimit.TTL, "ttl covers five refills")
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
}

func TestLoadServerConfig_EnvFile(t *testing.T) {
	clearServerEnv(t)
	os.Unsetenv("SHOWORDER_ADDR")
	t.Cleanup(func() { os.Unsetenv("SHOWORDER_ADDR") })

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SHOWORDER_ADDR=:7070\n"), 0644))

	cfg, err := LoadServerConfig(envFile)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)

	_, err = LoadServerConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err, "a missing env file is not an error")
}

func TestLoadServerConfig_InvalidMaxTimeout(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("SHOWORDER_MAX_TIMEOUT", "-5s")

	_, err := LoadServerConfig("")
	assert.ErrorIs(t, err, ErrInvalidSettings)
}
