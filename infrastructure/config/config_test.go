package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_ADDRESS", "ENVIRONMENT", "RESONANCE_INTERVAL", "REFLECTION_LIMIT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, time.Second, cfg.ResonanceInterval)
	assert.Equal(t, 100, cfg.ReflectionLimit)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("REFLECTION_LIMIT", "25")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("RESONANCE_INTERVAL", "250ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.ReflectionLimit)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 250*time.Millisecond, cfg.ResonanceInterval)
}

func TestValidate_ProductionRequiresSecret(t *testing.T) {
	cfg := &Config{
		Environment:       "production",
		ResonanceInterval: time.Second,
		DynamoDBTable:     "aura",
	}
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "secret"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsNonPositiveInterval(t *testing.T) {
	cfg := &Config{ResonanceInterval: 0}
	assert.Error(t, cfg.Validate())
}
