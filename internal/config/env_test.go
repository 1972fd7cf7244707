package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearServiceEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"HOST", "PORT", "ENVIRONMENT", "STAGING_DIR",
		"READ_TIMEOUT", "WRITE_TIMEOUT", "IDLE_TIMEOUT",
	} {
		t.Setenv(name, "")
	}
}

func TestLoad_FailsWithoutAPIKey(t *testing.T) {
	clearServiceEnv(t)
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoad_FailsOnMalformedAPIKey(t *testing.T) {
	clearServiceEnv(t)
	t.Setenv("OPENAI_API_KEY", "definitely-not-a-key")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sk-")
}

func TestLoad_Defaults(t *testing.T) {
	clearServiceEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test-1234567890")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.NotEmpty(t, cfg.StagingDir)
	assert.Equal(t, "sk-test-1234567890", cfg.OpenAIKey)
	assert.Equal(t, time.Duration(0), cfg.ReadTimeout)
	assert.Equal(t, time.Duration(0), cfg.WriteTimeout)
	assert.Equal(t, 2*time.Minute, cfg.IdleTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	clearServiceEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test-1234567890")
	t.Setenv("PORT", "8080")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("IDLE_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 30*time.Second, cfg.IdleTimeout)
}
