package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 1200*time.Millisecond, cfg.RateLimit.MinInterval)
	assert.Equal(t, 2*time.Second, cfg.RateLimit.BackoffBase)
	assert.Equal(t, 3, cfg.RateLimit.MaxBackoffRetries)
	assert.Equal(t, 1500*time.Millisecond, cfg.RateLimit.TimeoutRetryDelay)
	assert.Equal(t, "us,ca", cfg.News.Country)
	assert.Equal(t, "gpt-4o", cfg.Rewriter.Model)
	assert.Equal(t, "dall-e-3", cfg.Rewriter.ImageModel)
	assert.Equal(t, "21m00Tcm4TlvDq8ikWAM", cfg.Speech.VoiceID)
	assert.Equal(t, 50, cfg.Retention.KeepCount)
	assert.Equal(t, 20, cfg.Retention.DefaultLimit)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("RATE_LIMIT_MIN_INTERVAL", "500ms")
	t.Setenv("NEWS_API_KEY", "test-key")
	t.Setenv("RETENTION_KEEP_COUNT", "100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 500*time.Millisecond, cfg.RateLimit.MinInterval)
	assert.Equal(t, "test-key", cfg.News.APIKey)
	assert.Equal(t, 100, cfg.Retention.KeepCount)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]struct {
		key   string
		value string
	}{
		"non-numeric port":      {key: "SERVER_PORT", value: "not-a-port"},
		"port out of range":     {key: "SERVER_PORT", value: "70000"},
		"bad duration":          {key: "RATE_LIMIT_MIN_INTERVAL", value: "fast"},
		"zero interval":         {key: "RATE_LIMIT_MIN_INTERVAL", value: "0s"},
		"bad backoff factor":    {key: "RETRY_BACKOFF_FACTOR", value: "0.5"},
		"zero keep count":       {key: "RETENTION_KEEP_COUNT", value: "0"},
		"negative backoff tries": {key: "RATE_LIMIT_MAX_BACKOFF_RETRIES", value: "-1"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
