package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "templates/*", cfg.TemplateGlob)
	assert.Equal(t, "https://formspree.io/f/xwpgjdnd", cfg.RelayURL)
	assert.Equal(t, 30*time.Minute, cfg.FormIdleTTL)
	assert.Len(t, cfg.SessionSecret, 64)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("RELAY_URL", "https://relay.example.com/f/abc")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("FORM_IDLE_TTL", "5m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.development())
	assert.Equal(t, "https://relay.example.com/f/abc", cfg.RelayURL)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.False(t, cfg.Metrics)
	assert.Equal(t, 5*time.Minute, cfg.FormIdleTTL)
}

func TestLoadConfig_ParseError(t *testing.T) {
	t.Setenv("FORM_IDLE_TTL", "soon")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
