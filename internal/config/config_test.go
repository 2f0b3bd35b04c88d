package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromEnvDefaults(t *testing.T) {
	cfg, err := NewFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:7860", cfg.HTTP.Addr())
	assert.Equal(t, "data/dict.csv", cfg.Dict.Path)
	assert.Empty(t, cfg.Dict.CheckCron)
	assert.True(t, cfg.UI.Enabled)
	assert.Equal(t, "web/static", cfg.UI.StaticDir)
	assert.Equal(t, "en", cfg.Translate.SourceLanguage.String())
	assert.Equal(t, "tw", cfg.Translate.TargetLanguage.String())
	assert.Equal(t, "info", cfg.System.LogLevel)
}

func TestNewFromEnvOverrides(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8080")
	t.Setenv("DICT_PATH", "/srv/dict.csv")
	t.Setenv("UI_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := NewFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
	assert.Equal(t, "/srv/dict.csv", cfg.Dict.Path)
	assert.False(t, cfg.UI.Enabled)
	assert.Equal(t, "debug", cfg.System.LogLevel)
}

func TestNewFromEnvRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "99999")

	_, err := NewFromEnv()
	assert.Error(t, err)
}

func TestNewFromEnvOptions(t *testing.T) {
	cfg, err := NewFromEnv(func(c *Config) {
		c.HTTP.Port = 9000
	})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.HTTP.Port)
}

func TestNewFromEnvIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("UI_ENABLED", "maybe")

	cfg, err := NewFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 7860, cfg.HTTP.Port)
	assert.True(t, cfg.UI.Enabled)
}
