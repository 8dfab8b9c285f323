package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugify/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "-", cfg.Replacement)
	assert.Empty(t, cfg.Locale)
	assert.False(t, cfg.Lower)
	assert.False(t, cfg.Strict)
	assert.True(t, cfg.Trim)
	assert.Empty(t, cfg.Charmaps)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "production", cfg.Sentry.Environment)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SLUGIFY_REPLACEMENT", "_")
	t.Setenv("SLUGIFY_LOCALE", "de")
	t.Setenv("SLUGIFY_LOWER", "true")
	t.Setenv("SLUGIFY_TRIM", "false")
	t.Setenv("SLUGIFY_CHARMAPS", "a.yaml,b.toml")
	t.Setenv("SENTRY_DSN", "https://key@example.com/1")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "_", cfg.Replacement)
	assert.Equal(t, "de", cfg.Locale)
	assert.True(t, cfg.Lower)
	assert.False(t, cfg.Trim)
	assert.Equal(t, []string{"a.yaml", "b.toml"}, cfg.Charmaps)
	assert.Equal(t, "https://key@example.com/1", cfg.Sentry.DSN)
}

func TestLoadDotenv(t *testing.T) {
	// Registered so t.Setenv restores the variable after godotenv sets it.
	t.Setenv("SLUGIFY_STRICT", "")
	require.NoError(t, os.Unsetenv("SLUGIFY_STRICT"))
	t.Setenv("SLUGIFY_LOCALE", "fr")

	name := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(name, []byte("SLUGIFY_STRICT=true\nSLUGIFY_LOCALE=es\n"), 0o600))

	cfg, err := config.Load(name)
	require.NoError(t, err)

	assert.True(t, cfg.Strict)
	assert.Equal(t, "fr", cfg.Locale, "environment wins over dotenv")
}

func TestLoadInvalidValue(t *testing.T) {
	t.Setenv("SLUGIFY_LOWER", "maybe")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}
