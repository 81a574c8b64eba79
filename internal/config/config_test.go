package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/config"
)

// TestLoad_defaults verifies that optional env vars fall back to their defaults
// when nothing is set.
func TestLoad_defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("AUTH_PROVIDER", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Empty(t, cfg.DatabaseURL)
	require.Empty(t, cfg.AuthProvider)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/storytrip")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("AUTH_PROVIDER", "local")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "postgres://user:pass@db:5432/storytrip", cfg.DatabaseURL)
	require.Equal(t, "local", cfg.AuthProvider)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
}

// TestLoad_invalidLogLevel verifies that an out-of-set LOG_LEVEL is rejected
// and the error names the offending value.
func TestLoad_invalidLogLevel(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "LOG_LEVEL")
}

// TestLoad_invalidAuthProvider verifies that unknown AUTH_PROVIDER values are
// rejected rather than silently falling back to degraded mode.
func TestLoad_invalidAuthProvider(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("AUTH_PROVIDER", "okta")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "AUTH_PROVIDER")
}
