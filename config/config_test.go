package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/family_shapes?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPPort)
	assert.Equal(t, ":50051", cfg.GrpcPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 168*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5*time.Second, cfg.DBTimeout)
	assert.Empty(t, cfg.AccountDeletionURL)
	assert.Empty(t, cfg.AdminEmails)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db/app")
	t.Setenv("HTTP_PORT", ":9000")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("ACCOUNT_DELETION_URL", "https://backend.example.com/functions/v1/delete-account")
	t.Setenv("ADMIN_EMAILS", "ops@example.com,founder@example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.HTTPPort)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "https://backend.example.com/functions/v1/delete-account", cfg.AccountDeletionURL)
	assert.Equal(t, []string{"ops@example.com", "founder@example.com"}, cfg.AdminEmails)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing database url", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("bad log format", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://db/app")
		t.Setenv("LOG_FORMAT", "xml")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("non-positive session ttl", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://db/app")
		t.Setenv("SESSION_TTL", "0s")
		_, err := Load()
		require.Error(t, err)
	})
}
