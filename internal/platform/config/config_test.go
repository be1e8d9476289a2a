package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 20, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, 30*time.Minute, cfg.Postgres.ConnMaxLifetime)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, []string{"A", "B"}, cfg.Channels)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.ErrorIs(t, cfg.RequireDSN(), ErrMissingDSN)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "newsdesk.yaml")
	yaml := `
server:
  addr: ":9090"
postgres:
  dsn: "postgres://file"
redis:
  ttl: 1m
channels: ["A", "B", "C"]
report:
  timezone: "UTC"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("NEWSDESK_POSTGRES_DSN", "postgres://env")
	t.Setenv("NEWSDESK_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "postgres://env", cfg.Postgres.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, time.Minute, cfg.Redis.TTL)
	assert.Equal(t, []string{"A", "B", "C"}, cfg.Channels)
	assert.NoError(t, cfg.RequireDSN())

	loc, err := cfg.Report.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoad_LegacyDSNVariable(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://legacy")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://legacy", cfg.Postgres.DSN)
}

func TestLoad_InvalidTimezone(t *testing.T) {
	t.Setenv("NEWSDESK_REPORT_TIMEZONE", "Mars/Olympus")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
