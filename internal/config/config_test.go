package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8090", cfg.HTTPListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "inventory-api", cfg.ServiceName)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/fabric")
	t.Setenv("HTTP_LISTEN_ADDR", ":9999")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/fabric", cfg.DatabaseURL)
	assert.Equal(t, ":9999", cfg.HTTPListenAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "database_url: postgres://localhost/filedb\nlog_level: warn\nfabric_name: dc1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/filedb", cfg.DatabaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "dc1", cfg.FabricName)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("LOG_LEVEL", "trace")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "trace", cfg.LogLevel)
}

func TestValidate_MissingDatabaseURL(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())
}
