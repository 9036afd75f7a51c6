package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("valid config loads", func(t *testing.T) {
		cfg, err := Load(filepath.Join("testdata", "valid_config.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "Test House", cfg.Household)
		assert.Equal(t, "postgres", cfg.Storage.Driver)
		assert.Equal(t, 30*time.Second, cfg.Scoreboard.PollInterval)
		assert.Equal(t, "claude-haiku-4-5", cfg.Assistant.Model)
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		path := writeTempConfig(t, "household: Cabin\nversion: 1\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "sqlite", cfg.Storage.Driver)
		assert.Equal(t, "hearthAppData", cfg.Storage.Key)
		assert.Equal(t, "familyfirst", cfg.Vault.Passphrase)
		assert.Equal(t, 3*time.Hour, cfg.Scoreboard.GameDuration)
	})

	t.Run("missing household name", func(t *testing.T) {
		path := writeTempConfig(t, "household: \"\"\nversion: 1\n")
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("unsupported version", func(t *testing.T) {
		path := writeTempConfig(t, "household: Cabin\nversion: 2\n")
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("unknown storage driver", func(t *testing.T) {
		path := writeTempConfig(t, "household: Cabin\nversion: 1\nstorage:\n  driver: redis\n")
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("memory driver needs no dsn", func(t *testing.T) {
		path := writeTempConfig(t, "household: Cabin\nversion: 1\nstorage:\n  driver: MEMORY\n  dsn: \"\"\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "memory", cfg.Storage.Driver)
	})

	t.Run("file driver needs dsn", func(t *testing.T) {
		path := writeTempConfig(t, "household: Cabin\nversion: 1\nstorage:\n  driver: file\n  dsn: \"\"\n")
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("non-positive poll interval", func(t *testing.T) {
		path := writeTempConfig(t, "household: Cabin\nversion: 1\nscoreboard:\n  poll_interval: 0s\n")
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("HEARTH_STORAGE_DRIVER", "file")
		t.Setenv("HEARTH_STORAGE_DSN", t.TempDir())
		t.Setenv("HEARTH_LOG_LEVEL", "debug")
		cfg, err := Load(filepath.Join("testdata", "valid_config.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "file", cfg.Storage.Driver)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeTempConfig(t, "household: [\n")
		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestAPIKey(t *testing.T) {
	t.Setenv("HEARTH_TEST_KEY", "  sk-test  ")
	cfg := AssistantConfig{APIKeyEnv: "HEARTH_TEST_KEY"}
	assert.Equal(t, "sk-test", cfg.APIKey())
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "hearth.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}
