package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hearth/internal/config"
	"hearth/internal/store/memstore"
	"hearth/internal/validate"
)

func TestRunInitWritesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hearth.yaml")
	require.NoError(t, runInit(path, "Gram's House", "file", ""))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Gram's House", cfg.Household)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "./hearth-data", cfg.Storage.DSN)
	assert.Equal(t, config.Default().Scoreboard.GameDuration, cfg.Scoreboard.GameDuration)

	require.Error(t, runInit(path, "Again", "sqlite", ""))
}

func TestOpenBackend(t *testing.T) {
	ctx := context.Background()

	backend, err := openBackend(ctx, config.StorageConfig{Driver: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &memstore.Store{}, backend)

	backend, err = openBackend(ctx, config.StorageConfig{Driver: "file", DSN: t.TempDir()})
	require.NoError(t, err)
	require.NoError(t, backend.Close(ctx))

	_, err = openBackend(ctx, config.StorageConfig{Driver: "redis"})
	require.Error(t, err)
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	printIssues(&buf, []validate.Issue{
		{Severity: validate.SeverityError, Code: "duplicate_id", Message: "id used twice", Collection: "chores", ID: "c1"},
		{Severity: validate.SeverityWarn, Code: "unknown_version", Message: "version 7", Collection: "appData"},
	})
	assert.Equal(t, "  - chores [c1]: id used twice (duplicate_id)\n  - appData: version 7 (unknown_version)\n", buf.String())
}

func TestPrintTopics(t *testing.T) {
	var buf bytes.Buffer
	printTopics(&buf)
	assert.Contains(t, buf.String(), "dementia")
	assert.Contains(t, buf.String(), "Cohabitation Guide")
	assert.Equal(t, 3, strings.Count(buf.String(), "\n"))
}
