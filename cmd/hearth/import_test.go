package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hearth/internal/model"
)

func testCommand(t *testing.T) *cobra.Command {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "hearth.yaml")
	require.NoError(t, runInit(path, "Test House", "file", filepath.Join(dir, "data")))

	cmd := &cobra.Command{}
	cmd.Flags().String("config", path, "")
	return cmd
}

func TestImportThenExport(t *testing.T) {
	cmd := testCommand(t)
	require.NoError(t, runImport(cmd, []string{filepath.Join("..", "..", "internal", "dataset", "testdata", "household.yaml")}))

	out := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, runExport(cmd, out))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	var data model.AppData
	require.NoError(t, json.Unmarshal(raw, &data))
	require.Len(t, data.Users, 2)
	assert.Equal(t, "nan", data.Users[0].ID)
	assert.Equal(t, model.CurrentVersion, data.Version)
}

func TestImportRejectsBrokenDataset(t *testing.T) {
	cmd := testCommand(t)
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("users:\n  - id: a\n    name: A\n  - id: a\n    name: B\n"), 0o600))

	importForce = false
	require.Error(t, runImport(cmd, []string{path}))

	importForce = true
	t.Cleanup(func() { importForce = false })
	require.NoError(t, runImport(cmd, []string{path}))
}
