package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hearth/internal/store"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("put then get", func(t *testing.T) {
		dir := t.TempDir()
		s, err := New(dir)
		require.NoError(t, err)

		_, err = s.Get(ctx, "hearthAppData")
		assert.ErrorIs(t, err, store.ErrNotFound)

		require.NoError(t, s.Put(ctx, "hearthAppData", []byte(`{"version":1}`)))
		got, err := s.Get(ctx, "hearthAppData")
		require.NoError(t, err)
		assert.JSONEq(t, `{"version":1}`, string(got))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "hearthAppData.json", entries[0].Name())
	})

	t.Run("creates nested directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "a", "b")
		_, err := New(dir)
		require.NoError(t, err)
		assert.DirExists(t, dir)
	})

	t.Run("rejects empty directory", func(t *testing.T) {
		_, err := New(" ")
		require.Error(t, err)
	})

	t.Run("rejects path keys", func(t *testing.T) {
		s, err := New(t.TempDir())
		require.NoError(t, err)
		for _, key := range []string{"", "../escape", "a/b", ".hidden"} {
			assert.Error(t, s.Put(ctx, key, []byte("x")), key)
			_, err := s.Get(ctx, key)
			assert.Error(t, err, key)
		}
	})
}
