package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hearth/internal/store"
)

func TestClientBlobs(t *testing.T) {
	ctx := context.Background()

	t.Run("memory database", func(t *testing.T) {
		c, err := New(ctx, "sqlite://:memory:")
		require.NoError(t, err)
		defer c.Close(ctx)

		_, err = c.Get(ctx, "hearthAppData")
		assert.ErrorIs(t, err, store.ErrNotFound)

		require.NoError(t, c.Put(ctx, "hearthAppData", []byte(`{"users":[]}`)))
		require.NoError(t, c.Put(ctx, "hearthAppData", []byte(`{"users":[{"id":"u1"}]}`)))

		got, err := c.Get(ctx, "hearthAppData")
		require.NoError(t, err)
		assert.JSONEq(t, `{"users":[{"id":"u1"}]}`, string(got))
	})

	t.Run("file survives reopen", func(t *testing.T) {
		dsn := "sqlite://" + filepath.Join(t.TempDir(), "hearth.db")
		c, err := New(ctx, dsn)
		require.NoError(t, err)
		require.NoError(t, c.Put(ctx, "k", []byte("v")))
		require.NoError(t, c.Close(ctx))

		c, err = New(ctx, dsn)
		require.NoError(t, err)
		defer c.Close(ctx)
		got, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), got)
	})
}
