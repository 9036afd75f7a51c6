package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hearth/internal/store"
)

func TestClientBlobs(t *testing.T) {
	dsn := os.Getenv("HEARTH_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("HEARTH_TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()

	c, err := New(ctx, dsn)
	require.NoError(t, err)
	defer c.Close(ctx)

	key := "hearth-test-" + t.Name()
	t.Cleanup(func() {
		c.pool.Exec(context.Background(), `DELETE FROM blobs WHERE key = $1`, key)
	})

	_, err = c.Get(ctx, key)
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, c.Put(ctx, key, []byte(`{"a":1}`)))
	require.NoError(t, c.Put(ctx, key, []byte(`{"a":2}`)))

	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":2}`, string(got))
}
