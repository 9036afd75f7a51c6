package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"hearth/internal/store"
)

const (
	getBlobSQL = `SELECT value FROM blobs WHERE key = $1`
	putBlobSQL = `
INSERT INTO blobs (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
)

func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := c.pool.QueryRow(ctx, getBlobSQL, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading blob %s: %w", key, err)
	}
	return value, nil
}

func (c *Client) Put(ctx context.Context, key string, value []byte) error {
	if _, err := c.pool.Exec(ctx, putBlobSQL, key, value); err != nil {
		return fmt.Errorf("writing blob %s: %w", key, err)
	}
	return nil
}
