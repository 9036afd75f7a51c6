package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hearth/internal/store"
)

const (
	getBlobSQL = `SELECT value FROM blobs WHERE key = ?`
	putBlobSQL = `
INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, datetime('now'))
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := c.db.QueryRowContext(ctx, getBlobSQL, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading blob %s: %w", key, err)
	}
	return value, nil
}

func (c *Client) Put(ctx context.Context, key string, value []byte) error {
	if _, err := c.db.ExecContext(ctx, putBlobSQL, key, value); err != nil {
		return fmt.Errorf("writing blob %s: %w", key, err)
	}
	return nil
}
