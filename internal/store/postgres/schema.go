package postgres

import (
	"context"
	"fmt"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS blobs (
    key        TEXT PRIMARY KEY,
    value      BYTEA NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

func (c *Client) ensureSchema(ctx context.Context) error {
	if _, err := c.pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("creating postgres schema: %w", err)
	}
	return nil
}
