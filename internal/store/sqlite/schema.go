package sqlite

import (
	"context"
	"fmt"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS blobs (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);`

func (c *Client) ensureSchema(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, schemaDDL); err != nil {
		return fmt.Errorf("creating sqlite schema: %w", err)
	}
	return nil
}
