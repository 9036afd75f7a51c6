package main

import (
	"context"
	"fmt"

	"hearth/internal/config"
	"hearth/internal/store"
	"hearth/internal/store/filestore"
	"hearth/internal/store/memstore"
	"hearth/internal/store/postgres"
	"hearth/internal/store/sqlite"
)

func openBackend(ctx context.Context, cfg config.StorageConfig) (store.Backend, error) {
	switch cfg.Driver {
	case "sqlite":
		return sqlite.New(ctx, cfg.DSN)
	case "postgres":
		return postgres.New(ctx, cfg.DSN)
	case "file":
		return filestore.New(cfg.DSN)
	case "memory":
		return memstore.New(), nil
	}
	return nil, fmt.Errorf("unknown storage driver: %q", cfg.Driver)
}
