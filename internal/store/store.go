// Package store persists the household aggregate as a single opaque blob
// under a fixed key.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Backend when the key has never been written.
var ErrNotFound = errors.New("store: key not found")

type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close(ctx context.Context) error
}
