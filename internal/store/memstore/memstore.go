// Package memstore is an in-memory Backend for tests and ephemeral runs.
package memstore

import (
	"context"
	"slices"
	"sync"

	"hearth/internal/store"
)

var _ store.Backend = (*Store)(nil)

type Store struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func New() *Store {
	return &Store{values: map[string][]byte{}}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	value, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return nil, store.ErrNotFound
	}
	return slices.Clone(value), nil
}

func (s *Store) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	s.values[key] = slices.Clone(value)
	s.mu.Unlock()
	return nil
}

func (s *Store) Close(context.Context) error {
	return nil
}
