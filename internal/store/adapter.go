package store

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"hearth/internal/metrics"
)

// Adapter turns backend failures into absent reads and logged writes.
// Neither method returns an error to the caller.
type Adapter struct {
	backend Backend
	logger  *zap.Logger
}

func NewAdapter(backend Backend, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{backend: backend, logger: logger.Named("store")}
}

// Load returns the stored bytes, or false when the key is missing or the
// backend is unavailable.
func (a *Adapter) Load(ctx context.Context, key string) ([]byte, bool) {
	value, err := a.backend.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil, false
	}
	if err != nil {
		a.logger.Warn("load failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return value, true
}

// Save writes value under key. Failures are logged and dropped.
func (a *Adapter) Save(ctx context.Context, key string, value []byte) {
	if err := a.backend.Put(ctx, key, value); err != nil {
		metrics.StoreSaveFailures.Inc()
		a.logger.Error("save failed",
			zap.String("key", key),
			zap.Int("bytes", len(value)),
			zap.Error(err),
		)
	}
}

func (a *Adapter) Close(ctx context.Context) error {
	return a.backend.Close(ctx)
}
