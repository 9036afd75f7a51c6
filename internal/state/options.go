package state

import (
	"time"

	"go.uber.org/zap"
)

// DefaultKey is the storage key the aggregate is saved under.
const DefaultKey = "hearthAppData"

type Option func(*Container)

func WithKey(key string) Option {
	return func(c *Container) { c.key = key }
}

func WithClock(now func() time.Time) Option {
	return func(c *Container) { c.now = now }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Container) { c.logger = logger }
}

// WithVaultPassphrase sets the phrase UnlockVault compares against.
func WithVaultPassphrase(passphrase string) Option {
	return func(c *Container) { c.passphrase = passphrase }
}
