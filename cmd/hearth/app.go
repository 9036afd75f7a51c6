package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hearth/internal/assistant"
	"hearth/internal/config"
	"hearth/internal/logging"
	"hearth/internal/state"
	"hearth/internal/store"
)

// app is what every command that touches household data needs.
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	backend   store.Backend
	state     *state.Container
	assistant assistant.Service
}

func openApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	backend, err := openBackend(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	container := state.New(store.NewAdapter(backend, logger),
		state.WithKey(cfg.Storage.Key),
		state.WithLogger(logger),
		state.WithVaultPassphrase(cfg.Vault.Passphrase),
	)
	container.Initialize(ctx)

	return &app{
		cfg:       cfg,
		logger:    logger,
		backend:   backend,
		state:     container,
		assistant: assistant.New(cfg, logger),
	}, nil
}

func (a *app) Close(ctx context.Context) {
	if err := a.backend.Close(ctx); err != nil {
		a.logger.Warn("closing store", zap.Error(err))
	}
	_ = a.logger.Sync()
}

// login selects the user with id, if id is set.
func (a *app) login(id string) error {
	if id == "" {
		return nil
	}
	user, ok := a.state.Data().User(id)
	if !ok {
		return fmt.Errorf("unknown user %q", id)
	}
	a.state.SelectUser(user)
	return nil
}
