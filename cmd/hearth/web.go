package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"hearth/internal/web"
)

func webCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "web",
		Short: "Serve the dashboard JSON API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWeb(cmd, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address; server.addr from the config when empty")
	return cmd
}

func runWeb(cmd *cobra.Command, addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := openApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	if addr == "" {
		addr = a.cfg.Server.Addr
	}
	server := web.New(a.state, a.assistant, web.Options{
		Household:    a.cfg.Household,
		Version:      version,
		PollInterval: a.cfg.Scoreboard.PollInterval,
		GameDuration: a.cfg.Scoreboard.GameDuration,
		Logger:       a.logger,
	})
	return server.Serve(ctx, addr)
}
