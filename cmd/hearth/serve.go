package main

import (
	"context"

	"github.com/spf13/cobra"

	"hearth/internal/mcp"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		RunE:  runServe,
	}
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := openApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	server := mcp.NewServer(a.state, a.assistant, mcp.Options{
		Household:    a.cfg.Household,
		Version:      version,
		GameDuration: a.cfg.Scoreboard.GameDuration,
		Logger:       a.logger,
	})
	return server.Run(ctx, &sdk.StdioTransport{})
}
