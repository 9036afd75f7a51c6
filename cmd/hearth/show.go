package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hearth/internal/model"
	"hearth/internal/router"
	"hearth/internal/screens"
)

func showCmd() *cobra.Command {
	var screen string
	var as string
	var order string
	var passphrase string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a screen",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, screen, as, order, passphrase)
		},
	}
	cmd.Flags().StringVar(&screen, "screen", "dashboard", "Screen: dashboard, care-circle, projects, pet-baby-log, vault or memories")
	cmd.Flags().StringVar(&as, "as", "", "User id to view as")
	cmd.Flags().StringVar(&order, "order", "newest", "Memories order: newest or oldest")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "Vault passphrase")
	return cmd
}

func runShow(cmd *cobra.Command, screenName, as, orderName, passphrase string) error {
	ctx := context.Background()

	target, err := model.ParseScreen(screenName)
	if err != nil {
		return err
	}
	order, err := model.ParseMemoryOrder(orderName)
	if err != nil {
		return err
	}

	a, err := openApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	if err := a.login(as); err != nil {
		return err
	}
	a.state.Navigate(target)
	if passphrase != "" && !a.state.UnlockVault(passphrase) {
		fmt.Fprintln(os.Stderr, "Incorrect passphrase.")
	}

	view := router.Route(a.state.Session(), a.state.Data(), router.WithMemoryOrder(order))
	return screens.Render(os.Stdout, view)
}
