package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hearth/internal/album"
	"hearth/internal/model"
)

func memoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memory",
		Short: "Browse and add photo memories",
	}
	cmd.AddCommand(memoryListCmd())
	cmd.AddCommand(memoryAddCmd())
	return cmd
}

func memoryListCmd() *cobra.Command {
	var order string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the memories album",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, string(model.ScreenMemories), "", order, "")
		},
	}
	cmd.Flags().StringVar(&order, "order", "newest", "newest or oldest")
	return cmd
}

func memoryAddCmd() *cobra.Command {
	var as string
	var note string
	var date string
	cmd := &cobra.Command{
		Use:   "add IMAGE",
		Short: "Add a photo with a generated story",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if as == "" {
				return fmt.Errorf("--as is required")
			}
			return runMemoryAdd(cmd, args[0], as, note, date)
		},
	}
	cmd.Flags().StringVar(&as, "as", "", "User id of the uploader")
	cmd.Flags().StringVar(&note, "note", "", "What the photo shows")
	cmd.Flags().StringVar(&date, "date", "", "When the photo was taken")
	return cmd
}

func runMemoryAdd(cmd *cobra.Command, path, as, note, date string) error {
	ctx := context.Background()

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > album.MaxImageBytes {
		return album.ErrImageTooLarge
	}
	image, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	a, err := openApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	if err := a.login(as); err != nil {
		return err
	}
	a.state.Navigate(model.ScreenMemories)
	visit := a.state.Visit()

	memory, err := album.New(a.assistant, a.state, a.logger).Add(ctx, album.Request{
		Image:        image,
		Prompt:       note,
		Date:         date,
		UploadedByID: as,
	}, a.state.Alive(visit))
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Added %s\n\n%s\n", memory.ID, memory.Story)
	return nil
}
