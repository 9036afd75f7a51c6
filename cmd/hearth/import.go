package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hearth/internal/dataset"
	"hearth/internal/validate"
)

var importForce bool

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the stored household with a YAML or JSON dataset",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}
	cmd.Flags().BoolVar(&importForce, "force", false, "Import even when the dataset has integrity errors")
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	data, err := dataset.ParseFile(args[0])
	if err != nil {
		return err
	}

	report := validate.Run(data)
	if errs := report.Errors(); len(errs) > 0 {
		fmt.Fprintf(os.Stdout, "Errors (%d):\n", len(errs))
		printIssues(os.Stdout, errs)
		if !importForce {
			return fmt.Errorf("dataset has integrity errors; use --force to import anyway")
		}
	}

	a, err := openApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	a.state.Replace(ctx, data)
	fmt.Fprintf(os.Stdout, "Imported %d users, %d events, %d messages, %d memories.\n",
		len(data.Users), len(data.CalendarEvents), len(data.ChatMessages), len(data.Memories))
	return nil
}

func exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the stored household as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, out)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Output file; stdout when empty")
	return cmd
}

func runExport(cmd *cobra.Command, out string) error {
	ctx := context.Background()

	a, err := openApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	encoded, err := json.MarshalIndent(a.state.Data(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding data: %w", err)
	}
	encoded = append(encoded, '\n')
	if out == "" {
		_, err = os.Stdout.Write(encoded)
		return err
	}
	if err := os.WriteFile(out, encoded, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return nil
}
