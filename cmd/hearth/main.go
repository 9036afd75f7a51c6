package main

import (
	"os"

	"github.com/spf13/cobra"

	"hearth/internal/config"
)

func main() {
	root := &cobra.Command{
		Use:          "hearth",
		Short:        "Family coordination dashboard",
		SilenceUsage: true,
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().String("config", config.DefaultPath, "Path to hearth.yaml")
	root.AddCommand(initCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(webCmd())
	root.AddCommand(showCmd())
	root.AddCommand(chatCmd())
	root.AddCommand(memoryCmd())
	root.AddCommand(assistantCmd())
	root.AddCommand(importCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(versionCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
