package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ITInventory/internal/cli"
	"ITInventory/internal/config"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// env + .env; flags are bound by the command tree
	cfg := config.NewConfig()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := cli.NewApp(cfg, nil)
	root := cli.NewRootCmd(app)
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "IT Inventory\nVersion: %s\nBuild date: %s\n", version, buildDate)
		},
	})

	err := root.ExecuteContext(ctx)
	if log := app.Logger(); log != nil {
		_ = log.Sync()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
