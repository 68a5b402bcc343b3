package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quytran/folio/internal/config"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the local cache and restore built-in defaults",
	Long:  `Delete the locally cached content document. The remote copy, if any, is left untouched and will be picked up again on the next load.`,
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx := context.Background()
	gateway, pg := buildGateway(ctx, cfg)
	if pg != nil {
		defer pg.Close()
	}

	gateway.Reset(ctx)
	fmt.Println("Local cache cleared")
	return nil
}
