package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quytran/folio/internal/config"
	"github.com/quytran/folio/internal/content"
	"github.com/quytran/folio/internal/schemas"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore the content document from a JSON backup",
	Long:  `Validate a previously exported backup, migrate it to the current document shape, and persist it through the gateway.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	if err := schemas.ValidateImport(data); err != nil {
		return err
	}

	doc, err := content.Decode(data)
	if err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx := context.Background()
	gateway, pg := buildGateway(ctx, cfg)
	if pg != nil {
		defer pg.Close()
	}

	if err := gateway.Save(ctx, doc); err != nil {
		return err
	}

	if gateway.RemoteConfigured() {
		fmt.Println("Imported document saved to the remote store and local cache")
	} else {
		fmt.Println("Imported document saved to the local cache")
	}
	return nil
}
