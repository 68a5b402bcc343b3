package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quytran/folio/internal/config"
	"github.com/quytran/folio/internal/server"
	"github.com/quytran/folio/internal/store"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the content server",
	Long:  `Start an HTTP server that serves the portfolio document and exposes the admin editing endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	ctx := context.Background()
	gateway, pg := buildGateway(ctx, cfg)
	if pg != nil {
		defer pg.Close()
	}

	docStore := store.New(gateway.Load(ctx))

	srv, err := server.New(cfg, gateway, docStore)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
