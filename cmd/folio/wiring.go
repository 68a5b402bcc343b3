package main

import (
	"context"
	"log"

	"github.com/quytran/folio/internal/config"
	"github.com/quytran/folio/internal/persist"
)

// buildGateway wires the persistence gateway from the configuration. A
// missing or unreachable database degrades to local-only mode instead of
// failing; the classified error carries the operator guidance.
func buildGateway(ctx context.Context, cfg *config.Config) (*persist.Gateway, *persist.PG) {
	cache := persist.NewCache(cfg.CacheDir)

	if cfg.DatabaseURL == "" {
		log.Printf("DATABASE_URL not set, running local-only from %s", cache.Path())
		return persist.NewGateway(nil, nil, cache, cfg.PublicBaseURL), nil
	}

	pg, err := persist.ConnectPG(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Printf("database connection failed, running local-only: %v", err)
		return persist.NewGateway(nil, nil, cache, cfg.PublicBaseURL), nil
	}

	if err := pg.EnsureSchema(ctx); err != nil {
		log.Printf("database unusable, running local-only: %v", err)
		pg.Close()
		return persist.NewGateway(nil, nil, cache, cfg.PublicBaseURL), nil
	}

	return persist.NewGateway(pg, pg, cache, cfg.PublicBaseURL), pg
}
