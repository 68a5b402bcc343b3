// Package config provides environment-based configuration for the folio
// server: listen address, database connection, cache location, and the admin
// gate settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds the server configuration. DatabaseURL may be empty: the
// server then runs in local-only mode from the cache and built-in defaults,
// with asset uploads disabled.
type Config struct {
	Port          int
	DatabaseURL   string
	CacheDir      string
	PublicBaseURL string

	// AdminPasswordHash is the bcrypt hash the admin login compares
	// against. Empty disables admin mode; the public site still works.
	AdminPasswordHash string
}

// Load reads the configuration from environment variables, applying
// defaults for everything optional.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		CacheDir:          os.Getenv("FOLIO_CACHE_DIR"),
		PublicBaseURL:     os.Getenv("FOLIO_PUBLIC_BASE_URL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		Port:              8080,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT out of range: %d", cfg.Port)
	}

	if cfg.CacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve cache directory (set FOLIO_CACHE_DIR): %w", err)
		}
		cfg.CacheDir = filepath.Join(base, "folio")
	}

	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}

	return cfg, nil
}
