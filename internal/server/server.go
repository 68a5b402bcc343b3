// Package server provides the HTTP REST API for the folio content service.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quytran/folio/internal/config"
	"github.com/quytran/folio/internal/persist"
	"github.com/quytran/folio/internal/server/middleware"
	"github.com/quytran/folio/internal/store"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       *store.Store
	gateway     *persist.Gateway
	jwtService  *JWTService // nil when admin mode is disabled
	authHandler *AuthHandler
}

// New creates a new server instance around an already loaded document store
// and persistence gateway.
func New(cfg *config.Config, gateway *persist.Gateway, docStore *store.Store) (*Server, error) {
	s := &Server{
		store:   docStore,
		gateway: gateway,
	}

	// Admin mode needs a password hash and a JWT secret. Without the hash
	// the site is read-only and every mutating route rejects.
	var tokenValidator middleware.TokenValidator = disabledValidator{}
	if cfg.AdminPasswordHash != "" {
		passwordConfig, err := config.NewPasswordConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create password config: %w", err)
		}

		jwtConfig, err := config.NewJWTConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
		s.jwtService = NewJWTService(jwtConfig)
		tokenValidator = s.jwtService.AsTokenValidator()

		s.authHandler = NewAuthHandler(passwordConfig, s.jwtService, cfg.AdminPasswordHash)
	}

	requireAdmin := middleware.RequireAdmin(tokenValidator)
	admin := func(h http.HandlerFunc) http.Handler {
		return requireAdmin(h)
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /admin/login", s.handleLogin)

	// Whole-document endpoints
	mux.HandleFunc("GET /document", s.handleGetDocument)
	mux.Handle("PUT /document", admin(s.handleReplaceDocument))
	mux.Handle("POST /document/save", admin(s.handleSaveDocument))
	mux.Handle("POST /document/reset", admin(s.handleResetDocument))
	mux.Handle("GET /document/export", admin(s.handleExportDocument))
	mux.Handle("POST /document/import", admin(s.handleImportDocument))

	// Field-scoped edit endpoints
	mux.Handle("PUT /document/profile", admin(s.handleSetProfileField))
	mux.Handle("PUT /document/social", admin(s.handleSetSocialField))
	mux.Handle("PUT /document/config", admin(s.handleSetConfigText))
	mux.Handle("PUT /document/config/hero-swap", admin(s.handleSetHeroSwap))

	mux.Handle("POST /document/nav", admin(s.handleAppendNavItem))
	mux.Handle("PUT /document/nav/{index}", admin(s.handleSetNavItemField))
	mux.Handle("DELETE /document/nav/{index}", admin(s.handleRemoveNavItem))
	mux.Handle("POST /document/nav/{index}/move", admin(s.handleMoveNavItem))

	mux.Handle("POST /document/highlights", admin(s.handleAppendHighlight))
	mux.Handle("PUT /document/highlights/{index}", admin(s.handleSetHighlightField))
	mux.Handle("DELETE /document/highlights/{index}", admin(s.handleRemoveHighlight))
	mux.Handle("POST /document/highlights/{index}/move", admin(s.handleMoveHighlight))

	mux.Handle("POST /document/portfolio", admin(s.handleAppendPortfolioItem))
	mux.Handle("PUT /document/portfolio/{index}", admin(s.handleSetPortfolioField))
	mux.Handle("DELETE /document/portfolio/{index}", admin(s.handleRemovePortfolioItem))
	mux.Handle("POST /document/portfolio/{index}/move", admin(s.handleMovePortfolioItem))
	mux.Handle("POST /document/portfolio/{index}/gallery", admin(s.handleAppendGalleryImage))
	mux.Handle("PUT /document/portfolio/{index}/gallery/{slot}", admin(s.handleSetGalleryImage))
	mux.Handle("DELETE /document/portfolio/{index}/gallery/{slot}", admin(s.handleRemoveGalleryImage))

	mux.Handle("PUT /document/styles/{element}", admin(s.handleMergeTextStyle))
	mux.Handle("DELETE /document/styles/{element}", admin(s.handleClearTextStyle))

	// Assets
	mux.Handle("POST /assets", admin(s.handleUploadAsset))
	mux.Handle("GET /assets", admin(s.handleListAssets))
	mux.HandleFunc("GET /assets/{name}", s.handleGetAsset)

	// Composed editor view
	mux.HandleFunc("GET /editor/fields", s.handleEditorFields)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// disabledValidator rejects every token. Used when admin mode is off.
type disabledValidator struct{}

func (disabledValidator) ValidateToken(string) (middleware.SessionIDGetter, error) {
	return nil, fmt.Errorf("admin mode is disabled")
}

// Handler returns the root handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleLogin handles admin login requests.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if s.authHandler == nil {
		err := &ErrAdminDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.authHandler.Login(w, r)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
