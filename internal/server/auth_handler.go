// Package server provides the HTTP REST API for the folio content service.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/quytran/folio/internal/config"
	"github.com/quytran/folio/internal/types"
)

// AuthHandler handles the shared-password admin gate. There are no user
// accounts; a correct password yields a short-lived session token.
type AuthHandler struct {
	passwordConfig *config.PasswordConfig
	jwtService     *JWTService
	adminHash      string
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(passwordConfig *config.PasswordConfig, jwtService *JWTService, adminHash string) *AuthHandler {
	return &AuthHandler{
		passwordConfig: passwordConfig,
		jwtService:     jwtService,
		adminHash:      adminHash,
	}
}

// Login handles admin login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		verr := &ErrValidation{Message: "password is required"}
		http.Error(w, verr.Error(), HTTPStatus(verr))
		return
	}

	if !h.passwordConfig.VerifyPassword(req.Password, h.adminHash) {
		err := &ErrInvalidCredentials{}
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(uuid.New())
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	response := types.AdminLoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		// Log error but response already sent
		return
	}
}
