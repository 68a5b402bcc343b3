// Package types provides request and response payloads for the folio HTTP
// API.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/quytran/folio/internal/content"
)

// AdminLoginRequest is the shared-password admin gate. There are no user
// accounts; a correct password yields a session token.
type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// AdminLoginResponse carries the session token for subsequent edits.
type AdminLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// FieldUpdateRequest sets a single named field to a new string value. Used
// for profile, social, config, and per-index list element updates.
type FieldUpdateRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// ToggleRequest flips a boolean display setting.
type ToggleRequest struct {
	Value bool `json:"value"`
}

// MoveRequest swaps a list element with its neighbor.
type MoveRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

// GalleryUpdateRequest replaces one gallery slot's image URL.
type GalleryUpdateRequest struct {
	URL string `json:"url" validate:"required"`
}

// StylePatchRequest shallow-merges a style override for a text element.
type StylePatchRequest struct {
	Style content.TextStyle `json:"style"`
}

// UploadResponse returns the resolvable URL of a stored asset.
type UploadResponse struct {
	URL string `json:"url"`
}

// SaveResponse reports where the document landed.
type SaveResponse struct {
	Saved  bool `json:"saved"`
	Remote bool `json:"remote"`
}

var validate = validator.New()

// Validate validates the AdminLoginRequest using the validator.
func (r *AdminLoginRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the FieldUpdateRequest using the validator.
func (r *FieldUpdateRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the MoveRequest using the validator.
func (r *MoveRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the GalleryUpdateRequest using the validator.
func (r *GalleryUpdateRequest) Validate() error {
	return validate.Struct(r)
}
