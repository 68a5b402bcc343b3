// Package server provides the HTTP REST API for the folio content service.
package server

import (
	"errors"
	"net/http"

	"github.com/quytran/folio/internal/persist"
	"github.com/quytran/folio/internal/schemas"
)

// ErrInvalidCredentials indicates a wrong admin password
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid password"
}

// ErrAdminDisabled indicates no admin password hash is configured, so admin
// mode cannot be entered at all
type ErrAdminDisabled struct{}

func (e *ErrAdminDisabled) Error() string {
	return "admin mode is not configured on this server"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return "validation error: " + e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error. The
// persistence errors arrive wrapped, so matching goes through errors.As.
func HTTPStatus(err error) int {
	var permErr *persist.PermissionError
	var provErr *persist.NotProvisionedError
	var validationErr *schemas.ValidationError
	var invalidCreds *ErrInvalidCredentials
	var adminDisabled *ErrAdminDisabled
	var reqValidation *ErrValidation

	switch {
	case errors.As(err, &invalidCreds):
		return http.StatusUnauthorized
	case errors.As(err, &adminDisabled):
		return http.StatusForbidden
	case errors.As(err, &permErr):
		return http.StatusForbidden
	case errors.As(err, &provErr):
		return http.StatusServiceUnavailable
	case errors.Is(err, persist.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &reqValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
