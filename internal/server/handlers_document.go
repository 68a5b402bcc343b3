// Package server provides the HTTP REST API for the folio content service.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/quytran/folio/internal/content"
	"github.com/quytran/folio/internal/schemas"
	"github.com/quytran/folio/internal/types"
)

// maxDocumentBytes bounds whole-document request bodies (replace, import).
const maxDocumentBytes = 10 << 20

// handleGetDocument returns the current in-memory document.
func (s *Server) handleGetDocument(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Document())
}

// handleReplaceDocument swaps the whole document and persists it. The body
// is run through migration, so partial or older-shape documents are
// accepted. The replacement sticks even when the remote save fails; the
// cache write has already happened by then.
func (s *Server) handleReplaceDocument(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	doc, err := content.Decode(data)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid document: "+err.Error())
		return
	}

	s.store.Replace(doc)
	if err := s.gateway.Save(r.Context(), doc); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleSaveDocument persists the current document through the gateway:
// local cache first, then the remote store when one is configured.
func (s *Server) handleSaveDocument(w http.ResponseWriter, r *http.Request) {
	doc := s.store.Document()
	if err := s.gateway.Save(r.Context(), doc); err != nil {
		// The cache write has already happened; the error reports the
		// remote tier with its guidance message.
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.SaveResponse{
		Saved:  true,
		Remote: s.gateway.RemoteConfigured(),
	})
}

// handleResetDocument discards the local cache and restores the built-in
// defaults. The remote copy is left untouched.
func (s *Server) handleResetDocument(w http.ResponseWriter, r *http.Request) {
	doc := s.gateway.Reset(r.Context())
	s.store.Replace(doc)
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleExportDocument downloads the current document as a pretty-printed
// JSON backup file.
func (s *Server) handleExportDocument(w http.ResponseWriter, _ *http.Request) {
	data, err := json.MarshalIndent(s.store.Document(), "", "  ")
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to export document")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="folio_content_backup.json"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		// Response already started
		return
	}
}

// handleImportDocument restores a previously exported backup: structural
// validation, migration, replace, then persist.
func (s *Server) handleImportDocument(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := schemas.ValidateImport(data); err != nil {
		// Schema misses are 422, unparseable bodies 400. Either way the
		// live document is untouched.
		status := http.StatusBadRequest
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			status = http.StatusUnprocessableEntity
		}
		s.errorResponse(w, status, err.Error())
		return
	}

	doc, err := content.Decode(data)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid document: "+err.Error())
		return
	}

	s.store.Replace(doc)
	if err := s.gateway.Save(r.Context(), doc); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, doc)
}
