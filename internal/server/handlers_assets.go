// Package server provides the HTTP REST API for the folio content service.
package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/quytran/folio/internal/persist"
	"github.com/quytran/folio/internal/types"
)

// maxAssetBytes bounds a single uploaded file.
const maxAssetBytes = 32 << 20

// handleUploadAsset stores a multipart file upload in the blob store and
// returns its resolvable URL.
func (s *Server) handleUploadAsset(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAssetBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAssetBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read file")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	url, err := s.gateway.UploadAsset(r.Context(), header.Filename, contentType, data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, types.UploadResponse{URL: url})
}

// handleListAssets returns the URLs of previously uploaded assets, newest
// first, for the pick-existing-image dialog.
func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	urls, err := s.gateway.ListAssets(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if urls == nil {
		urls = []string{}
	}
	s.jsonResponse(w, http.StatusOK, map[string][]string{"assets": urls})
}

// handleGetAsset serves a stored blob by name. This is the public side of
// the asset URLs handed out by uploads.
func (s *Server) handleGetAsset(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		s.errorResponse(w, http.StatusBadRequest, "Asset name is required")
		return
	}

	data, contentType, err := s.gateway.GetAsset(r.Context(), name)
	if err != nil {
		if errors.Is(err, persist.ErrNotConfigured) {
			s.errorResponse(w, http.StatusNotFound, "Asset not found")
			return
		}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if data == nil {
		s.errorResponse(w, http.StatusNotFound, "Asset not found")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		// Response already started
		return
	}
}
