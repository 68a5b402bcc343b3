// Package server provides the HTTP REST API for the folio content service.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/quytran/folio/internal/content"
	"github.com/quytran/folio/internal/edit"
	"github.com/quytran/folio/internal/store"
	"github.com/quytran/folio/internal/types"
)

// applyEdit runs a pure document transform against the store and returns the
// resulting document. Transform errors (unknown field, index out of range)
// are client errors.
func (s *Server) applyEdit(w http.ResponseWriter, fn func(content.Document) (content.Document, error)) {
	doc, err := s.store.Apply(fn)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// pathIndex parses a numeric path segment.
func pathIndex(r *http.Request, name string) (int, error) {
	return strconv.Atoi(r.PathValue(name))
}

// decodeBody decodes a JSON request body into req, writing a 400 on failure.
// Reports whether decoding succeeded.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// handleSetProfileField sets one top-level profile field by its JSON name.
func (s *Server) handleSetProfileField(w http.ResponseWriter, r *http.Request) {
	var req types.FieldUpdateRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.applyEdit(w, func(doc content.Document) (content.Document, error) {
		return store.SetProfileField(doc, req.Field, req.Value)
	})
}

// handleSetSocialField sets one social link field.
func (s *Server) handleSetSocialField(w http.ResponseWriter, r *http.Request) {
	var req types.FieldUpdateRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.applyEdit(w, func(doc content.Document) (content.Document, error) {
		return store.SetSocialField(doc, req.Field, req.Value)
	})
}

// handleSetConfigText sets one textual display setting.
func (s *Server) handleSetConfigText(w http.ResponseWriter, r *http.Request) {
	var req types.FieldUpdateRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.applyEdit(w, func(doc content.Document) (content.Document, error) {
		return store.SetConfigText(doc, req.Field, req.Value)
	})
}

// handleSetHeroSwap toggles the hero layout orientation.
func (s *Server) handleSetHeroSwap(w http.ResponseWriter, r *http.Request) {
	var req types.ToggleRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	s.applyEdit(w, func(doc content.Document) (content.Document, error) {
		return store.SetHeroLayoutSwapped(doc, req.Value), nil
	})
}

// handleAppendNavItem appends a blank navigation entry.
func (s *Server) handleAppendNavItem(w http.ResponseWriter, _ *http.Request) {
	s.applyEdit(w, func(doc content.Document) (content.Document, error) {
		return store.AppendNavItem(doc), nil
	})
}

// handleSetNavItemField updates one field of a navigation entry.
func (s *Server) handleSetNavItemField(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r, "index")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid index")
		return
	}
	var req types.FieldUpdateRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.applyEdit(w, func(doc content.Document) (content.Document, error) {
		return store.SetNavItemField(doc, index, req.Field, req.Value)
	})
}

// handleRemoveNavItem deletes a navigation entry.
func (s *Server) handleRemoveNavItem(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r, "index")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid index")
		return
	}
	s.applyEdit(w, func(doc content.Document) (content.Document, error) {
		return store.RemoveNavItem(doc, index)
	})
}

// handleMoveNavItem swaps a navigation entry with its neighbor.
func (s *Server) handleMoveNavItem(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r, "index")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid index")
		return
	}
	var req types.MoveRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.applyEdit(w, func(doc content.Document) (content.Document, error) {
		dir, err := store.ParseDirection(req.Direction)
		if err != nil {
			return doc, err
		}
		return store.MoveNavItem(doc, index, dir)
	})
}

// handleAppendHighlight appends a blank highlight.
func (s *Server) handleAppendHighlight(w http.ResponseWriter, _ *http.Request) {
	s.applyEdit(w, func(doc content.Document) (content.Document, error) {
		return store.AppendHighlight(doc), nil
	})
}

// handleSetHighlightField updates one field of a highlight.
func (s *Server) handleSetHighlightField(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r, "index")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid index")
		return
	}
	var req types.FieldUpdateRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.applyEdit(w, func(doc content.Document) (content.Document, error) {
		return store.SetHighlightField(doc, index, req.Field, req.Value)
	})
}

// handleRemoveHighlight deletes a highlight.
func (s *Server) handleRemoveHighlight(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r, "index")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid index")
		return
	}
	s.applyEdit(w, func(doc content.Document) (content.Document, error) {
		return store.RemoveHighlight(doc, index)
	})
}

// handleMoveHighlight swaps a highlight with its neighbor.
func (s *Server) handleMoveHighlight(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r, "index")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid index")
		return
	}
	var req types.MoveRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.applyEdit(w, func(doc content.Document) (content.Document, error) {
		dir, err := store.ParseDirection(req.Direction)
		if err != nil {
			return doc, err
		}
		return store.MoveHighlight(doc, index, dir)
	})
}

// handleAppendPortfolioItem appends a fresh portfolio item with a unique
// time-based ID and a placeholder gallery.
func (s *Server) handleAppendPortfolioItem(w http.ResponseWriter, _ *http.Request) {
	s.applyEdit(w, func(doc content.Document) (content.Document, error) {
		return store.AppendPortfolioItem(doc, time.Now()), nil
	})
}

// handleSetPortfolioField updates one field of a portfolio item.
func (s *Server) handleSetPortfolioField(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r, "index")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid index")
		return
	}
	var req types.FieldUpdateRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.applyEdit(w, func(doc content.Document) (content.Document, error) {
		return store.SetPortfolioField(doc, index, req.Field, req.Value)
	})
}

// handleRemovePortfolioItem deletes a portfolio item.
func (s *Server) handleRemovePortfolioItem(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r, "index")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid index")
		return
	}
	s.applyEdit(w, func(doc content.Document) (content.Document, error) {
		return store.RemovePortfolioItem(doc, index)
	})
}

// handleMovePortfolioItem swaps a portfolio item with its neighbor.
func (s *Server) handleMovePortfolioItem(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r, "index")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid index")
		return
	}
	var req types.MoveRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.applyEdit(w, func(doc content.Document) (content.Document, error) {
		dir, err := store.ParseDirection(req.Direction)
		if err != nil {
			return doc, err
		}
		return store.MovePortfolioItem(doc, index, dir)
	})
}

// handleAppendGalleryImage appends a placeholder slot to an item's gallery.
func (s *Server) handleAppendGalleryImage(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r, "index")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid index")
		return
	}
	s.applyEdit(w, func(doc content.Document) (content.Document, error) {
		return store.AppendGalleryImage(doc, index)
	})
}

// handleSetGalleryImage replaces one gallery slot's image URL.
func (s *Server) handleSetGalleryImage(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r, "index")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid index")
		return
	}
	slot, err := pathIndex(r, "slot")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid slot")
		return
	}
	var req types.GalleryUpdateRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.applyEdit(w, func(doc content.Document) (content.Document, error) {
		return store.SetGalleryImage(doc, index, slot, req.URL)
	})
}

// handleRemoveGalleryImage deletes one gallery slot.
func (s *Server) handleRemoveGalleryImage(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r, "index")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid index")
		return
	}
	slot, err := pathIndex(r, "slot")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid slot")
		return
	}
	s.applyEdit(w, func(doc content.Document) (content.Document, error) {
		return store.RemoveGalleryImage(doc, index, slot)
	})
}

// handleMergeTextStyle shallow-merges a style override for a text element.
func (s *Server) handleMergeTextStyle(w http.ResponseWriter, r *http.Request) {
	element := r.PathValue("element")
	var req types.StylePatchRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := edit.ValidateStylePatch(req.Style); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.applyEdit(w, func(doc content.Document) (content.Document, error) {
		return store.MergeTextStyle(doc, element, req.Style), nil
	})
}

// handleClearTextStyle drops a text element's style override entirely.
func (s *Server) handleClearTextStyle(w http.ResponseWriter, r *http.Request) {
	element := r.PathValue("element")
	s.applyEdit(w, func(doc content.Document) (content.Document, error) {
		return store.ClearTextStyle(doc, element), nil
	})
}
