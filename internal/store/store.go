package store

import (
	"sync"

	"github.com/quytran/folio/internal/content"
)

// Store owns the current content document for the session. Edits go through
// Apply so the document is only ever swapped as a whole; the transforms in
// this package never mutate a document in place, so readers holding a copy
// are unaffected by later edits.
type Store struct {
	mu  sync.RWMutex
	doc content.Document
}

// New creates a store seeded with the given document.
func New(doc content.Document) *Store {
	return &Store{doc: doc}
}

// Document returns the current document value.
func (s *Store) Document() content.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// Replace swaps in a whole new document, used by load, reset, and import.
func (s *Store) Replace(doc content.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
}

// Apply runs an edit transform against the current document and installs the
// result. If the transform errors, the document is left unchanged.
func (s *Store) Apply(fn func(content.Document) (content.Document, error)) (content.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.doc)
	if err != nil {
		return s.doc, err
	}
	s.doc = next
	return next, nil
}
