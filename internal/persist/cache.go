package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/quytran/folio/internal/content"
)

// cacheFileName is versioned: when the document schema changes incompatibly
// the suffix is bumped, so old caches miss by name instead of needing a
// migration of the cache layer itself.
const cacheFileName = "folio_content_v3.json"

// Cache is the local write-through mirror of the content document, a single
// JSON file in the configured directory.
type Cache struct {
	dir string
}

// NewCache creates a cache rooted at dir. The directory is created lazily on
// first write.
func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

// Path returns the cache file location.
func (c *Cache) Path() string {
	return filepath.Join(c.dir, cacheFileName)
}

// Load reads and migrates the cached document. The boolean is false when no
// cache file exists; a present but unparseable file returns an error.
func (c *Cache) Load() (content.Document, bool, error) {
	data, err := os.ReadFile(c.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return content.Document{}, false, nil
		}
		return content.Document{}, false, fmt.Errorf("failed to read cache file: %w", err)
	}
	doc, err := content.Decode(data)
	if err != nil {
		return content.Document{}, false, err
	}
	return doc, true, nil
}

// Store writes the document to the cache file, creating the directory if
// needed.
func (c *Cache) Store(doc content.Document) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	if err := os.WriteFile(c.Path(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}

// Clear deletes the cache file. A missing file is not an error.
func (c *Cache) Clear() error {
	if err := os.Remove(c.Path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete cache file: %w", err)
	}
	return nil
}
