package persist

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/quytran/folio/internal/content"
)

// assetPrefix is the URL path under which the server resolves stored assets.
const assetPrefix = "/assets/"

// Gateway is the persistence gateway for the content document and its
// assets. The remote stores may be nil, in which case the gateway runs in
// local-only mode: loads fall through to the cache and defaults, and asset
// operations report ErrNotConfigured.
type Gateway struct {
	remote DocumentStore
	assets AssetStore
	cache  *Cache

	// publicBaseURL is the externally visible server address used to build
	// resolvable asset URLs.
	publicBaseURL string

	// saves coalesces concurrent saves of the same document, the in-flight
	// guard for rapid repeated clicks. Distinct documents never coalesce
	// because the key is derived from the serialized body.
	saves singleflight.Group

	now func() time.Time
}

// NewGateway wires a gateway. remote and assets may be nil when no database
// is configured.
func NewGateway(remote DocumentStore, assets AssetStore, cache *Cache, publicBaseURL string) *Gateway {
	return &Gateway{
		remote:        remote,
		assets:        assets,
		cache:         cache,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		now:           time.Now,
	}
}

// source is one tier of the load fallback chain.
type source struct {
	name string
	load func(ctx context.Context) (content.Document, bool, error)
}

// Load returns the current document from the first source that has one:
// remote, then local cache, then built-in defaults. Load never fails; every
// error degrades to the next tier. A remote hit refreshes the cache so the
// next offline start sees the latest content.
func (g *Gateway) Load(ctx context.Context) content.Document {
	sources := []source{
		{name: "remote", load: g.loadRemote},
		{name: "cache", load: g.loadCache},
	}
	for _, src := range sources {
		doc, ok, err := src.load(ctx)
		if err != nil {
			log.Printf("load: %s source failed, falling back: %v", src.name, err)
			continue
		}
		if ok {
			return doc
		}
	}
	return content.DefaultDocument()
}

func (g *Gateway) loadRemote(ctx context.Context) (content.Document, bool, error) {
	if g.remote == nil {
		return content.Document{}, false, nil
	}
	doc, ok, err := g.remote.Fetch(ctx)
	if err != nil || !ok {
		return content.Document{}, false, err
	}
	if err := g.cache.Store(doc); err != nil {
		log.Printf("load: failed to refresh cache: %v", err)
	}
	return doc, true, nil
}

func (g *Gateway) loadCache(ctx context.Context) (content.Document, bool, error) {
	return g.cache.Load()
}

// Save persists the document: the local cache first and unconditionally,
// then the remote store. A remote failure propagates so the caller can warn
// "saved locally but not to cloud"; the cache write has already happened by
// then. With no remote configured, a cache-only save succeeds.
func (g *Gateway) Save(ctx context.Context, doc content.Document) error {
	key, err := saveKey(doc)
	if err != nil {
		return err
	}
	_, err, _ = g.saves.Do(key, func() (interface{}, error) {
		if err := g.cache.Store(doc); err != nil {
			// Cache failure never blocks the remote write.
			log.Printf("save: cache write failed: %v", err)
		}
		if g.remote == nil {
			return nil, nil
		}
		return nil, g.remote.Put(ctx, doc)
	})
	return err
}

func saveKey(doc content.Document) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to serialize document: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// RemoteConfigured reports whether a remote document store is wired.
func (g *Gateway) RemoteConfigured() bool {
	return g.remote != nil
}

// Reset deletes the local cache and returns the built-in defaults. The
// remote store is left untouched.
func (g *Gateway) Reset(ctx context.Context) content.Document {
	if err := g.cache.Clear(); err != nil {
		log.Printf("reset: %v", err)
	}
	return content.DefaultDocument()
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9.]`)

// objectName derives the stored name for an upload: the upload timestamp
// plus the sanitized original filename.
func objectName(now time.Time, fileName string) string {
	return fmt.Sprintf("%d_%s", now.UnixMilli(), unsafeNameChars.ReplaceAllString(fileName, "_"))
}

// UploadAsset stores a blob and returns its resolvable URL. Fails with
// ErrNotConfigured when no blob store is wired.
func (g *Gateway) UploadAsset(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	if g.assets == nil {
		return "", ErrNotConfigured
	}
	name := objectName(g.now(), fileName)
	if err := g.assets.PutAsset(ctx, name, contentType, data); err != nil {
		return "", err
	}
	return g.AssetURL(name), nil
}

// ListAssets returns the URLs of previously uploaded assets, most recently
// uploaded first. Not configured yields an empty list without error;
// enumeration failures propagate, same as upload failures.
func (g *Gateway) ListAssets(ctx context.Context) ([]string, error) {
	if g.assets == nil {
		return nil, nil
	}
	assets, err := g.assets.ListAssets(ctx)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(assets))
	for _, a := range assets {
		urls = append(urls, g.AssetURL(a.Name))
	}
	return urls, nil
}

// GetAsset returns the raw blob for serving. Nil bytes mean unknown name.
func (g *Gateway) GetAsset(ctx context.Context, name string) ([]byte, string, error) {
	if g.assets == nil {
		return nil, "", ErrNotConfigured
	}
	return g.assets.GetAsset(ctx, name)
}

// AssetURL builds the publicly resolvable URL for a stored object name.
func (g *Gateway) AssetURL(name string) string {
	return g.publicBaseURL + assetPrefix + name
}
