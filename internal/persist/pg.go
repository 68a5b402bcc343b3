package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quytran/folio/internal/content"
)

// documentID is the key of the single site document row. The remote store is
// one logical document: full read, full overwrite, nothing else.
const documentID = "portfolio"

// DocumentStore is the remote source of truth for the content document.
type DocumentStore interface {
	// Fetch returns the stored document. The boolean is false when no
	// document has ever been saved remotely.
	Fetch(ctx context.Context) (content.Document, bool, error)
	// Put overwrites the stored document wholesale.
	Put(ctx context.Context, doc content.Document) error
}

// Asset is one stored blob.
type Asset struct {
	Name        string
	ContentType string
	CreatedAt   time.Time
}

// AssetStore holds uploaded binary assets under their derived object names.
type AssetStore interface {
	PutAsset(ctx context.Context, name, contentType string, data []byte) error
	// GetAsset returns nil bytes when the name is unknown.
	GetAsset(ctx context.Context, name string) ([]byte, string, error)
	ListAssets(ctx context.Context) ([]Asset, error)
}

// PG implements DocumentStore and AssetStore on a PostgreSQL pool.
type PG struct {
	pool *pgxpool.Pool
}

// ConnectPG establishes a connection pool and verifies it.
func ConnectPG(ctx context.Context, databaseURL string) (*PG, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, classify("connect", err)
	}
	return &PG{pool: pool}, nil
}

// Close closes the connection pool.
func (p *PG) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// EnsureSchema creates the two tables if they do not exist yet.
func (p *PG) EnsureSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS site_content (
			id         TEXT PRIMARY KEY,
			body       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return classify("ensure schema", err)
	}
	_, err = p.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS assets (
			name         TEXT PRIMARY KEY,
			content_type TEXT NOT NULL,
			body         BYTEA NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return classify("ensure schema", err)
	}
	return nil
}

// Fetch reads the single document row and migrates it to the current shape.
func (p *PG) Fetch(ctx context.Context) (content.Document, bool, error) {
	var body []byte
	err := p.pool.QueryRow(ctx,
		`SELECT body FROM site_content WHERE id = $1`, documentID,
	).Scan(&body)
	if err != nil {
		if err == pgx.ErrNoRows {
			return content.Document{}, false, nil
		}
		return content.Document{}, false, classify("fetch document", err)
	}
	doc, err := content.Decode(body)
	if err != nil {
		return content.Document{}, false, err
	}
	return doc, true, nil
}

// Put overwrites the document row with the full serialized document.
func (p *PG) Put(ctx context.Context, doc content.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	_, err = p.pool.Exec(ctx,
		`INSERT INTO site_content (id, body, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (id) DO UPDATE SET body = $2, updated_at = NOW()`,
		documentID, body,
	)
	if err != nil {
		return classify("save document", err)
	}
	return nil
}

// PutAsset stores a blob under its object name. Names are write-once in practice
// because they embed the upload timestamp, but a re-upload of the same name
// overwrites.
func (p *PG) PutAsset(ctx context.Context, name, contentType string, data []byte) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO assets (name, content_type, body)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (name) DO UPDATE SET content_type = $2, body = $3`,
		name, contentType, data,
	)
	if err != nil {
		return classify("upload asset", err)
	}
	return nil
}

// GetAsset returns the blob bytes and content type for an object name.
func (p *PG) GetAsset(ctx context.Context, name string) ([]byte, string, error) {
	var body []byte
	var contentType string
	err := p.pool.QueryRow(ctx,
		`SELECT body, content_type FROM assets WHERE name = $1`, name,
	).Scan(&body, &contentType)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", nil
		}
		return nil, "", classify("get asset", err)
	}
	return body, contentType, nil
}

// ListAssets enumerates stored assets, most recently uploaded first.
func (p *PG) ListAssets(ctx context.Context) ([]Asset, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT name, content_type, created_at FROM assets ORDER BY created_at DESC, name DESC`)
	if err != nil {
		return nil, classify("list assets", err)
	}
	defer rows.Close()

	var assets []Asset
	for rows.Next() {
		var a Asset
		if err := rows.Scan(&a.Name, &a.ContentType, &a.CreatedAt); err != nil {
			return nil, classify("list assets", err)
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list assets", err)
	}
	return assets, nil
}
