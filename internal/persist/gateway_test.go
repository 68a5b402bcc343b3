package persist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quytran/folio/internal/content"
)

// fakeDocStore is an in-memory DocumentStore with switchable failures.
type fakeDocStore struct {
	doc      *content.Document
	fetchErr error
	putErr   error
	puts     int
}

func (f *fakeDocStore) Fetch(ctx context.Context) (content.Document, bool, error) {
	if f.fetchErr != nil {
		return content.Document{}, false, f.fetchErr
	}
	if f.doc == nil {
		return content.Document{}, false, nil
	}
	return *f.doc, true, nil
}

func (f *fakeDocStore) Put(ctx context.Context, doc content.Document) error {
	f.puts++
	if f.putErr != nil {
		return f.putErr
	}
	f.doc = &doc
	return nil
}

// fakeAssetStore is an in-memory AssetStore.
type fakeAssetStore struct {
	blobs   map[string][]byte
	order   []string
	listErr error
	putErr  error
}

func newFakeAssetStore() *fakeAssetStore {
	return &fakeAssetStore{blobs: map[string][]byte{}}
}

func (f *fakeAssetStore) PutAsset(ctx context.Context, name, contentType string, data []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.blobs[name] = data
	f.order = append(f.order, name)
	return nil
}

func (f *fakeAssetStore) GetAsset(ctx context.Context, name string) ([]byte, string, error) {
	return f.blobs[name], "image/png", nil
}

func (f *fakeAssetStore) ListAssets(ctx context.Context) ([]Asset, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	// Newest first, like the SQL ORDER BY in the real store.
	assets := make([]Asset, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		assets = append(assets, Asset{Name: f.order[i]})
	}
	return assets, nil
}

func testGateway(t *testing.T, remote DocumentStore, assets AssetStore) *Gateway {
	t.Helper()
	g := NewGateway(remote, assets, NewCache(t.TempDir()), "https://folio.example")
	g.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return g
}

// TestLoad_RemoteWins tests that a remote document beats any cached copy and
// refreshes the cache
func TestLoad_RemoteWins(t *testing.T) {
	remoteDoc := content.DefaultDocument()
	remoteDoc.Name = "From Remote"
	remote := &fakeDocStore{doc: &remoteDoc}

	g := testGateway(t, remote, nil)

	cached := content.DefaultDocument()
	cached.Name = "From Cache"
	require.NoError(t, g.cache.Store(cached))

	doc := g.Load(context.Background())
	assert.Equal(t, "From Remote", doc.Name)

	// The cache now mirrors the remote copy.
	fromCache, ok, err := g.cache.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "From Remote", fromCache.Name)
}

// TestLoad_FallsBackToCache tests the remote-absent and remote-failed paths
func TestLoad_FallsBackToCache(t *testing.T) {
	cached := content.DefaultDocument()
	cached.Name = "From Cache"

	for name, remote := range map[string]DocumentStore{
		"remote empty":  &fakeDocStore{},
		"remote failed": &fakeDocStore{fetchErr: errors.New("network down")},
		"no remote":     nil,
	} {
		t.Run(name, func(t *testing.T) {
			g := testGateway(t, remote, nil)
			require.NoError(t, g.cache.Store(cached))

			doc := g.Load(context.Background())
			assert.Equal(t, "From Cache", doc.Name)
		})
	}
}

// TestLoad_FallsBackToDefaults tests the final tier of the chain
func TestLoad_FallsBackToDefaults(t *testing.T) {
	g := testGateway(t, &fakeDocStore{fetchErr: errors.New("down")}, nil)

	doc := g.Load(context.Background())
	assert.Equal(t, content.DefaultDocument(), doc)
}

// TestLoad_CorruptCacheDegradesToDefaults tests that an unparseable cache
// file does not break load
func TestLoad_CorruptCacheDegradesToDefaults(t *testing.T) {
	g := testGateway(t, nil, nil)
	require.NoError(t, g.cache.Store(content.DefaultDocument()))
	writeGarbage(t, g.cache.Path())

	doc := g.Load(context.Background())
	assert.Equal(t, content.DefaultDocument(), doc)
}

// TestSave_CacheBeforeRemote tests that a failed remote write still leaves
// the cache holding the attempted document
func TestSave_CacheBeforeRemote(t *testing.T) {
	remote := &fakeDocStore{putErr: errors.New("remote write refused")}
	g := testGateway(t, remote, nil)

	doc := content.DefaultDocument()
	doc.Name = "Attempted Edit"

	err := g.Save(context.Background(), doc)
	assert.Error(t, err)

	cached, ok, cerr := g.cache.Load()
	require.NoError(t, cerr)
	require.True(t, ok)
	assert.Equal(t, "Attempted Edit", cached.Name)
}

// TestSave_LocalOnly tests that saving without a remote store succeeds
func TestSave_LocalOnly(t *testing.T) {
	g := testGateway(t, nil, nil)

	doc := content.DefaultDocument()
	doc.Name = "Offline Edit"
	require.NoError(t, g.Save(context.Background(), doc))

	cached, ok, err := g.cache.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Offline Edit", cached.Name)
}

// TestSave_RoundTrip tests that a saved document loads back equal
func TestSave_RoundTrip(t *testing.T) {
	remote := &fakeDocStore{}
	g := testGateway(t, remote, nil)

	doc := content.DefaultDocument()
	doc.Name = "Round Trip"
	doc.TextStyles["hero"] = content.TextStyle{Color: "#fff"}
	require.NoError(t, g.Save(context.Background(), doc))

	loaded := g.Load(context.Background())
	assert.Equal(t, doc, loaded)
}

// TestReset tests that reset clears the cache but not the remote store
func TestReset(t *testing.T) {
	remoteDoc := content.DefaultDocument()
	remoteDoc.Name = "Still Remote"
	remote := &fakeDocStore{doc: &remoteDoc}
	g := testGateway(t, remote, nil)

	edited := content.DefaultDocument()
	edited.Name = "Edited"
	require.NoError(t, g.cache.Store(edited))

	doc := g.Reset(context.Background())
	assert.Equal(t, content.DefaultDocument(), doc)

	_, ok, err := g.cache.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	// Remote copy untouched.
	stillThere, ok, err := remote.Fetch(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Still Remote", stillThere.Name)
}

// TestUploadAsset tests name derivation and URL construction
func TestUploadAsset(t *testing.T) {
	assets := newFakeAssetStore()
	g := testGateway(t, nil, assets)

	url, err := g.UploadAsset(context.Background(), "My Photo (1).png", "image/png", []byte{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, "https://folio.example/assets/1700000000000_My_Photo__1_.png", url)
	assert.Contains(t, assets.blobs, "1700000000000_My_Photo__1_.png")
}

// TestUploadAsset_NotConfigured tests the configuration error path
func TestUploadAsset_NotConfigured(t *testing.T) {
	g := testGateway(t, nil, nil)

	_, err := g.UploadAsset(context.Background(), "a.png", "image/png", []byte{1})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

// TestListAssets tests ordering, the unconfigured path, and error
// propagation
func TestListAssets(t *testing.T) {
	assets := newFakeAssetStore()
	g := testGateway(t, nil, assets)

	require.NoError(t, assets.PutAsset(context.Background(), "1_a.png", "image/png", nil))
	require.NoError(t, assets.PutAsset(context.Background(), "2_b.png", "image/png", nil))

	urls, err := g.ListAssets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://folio.example/assets/2_b.png",
		"https://folio.example/assets/1_a.png",
	}, urls)

	// Not configured: empty, no error.
	g2 := testGateway(t, nil, nil)
	urls, err = g2.ListAssets(context.Background())
	require.NoError(t, err)
	assert.Empty(t, urls)

	// Enumeration failure propagates, matching the upload policy.
	assets.listErr = errors.New("enumeration refused")
	_, err = g.ListAssets(context.Background())
	assert.Error(t, err)
}

// TestSave_ConcurrentIdenticalSavesCoalesce tests the in-flight guard: a
// rapid double save of the same document results in one remote write
func TestSave_ConcurrentIdenticalSavesCoalesce(t *testing.T) {
	block := make(chan struct{})
	remote := &blockingDocStore{release: block}
	g := testGateway(t, remote, nil)

	doc := content.DefaultDocument()
	done := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { done <- g.Save(context.Background(), doc) }()
	}
	// Let both saves reach the singleflight group before releasing.
	time.Sleep(50 * time.Millisecond)
	close(block)

	require.NoError(t, <-done)
	require.NoError(t, <-done)
	assert.Equal(t, 1, remote.puts)
}

// blockingDocStore blocks Put until released, to force save overlap.
type blockingDocStore struct {
	release chan struct{}
	puts    int
}

func (b *blockingDocStore) Fetch(ctx context.Context) (content.Document, bool, error) {
	return content.Document{}, false, nil
}

func (b *blockingDocStore) Put(ctx context.Context, doc content.Document) error {
	b.puts++
	<-b.release
	return nil
}

// TestObjectName tests filename sanitization
func TestObjectName(t *testing.T) {
	now := time.UnixMilli(42)

	assert.Equal(t, "42_photo.png", objectName(now, "photo.png"))
	assert.Equal(t, "42_a_b_c.jpeg", objectName(now, "a b/c.jpeg"))
	assert.Equal(t, "42____.png", objectName(now, "%&?.png"))
	assert.Equal(t, "42__nh.png", objectName(now, "ảnh.png"))
}
