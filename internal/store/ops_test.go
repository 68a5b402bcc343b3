package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quytran/folio/internal/content"
)

// TestSetProfileField tests top-level field updates leave siblings untouched
func TestSetProfileField(t *testing.T) {
	doc := content.DefaultDocument()

	got, err := SetProfileField(doc, "name", "New Name")
	require.NoError(t, err)

	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, doc.Role, got.Role)
	assert.Equal(t, doc.Highlights, got.Highlights)
	// The original value is not mutated.
	assert.NotEqual(t, "New Name", doc.Name)
}

// TestSetProfileField_Unknown tests rejection of unknown field paths
func TestSetProfileField_Unknown(t *testing.T) {
	_, err := SetProfileField(content.DefaultDocument(), "nope", "x")
	assert.Error(t, err)
}

// TestSetSocialField tests the fixed-shape social record updates
func TestSetSocialField(t *testing.T) {
	doc := content.DefaultDocument()

	got, err := SetSocialField(doc, "email", "me@example.com")
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", got.Social.Email)
	assert.Equal(t, doc.Social.Phone, got.Social.Phone)

	_, err = SetSocialField(doc, "myspace", "x")
	assert.Error(t, err)
}

// TestSetConfigText tests config field updates merge into the config only
func TestSetConfigText(t *testing.T) {
	doc := content.DefaultDocument()

	got, err := SetConfigText(doc, "quoteAuthor", "Anon")
	require.NoError(t, err)
	assert.Equal(t, "Anon", got.Config.QuoteAuthor)
	assert.Equal(t, doc.Config.QuoteContent, got.Config.QuoteContent)
}

// TestNavItemOps tests nav item update, append, remove, and move
func TestNavItemOps(t *testing.T) {
	doc := content.DefaultDocument()

	got, err := SetNavItemField(doc, 1, "label", "Wins")
	require.NoError(t, err)
	assert.Equal(t, "Wins", got.Config.NavItems[1].Label)
	assert.Equal(t, doc.Config.NavItems[1].TargetID, got.Config.NavItems[1].TargetID)

	got = AppendNavItem(doc)
	assert.Len(t, got.Config.NavItems, len(doc.Config.NavItems)+1)

	got, err = RemoveNavItem(doc, 0)
	require.NoError(t, err)
	assert.Len(t, got.Config.NavItems, len(doc.Config.NavItems)-1)
	assert.Equal(t, doc.Config.NavItems[1], got.Config.NavItems[0])

	_, err = SetNavItemField(doc, 99, "label", "x")
	assert.Error(t, err)
}

// TestHighlightOps tests highlight append, field update, and remove
func TestHighlightOps(t *testing.T) {
	doc := content.DefaultDocument()

	got := AppendHighlight(doc)
	require.Len(t, got.Highlights, 7)
	assert.NotEmpty(t, got.Highlights[6].Text)

	got, err := SetHighlightField(doc, 2, "url", "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got.Highlights[2].URL)
	assert.Equal(t, doc.Highlights[2].Text, got.Highlights[2].Text)

	got, err = RemoveHighlight(doc, 5)
	require.NoError(t, err)
	assert.Len(t, got.Highlights, 5)

	_, err = SetHighlightField(doc, 0, "color", "x")
	assert.Error(t, err)
}

// TestMove_BoundaryNoOp tests that moving the first element up or the last
// element down leaves the list unchanged without error
func TestMove_BoundaryNoOp(t *testing.T) {
	doc := content.DefaultDocument()

	got, err := MoveHighlight(doc, 0, Up)
	require.NoError(t, err)
	assert.Equal(t, doc.Highlights, got.Highlights)

	last := len(doc.Highlights) - 1
	got, err = MoveHighlight(doc, last, Down)
	require.NoError(t, err)
	assert.Equal(t, doc.Highlights, got.Highlights)

	got, err = MovePortfolioItem(doc, 0, Up)
	require.NoError(t, err)
	assert.Equal(t, doc.Portfolio, got.Portfolio)
}

// TestMove_SwapsNeighbors tests that a legal move swaps exactly two entries
func TestMove_SwapsNeighbors(t *testing.T) {
	doc := content.DefaultDocument()

	got, err := MoveHighlight(doc, 1, Up)
	require.NoError(t, err)
	assert.Equal(t, doc.Highlights[1], got.Highlights[0])
	assert.Equal(t, doc.Highlights[0], got.Highlights[1])
	assert.Equal(t, doc.Highlights[2:], got.Highlights[2:])

	got, err = MovePortfolioItem(doc, 0, Down)
	require.NoError(t, err)
	assert.Equal(t, doc.Portfolio[0], got.Portfolio[1])
	assert.Equal(t, doc.Portfolio[1], got.Portfolio[0])
}

// TestParseDirection tests wire-format direction parsing
func TestParseDirection(t *testing.T) {
	dir, err := ParseDirection("up")
	require.NoError(t, err)
	assert.Equal(t, Up, dir)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}

// TestAppendPortfolioItem_UniqueIDs tests that N sequential appends yield
// pairwise distinct IDs even within the same millisecond
func TestAppendPortfolioItem_UniqueIDs(t *testing.T) {
	doc := content.DefaultDocument()
	now := time.Now()

	for i := 0; i < 20; i++ {
		doc = AppendPortfolioItem(doc, now)
	}

	seen := make(map[string]bool)
	for _, item := range doc.Portfolio {
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}
	assert.Len(t, doc.Portfolio, 22)
}

// TestAppendPortfolioItem_Placeholders tests the shape of a fresh item
func TestAppendPortfolioItem_Placeholders(t *testing.T) {
	doc := AppendPortfolioItem(content.DefaultDocument(), time.Now())
	item := doc.Portfolio[len(doc.Portfolio)-1]

	assert.Equal(t, "New Project", item.Title)
	assert.Len(t, item.Gallery, content.GalleryMax)
	assert.NotEmpty(t, item.ImageURL)
}

// TestSetPortfolioField tests per-field updates keep the ID stable
func TestSetPortfolioField(t *testing.T) {
	doc := content.DefaultDocument()

	got, err := SetPortfolioField(doc, 0, "title", "Renamed")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Portfolio[0].Title)
	assert.Equal(t, doc.Portfolio[0].ID, got.Portfolio[0].ID)
	assert.Equal(t, doc.Portfolio[0].Gallery, got.Portfolio[0].Gallery)

	_, err = SetPortfolioField(doc, 0, "id", "evil")
	assert.Error(t, err)
}

// TestGalleryOps tests gallery slot update, bounded append, and remove
func TestGalleryOps(t *testing.T) {
	doc := content.DefaultDocument()

	got, err := SetGalleryImage(doc, 0, 3, "https://example.com/x.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/x.jpg", got.Portfolio[0].Gallery[3])
	assert.Equal(t, doc.Portfolio[0].Gallery[2], got.Portfolio[0].Gallery[2])

	// Default galleries are full, so append must refuse.
	_, err = AppendGalleryImage(doc, 0)
	assert.Error(t, err)

	got, err = RemoveGalleryImage(doc, 0, 0)
	require.NoError(t, err)
	assert.Len(t, got.Portfolio[0].Gallery, content.GalleryMax-1)
	assert.Equal(t, doc.Portfolio[0].Gallery[1], got.Portfolio[0].Gallery[0])

	got, err = AppendGalleryImage(got, 0)
	require.NoError(t, err)
	assert.Len(t, got.Portfolio[0].Gallery, content.GalleryMax)
	assert.Equal(t, content.GalleryPlaceholderURL, got.Portfolio[0].Gallery[content.GalleryMax-1])
}

// TestMergeTextStyle tests override creation and shallow merge
func TestMergeTextStyle(t *testing.T) {
	doc := content.DefaultDocument()

	doc = MergeTextStyle(doc, "hero-title", content.TextStyle{FontSize: "2rem"})
	doc = MergeTextStyle(doc, "hero-title", content.TextStyle{Color: "#fff"})

	style := doc.TextStyles["hero-title"]
	assert.Equal(t, "2rem", style.FontSize)
	assert.Equal(t, "#fff", style.Color)
}

// TestClearTextStyle tests override removal reverts to inherit
func TestClearTextStyle(t *testing.T) {
	doc := content.DefaultDocument()
	doc = MergeTextStyle(doc, "quote", content.TextStyle{Color: "#abc"})
	doc = MergeTextStyle(doc, "bio", content.TextStyle{Align: "center"})

	doc = ClearTextStyle(doc, "quote")
	assert.NotContains(t, doc.TextStyles, "quote")
	assert.Contains(t, doc.TextStyles, "bio")

	// Clearing an absent key is a no-op.
	doc = ClearTextStyle(doc, "missing")
	assert.Contains(t, doc.TextStyles, "bio")
}
