// Package store holds the single in-memory content document and the
// field-scoped edit operations that transform it. Every operation returns a
// new document; the input is never mutated, and untouched paths are carried
// over unchanged.
package store

import (
	"fmt"
	"strconv"
	"time"

	"github.com/quytran/folio/internal/content"
)

// Direction names the move directions for ordered lists. Moves are swaps
// with the immediate neighbor only.
type Direction string

// Move directions.
const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection validates a direction coming off the wire.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Up, Down:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("invalid direction %q (want %q or %q)", s, Up, Down)
	}
}

// SetProfileField sets one of the top-level profile strings. Field names
// match the document's JSON keys. Values are taken as-is; this is a
// content-authoring tool, not a validating form.
func SetProfileField(doc content.Document, field, value string) (content.Document, error) {
	switch field {
	case "logoText":
		doc.LogoText = value
	case "logoImageUrl":
		doc.LogoImageURL = value
	case "name":
		doc.Name = value
	case "role":
		doc.Role = value
	case "dob":
		doc.DOB = value
	case "currentWork":
		doc.CurrentWork = value
	case "bioTitle":
		doc.BioTitle = value
	case "bioContent":
		doc.BioContent = value
	case "avatarUrl":
		doc.AvatarURL = value
	default:
		return doc, fmt.Errorf("unknown profile field %q", field)
	}
	return doc, nil
}

// SetSocialField sets one of the fixed contact links.
func SetSocialField(doc content.Document, field, value string) (content.Document, error) {
	switch field {
	case "phone":
		doc.Social.Phone = value
	case "email":
		doc.Social.Email = value
	case "facebook":
		doc.Social.Facebook = value
	case "tiktok":
		doc.Social.TikTok = value
	default:
		return doc, fmt.Errorf("unknown social field %q", field)
	}
	return doc, nil
}

// SetConfigText sets one of the free-text site configuration fields.
func SetConfigText(doc content.Document, field, value string) (content.Document, error) {
	switch field {
	case "heroBackgroundText":
		doc.Config.HeroBackgroundText = value
	case "tocTitle":
		doc.Config.TocTitle = value
	case "tocSubtitle":
		doc.Config.TocSubtitle = value
	case "workTitleMain":
		doc.Config.WorkTitleMain = value
	case "workTitleSub":
		doc.Config.WorkTitleSub = value
	case "workDescription":
		doc.Config.WorkDescription = value
	case "quoteContent":
		doc.Config.QuoteContent = value
	case "quoteAuthor":
		doc.Config.QuoteAuthor = value
	case "versionText":
		doc.Config.VersionText = value
	case "labelPortrait":
		doc.Config.LabelPortrait = value
	case "labelIntro":
		doc.Config.LabelIntro = value
	case "labelHighlights":
		doc.Config.LabelHighlights = value
	case "labelQuote":
		doc.Config.LabelQuote = value
	default:
		return doc, fmt.Errorf("unknown config field %q", field)
	}
	return doc, nil
}

// SetHeroLayoutSwapped toggles the hero layout direction.
func SetHeroLayoutSwapped(doc content.Document, swapped bool) content.Document {
	doc.Config.HeroLayoutSwapped = swapped
	return doc
}

// --- Navigation items ---

// SetNavItemField updates one field of the nav item at index.
func SetNavItemField(doc content.Document, index int, field, value string) (content.Document, error) {
	if err := checkIndex(index, len(doc.Config.NavItems), "nav item"); err != nil {
		return doc, err
	}
	items := cloneSlice(doc.Config.NavItems)
	switch field {
	case "label":
		items[index].Label = value
	case "targetId":
		items[index].TargetID = value
	default:
		return doc, fmt.Errorf("unknown nav item field %q", field)
	}
	doc.Config.NavItems = items
	return doc, nil
}

// AppendNavItem adds a placeholder navigation entry at the end.
func AppendNavItem(doc content.Document) content.Document {
	items := cloneSlice(doc.Config.NavItems)
	doc.Config.NavItems = append(items, content.NavItem{Label: "New", TargetID: "home"})
	return doc
}

// RemoveNavItem deletes the nav item at index, preserving the order of the
// remaining entries.
func RemoveNavItem(doc content.Document, index int) (content.Document, error) {
	items, err := removeAt(doc.Config.NavItems, index, "nav item")
	if err != nil {
		return doc, err
	}
	doc.Config.NavItems = items
	return doc, nil
}

// MoveNavItem swaps the nav item at index with its neighbor. Moving past the
// boundary is a no-op, not an error.
func MoveNavItem(doc content.Document, index int, dir Direction) (content.Document, error) {
	items, err := moveAdjacent(doc.Config.NavItems, index, dir, "nav item")
	if err != nil {
		return doc, err
	}
	doc.Config.NavItems = items
	return doc, nil
}

// --- Highlights ---

// AppendHighlight adds a placeholder highlight at the end.
func AppendHighlight(doc content.Document) content.Document {
	hs := cloneSlice(doc.Highlights)
	doc.Highlights = append(hs, content.Highlight{Text: "New highlight description goes here...", URL: ""})
	return doc
}

// SetHighlightField updates the text or url of the highlight at index.
func SetHighlightField(doc content.Document, index int, field, value string) (content.Document, error) {
	if err := checkIndex(index, len(doc.Highlights), "highlight"); err != nil {
		return doc, err
	}
	hs := cloneSlice(doc.Highlights)
	switch field {
	case "text":
		hs[index].Text = value
	case "url":
		hs[index].URL = value
	default:
		return doc, fmt.Errorf("unknown highlight field %q", field)
	}
	doc.Highlights = hs
	return doc, nil
}

// RemoveHighlight deletes the highlight at index.
func RemoveHighlight(doc content.Document, index int) (content.Document, error) {
	hs, err := removeAt(doc.Highlights, index, "highlight")
	if err != nil {
		return doc, err
	}
	doc.Highlights = hs
	return doc, nil
}

// MoveHighlight swaps the highlight at index with its neighbor.
func MoveHighlight(doc content.Document, index int, dir Direction) (content.Document, error) {
	hs, err := moveAdjacent(doc.Highlights, index, dir, "highlight")
	if err != nil {
		return doc, err
	}
	doc.Highlights = hs
	return doc, nil
}

// --- Portfolio ---

// AppendPortfolioItem adds a new project with placeholder content and a
// fresh time-derived ID, unique within the document.
func AppendPortfolioItem(doc content.Document, now time.Time) content.Document {
	items := cloneSlice(doc.Portfolio)
	gallery := make([]string, content.GalleryMax)
	for i := range gallery {
		gallery[i] = content.GalleryPlaceholderURL
	}
	item := content.PortfolioItem{
		ID:          newItemID(doc.Portfolio, now),
		Title:       "New Project",
		Description: "Project description...",
		Role:        "My Role",
		ImageURL:    "https://picsum.photos/800/600",
		LogoURL:     "https://placehold.co/400x100/000000/FFFFFF/png?text=PROJECT+LOGO",
		VideoURL:    "#",
		Gallery:     gallery,
	}
	doc.Portfolio = append(items, item)
	return doc
}

// newItemID derives an ID from the wall clock and bumps it until it does not
// collide with any existing item, so back-to-back appends within the same
// millisecond still get distinct IDs.
func newItemID(existing []content.PortfolioItem, now time.Time) string {
	used := make(map[string]bool, len(existing))
	for _, item := range existing {
		used[item.ID] = true
	}
	n := now.UnixMilli()
	for {
		id := strconv.FormatInt(n, 10)
		if !used[id] {
			return id
		}
		n++
	}
}

// SetPortfolioField updates one field of the portfolio item at index. The ID
// is not addressable; it stays stable for the item's lifetime.
func SetPortfolioField(doc content.Document, index int, field, value string) (content.Document, error) {
	if err := checkIndex(index, len(doc.Portfolio), "portfolio item"); err != nil {
		return doc, err
	}
	items := cloneSlice(doc.Portfolio)
	switch field {
	case "title":
		items[index].Title = value
	case "description":
		items[index].Description = value
	case "role":
		items[index].Role = value
	case "imageUrl":
		items[index].ImageURL = value
	case "logoUrl":
		items[index].LogoURL = value
	case "videoUrl":
		items[index].VideoURL = value
	default:
		return doc, fmt.Errorf("unknown portfolio field %q", field)
	}
	doc.Portfolio = items
	return doc, nil
}

// RemovePortfolioItem deletes the item at index. Its ID is never reused.
func RemovePortfolioItem(doc content.Document, index int) (content.Document, error) {
	items, err := removeAt(doc.Portfolio, index, "portfolio item")
	if err != nil {
		return doc, err
	}
	doc.Portfolio = items
	return doc, nil
}

// MovePortfolioItem swaps the item at index with its neighbor.
func MovePortfolioItem(doc content.Document, index int, dir Direction) (content.Document, error) {
	items, err := moveAdjacent(doc.Portfolio, index, dir, "portfolio item")
	if err != nil {
		return doc, err
	}
	doc.Portfolio = items
	return doc, nil
}

// --- Galleries ---

// SetGalleryImage replaces the gallery entry at slot within the portfolio
// item at index.
func SetGalleryImage(doc content.Document, index, slot int, url string) (content.Document, error) {
	if err := checkIndex(index, len(doc.Portfolio), "portfolio item"); err != nil {
		return doc, err
	}
	if err := checkIndex(slot, len(doc.Portfolio[index].Gallery), "gallery slot"); err != nil {
		return doc, err
	}
	items := cloneSlice(doc.Portfolio)
	gallery := cloneSlice(items[index].Gallery)
	gallery[slot] = url
	items[index].Gallery = gallery
	doc.Portfolio = items
	return doc, nil
}

// AppendGalleryImage adds a placeholder slot to the item's gallery, bounded
// at GalleryMax entries.
func AppendGalleryImage(doc content.Document, index int) (content.Document, error) {
	if err := checkIndex(index, len(doc.Portfolio), "portfolio item"); err != nil {
		return doc, err
	}
	if len(doc.Portfolio[index].Gallery) >= content.GalleryMax {
		return doc, fmt.Errorf("gallery is full (max %d images)", content.GalleryMax)
	}
	items := cloneSlice(doc.Portfolio)
	gallery := cloneSlice(items[index].Gallery)
	items[index].Gallery = append(gallery, content.GalleryPlaceholderURL)
	doc.Portfolio = items
	return doc, nil
}

// RemoveGalleryImage deletes the gallery entry at slot, shifting later
// entries down.
func RemoveGalleryImage(doc content.Document, index, slot int) (content.Document, error) {
	if err := checkIndex(index, len(doc.Portfolio), "portfolio item"); err != nil {
		return doc, err
	}
	gallery, err := removeAt(doc.Portfolio[index].Gallery, slot, "gallery slot")
	if err != nil {
		return doc, err
	}
	items := cloneSlice(doc.Portfolio)
	items[index].Gallery = gallery
	doc.Portfolio = items
	return doc, nil
}

// --- Text styles ---

// MergeTextStyle shallow-merges a style patch into the override for the
// given element identifier. Fields the patch leaves unset keep their prior
// values; a patch against an element with no override creates one.
func MergeTextStyle(doc content.Document, id string, patch content.TextStyle) content.Document {
	styles := make(map[string]content.TextStyle, len(doc.TextStyles)+1)
	for k, v := range doc.TextStyles {
		styles[k] = v
	}
	styles[id] = styles[id].Merge(patch)
	doc.TextStyles = styles
	return doc
}

// ClearTextStyle removes the override for the given element identifier,
// reverting it to the default style.
func ClearTextStyle(doc content.Document, id string) content.Document {
	if _, ok := doc.TextStyles[id]; !ok {
		return doc
	}
	styles := make(map[string]content.TextStyle, len(doc.TextStyles))
	for k, v := range doc.TextStyles {
		if k != id {
			styles[k] = v
		}
	}
	doc.TextStyles = styles
	return doc
}

// --- shared list helpers ---

func checkIndex(index, length int, what string) error {
	if index < 0 || index >= length {
		return fmt.Errorf("%s index %d out of range (len %d)", what, index, length)
	}
	return nil
}

func cloneSlice[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func removeAt[T any](s []T, index int, what string) ([]T, error) {
	if err := checkIndex(index, len(s), what); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:index]...)
	out = append(out, s[index+1:]...)
	return out, nil
}

// moveAdjacent swaps s[index] with its neighbor in the given direction. A
// move past either end returns the slice unchanged.
func moveAdjacent[T any](s []T, index int, dir Direction, what string) ([]T, error) {
	if err := checkIndex(index, len(s), what); err != nil {
		return nil, err
	}
	target := index - 1
	if dir == Down {
		target = index + 1
	}
	if target < 0 || target >= len(s) {
		return s, nil
	}
	out := cloneSlice(s)
	out[index], out[target] = out[target], out[index]
	return out, nil
}
