// Package edit models the editable-field primitives of the page: which view
// a field renders in (static display or inline editor), the gallery bounds,
// and the style popover state machine. The choice between display and editor
// is made once per page from the admin flag, not re-checked per field.
package edit

import (
	"fmt"

	"github.com/quytran/folio/internal/content"
)

// Kind names the editable field variants.
type Kind string

// Field kinds.
const (
	KindText       Kind = "text"        // single-line text input
	KindTextArea   Kind = "textarea"    // multi-line text input
	KindImage      Kind = "image"       // url edit / upload / pick-existing
	KindGallery    Kind = "gallery"     // ordered image sequence, bounded
	KindStyledText Kind = "styled-text" // text plus optional style override
)

// View is the rendering state of a field.
type View string

// Views. All fields on the page share one view, driven by the admin flag.
const (
	Display View = "display"
	Editor  View = "editor"
)

// ResolveView selects the view for the whole page. Admin mode flips every
// field to the inline editor simultaneously.
func ResolveView(admin bool) View {
	if admin {
		return Editor
	}
	return Display
}

// FallbackImageURL is shown in place of an image whose underlying resource
// fails to load.
const FallbackImageURL = "https://placehold.co/400x400/1a1a1a/white?text=Image+Error"

// FontFamilies is the fixed set selectable in the style popover. The empty
// string means "inherit".
var FontFamilies = []string{
	"Be Vietnam Pro",
	"Playfair Display",
	"Space Grotesk",
	"Inter",
	"JetBrains Mono",
}

// ValidFontFamily reports whether the family may be used in a style
// override. Inherit (empty) is always valid.
func ValidFontFamily(family string) bool {
	if family == "" {
		return true
	}
	for _, f := range FontFamilies {
		if f == family {
			return true
		}
	}
	return false
}

// ValidateStylePatch rejects patches referencing a font outside the fixed
// set. Everything else is free-form.
func ValidateStylePatch(patch content.TextStyle) error {
	if !ValidFontFamily(patch.FontFamily) {
		return fmt.Errorf("unknown font family %q", patch.FontFamily)
	}
	return nil
}

// Field is one editable element of the composed page, with its view already
// resolved.
type Field struct {
	// ID is the stable identifier for the element. For styled text it is
	// also the textStyles key.
	ID     string             `json:"id"`
	Kind   Kind               `json:"kind"`
	View   View               `json:"view"`
	Value  string             `json:"value,omitempty"`
	Values []string           `json:"values,omitempty"`
	Style  *content.TextStyle `json:"style,omitempty"`
}
