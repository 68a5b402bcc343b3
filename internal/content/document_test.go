package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

// TestTextStyleMerge_PreservesUnrelatedFields tests that a partial patch
// keeps previously set fields
func TestTextStyleMerge_PreservesUnrelatedFields(t *testing.T) {
	existing := TextStyle{FontSize: "2rem"}
	merged := existing.Merge(TextStyle{Color: "#fff"})

	assert.Equal(t, "2rem", merged.FontSize)
	assert.Equal(t, "#fff", merged.Color)
}

// TestTextStyleMerge_OverwritesSetFields tests that patch values win over
// existing ones
func TestTextStyleMerge_OverwritesSetFields(t *testing.T) {
	existing := TextStyle{Color: "#000", Align: "left"}
	merged := existing.Merge(TextStyle{Color: "#fff"})

	assert.Equal(t, "#fff", merged.Color)
	assert.Equal(t, "left", merged.Align)
}

// TestTextStyleMerge_Toggles tests that boolean toggles merge independently
// of the string fields
func TestTextStyleMerge_Toggles(t *testing.T) {
	existing := TextStyle{Italic: boolPtr(true)}
	merged := existing.Merge(TextStyle{Uppercase: boolPtr(true)})

	assert.NotNil(t, merged.Italic)
	assert.True(t, *merged.Italic)
	assert.NotNil(t, merged.Uppercase)
	assert.True(t, *merged.Uppercase)

	// An explicit false still counts as set.
	merged = merged.Merge(TextStyle{Italic: boolPtr(false)})
	assert.False(t, *merged.Italic)
}

// TestTextStyleMerge_EmptyPatch tests that merging an empty patch changes
// nothing
func TestTextStyleMerge_EmptyPatch(t *testing.T) {
	existing := TextStyle{Color: "#fff", FontFamily: "font-display"}
	assert.Equal(t, existing, existing.Merge(TextStyle{}))
}

// TestTextStyleIsZero tests zero detection used when clearing overrides
func TestTextStyleIsZero(t *testing.T) {
	assert.True(t, TextStyle{}.IsZero())
	assert.False(t, TextStyle{Color: "#fff"}.IsZero())
	assert.False(t, TextStyle{Italic: boolPtr(false)}.IsZero())
}
