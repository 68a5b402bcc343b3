// Package content defines the portfolio content document, its built-in
// defaults, and the migration that upgrades older or partial documents to the
// current shape.
package content

// Document is the root content aggregate for the whole site. A fully loaded
// document always has every field populated; migration fills anything a stored
// copy is missing.
type Document struct {
	LogoText     string `json:"logoText"`
	LogoImageURL string `json:"logoImageUrl"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	DOB          string `json:"dob"`
	CurrentWork  string `json:"currentWork"`
	BioTitle     string `json:"bioTitle"`
	BioContent   string `json:"bioContent"`
	AvatarURL    string `json:"avatarUrl"`

	Highlights []Highlight     `json:"highlights"`
	Portfolio  []PortfolioItem `json:"portfolio"`
	Social     Social          `json:"social"`
	Config     Site            `json:"config"`

	// TextStyles maps stable text-element identifiers chosen by the
	// presentation layer to optional style overrides. A missing key means
	// "use the default style". The identifiers are opaque to this package.
	TextStyles map[string]TextStyle `json:"textStyles"`
}

// Highlight is a single achievement line with an optional link.
type Highlight struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// PortfolioItem is one project entry. ID is generated at creation time and is
// the only stable identity; every other field is freely editable.
type PortfolioItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Role        string   `json:"role,omitempty"`
	ImageURL    string   `json:"imageUrl"`
	LogoURL     string   `json:"logoUrl,omitempty"`
	VideoURL    string   `json:"videoUrl,omitempty"`
	Gallery     []string `json:"gallery,omitempty"`
}

// Social holds the fixed set of contact links.
type Social struct {
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Facebook string `json:"facebook"`
	TikTok   string `json:"tiktok"`
}

// NavItem is one entry in the navigation menu. TargetID names the page
// section the entry scrolls to.
type NavItem struct {
	Label    string `json:"label"`
	TargetID string `json:"targetId"`
}

// Site holds site-wide display configuration: section titles, labels, and the
// navigation menu.
type Site struct {
	HeroBackgroundText string    `json:"heroBackgroundText"`
	TocTitle           string    `json:"tocTitle"`
	TocSubtitle        string    `json:"tocSubtitle"`
	WorkTitleMain      string    `json:"workTitleMain"`
	WorkTitleSub       string    `json:"workTitleSub"`
	WorkDescription    string    `json:"workDescription"`
	QuoteContent       string    `json:"quoteContent"`
	QuoteAuthor        string    `json:"quoteAuthor"`
	HeroLayoutSwapped  bool      `json:"heroLayoutSwapped"`
	VersionText        string    `json:"versionText"`
	NavItems           []NavItem `json:"navItems"`
	LabelPortrait      string    `json:"labelPortrait"`
	LabelIntro         string    `json:"labelIntro"`
	LabelHighlights    string    `json:"labelHighlights"`
	LabelQuote         string    `json:"labelQuote"`
}

// TextStyle is a partial style override for a single text element. Zero-value
// fields (empty strings, nil pointers) mean "not set"; Merge only overwrites
// fields the patch actually sets.
type TextStyle struct {
	Color         string `json:"color,omitempty"`
	FontSize      string `json:"fontSize,omitempty"`
	FontFamily    string `json:"fontFamily,omitempty"`
	FontWeight    string `json:"fontWeight,omitempty"`
	Italic        *bool  `json:"italic,omitempty"`
	Uppercase     *bool  `json:"uppercase,omitempty"`
	Align         string `json:"align,omitempty"`
	LetterSpacing string `json:"letterSpacing,omitempty"`
}

// Merge returns the style with the patch's set fields applied on top.
// Fields the patch leaves unset keep their current value.
func (s TextStyle) Merge(patch TextStyle) TextStyle {
	if patch.Color != "" {
		s.Color = patch.Color
	}
	if patch.FontSize != "" {
		s.FontSize = patch.FontSize
	}
	if patch.FontFamily != "" {
		s.FontFamily = patch.FontFamily
	}
	if patch.FontWeight != "" {
		s.FontWeight = patch.FontWeight
	}
	if patch.Italic != nil {
		s.Italic = patch.Italic
	}
	if patch.Uppercase != nil {
		s.Uppercase = patch.Uppercase
	}
	if patch.Align != "" {
		s.Align = patch.Align
	}
	if patch.LetterSpacing != "" {
		s.LetterSpacing = patch.LetterSpacing
	}
	return s
}

// IsZero reports whether no field of the style is set.
func (s TextStyle) IsZero() bool {
	return s == TextStyle{}
}
