package content

import (
	"encoding/json"
	"fmt"
)

// partialDocument mirrors Document with every field optional, so a stored
// copy written by an older version can be told apart from one that simply
// left a field empty.
type partialDocument struct {
	LogoText     *string `json:"logoText"`
	LogoImageURL *string `json:"logoImageUrl"`
	Name         *string `json:"name"`
	Role         *string `json:"role"`
	DOB          *string `json:"dob"`
	CurrentWork  *string `json:"currentWork"`
	BioTitle     *string `json:"bioTitle"`
	BioContent   *string `json:"bioContent"`
	AvatarURL    *string `json:"avatarUrl"`

	// Highlights entries were plain strings before the link field existed,
	// so they are decoded per entry.
	Highlights []json.RawMessage    `json:"highlights"`
	Portfolio  []PortfolioItem      `json:"portfolio"`
	Social     *Social              `json:"social"`
	Config     *partialSite         `json:"config"`
	TextStyles map[string]TextStyle `json:"textStyles"`
}

type partialSite struct {
	HeroBackgroundText *string   `json:"heroBackgroundText"`
	TocTitle           *string   `json:"tocTitle"`
	TocSubtitle        *string   `json:"tocSubtitle"`
	WorkTitleMain      *string   `json:"workTitleMain"`
	WorkTitleSub       *string   `json:"workTitleSub"`
	WorkDescription    *string   `json:"workDescription"`
	QuoteContent       *string   `json:"quoteContent"`
	QuoteAuthor        *string   `json:"quoteAuthor"`
	HeroLayoutSwapped  *bool     `json:"heroLayoutSwapped"`
	VersionText        *string   `json:"versionText"`
	NavItems           []NavItem `json:"navItems"`
	LabelPortrait      *string   `json:"labelPortrait"`
	LabelIntro         *string   `json:"labelIntro"`
	LabelHighlights    *string   `json:"labelHighlights"`
	LabelQuote         *string   `json:"labelQuote"`
}

// Decode parses a serialized document and migrates it to the current shape.
// The only error path is unparseable input; any recognizable subset of fields
// is accepted and the rest is filled from DefaultDocument. Decoding a
// document already in the current shape returns an equivalent document.
func Decode(data []byte) (Document, error) {
	var p partialDocument
	if err := json.Unmarshal(data, &p); err != nil {
		return Document{}, fmt.Errorf("failed to parse content document: %w", err)
	}
	return migrate(p), nil
}

func migrate(p partialDocument) Document {
	doc := DefaultDocument()

	setString(&doc.LogoText, p.LogoText)
	setString(&doc.LogoImageURL, p.LogoImageURL)
	setString(&doc.Name, p.Name)
	setString(&doc.Role, p.Role)
	setString(&doc.DOB, p.DOB)
	setString(&doc.CurrentWork, p.CurrentWork)
	setString(&doc.BioTitle, p.BioTitle)
	setString(&doc.BioContent, p.BioContent)
	setString(&doc.AvatarURL, p.AvatarURL)

	if p.Highlights != nil {
		doc.Highlights = migrateHighlights(p.Highlights)
	}
	if p.Portfolio != nil {
		doc.Portfolio = p.Portfolio
	}
	if p.Social != nil {
		doc.Social = *p.Social
	}
	if p.Config != nil {
		doc.Config = mergeSite(doc.Config, *p.Config)
	}
	if p.TextStyles != nil {
		doc.TextStyles = p.TextStyles
	}
	return doc
}

// migrateHighlights normalizes the legacy plain-string form into the current
// {text, url} shape. Entries that decode as neither are dropped.
func migrateHighlights(raw []json.RawMessage) []Highlight {
	out := make([]Highlight, 0, len(raw))
	for _, entry := range raw {
		var text string
		if err := json.Unmarshal(entry, &text); err == nil {
			out = append(out, Highlight{Text: text, URL: ""})
			continue
		}
		var h Highlight
		if err := json.Unmarshal(entry, &h); err == nil {
			out = append(out, h)
		}
	}
	return out
}

// mergeSite merges a loaded config into the defaults key by key; loaded
// values win where present. NavItems is replaced wholesale by the default
// list when absent rather than merged per item.
func mergeSite(def Site, p partialSite) Site {
	setString(&def.HeroBackgroundText, p.HeroBackgroundText)
	setString(&def.TocTitle, p.TocTitle)
	setString(&def.TocSubtitle, p.TocSubtitle)
	setString(&def.WorkTitleMain, p.WorkTitleMain)
	setString(&def.WorkTitleSub, p.WorkTitleSub)
	setString(&def.WorkDescription, p.WorkDescription)
	setString(&def.QuoteContent, p.QuoteContent)
	setString(&def.QuoteAuthor, p.QuoteAuthor)
	setString(&def.VersionText, p.VersionText)
	setString(&def.LabelPortrait, p.LabelPortrait)
	setString(&def.LabelIntro, p.LabelIntro)
	setString(&def.LabelHighlights, p.LabelHighlights)
	setString(&def.LabelQuote, p.LabelQuote)
	if p.HeroLayoutSwapped != nil {
		def.HeroLayoutSwapped = *p.HeroLayoutSwapped
	}
	if p.NavItems != nil {
		def.NavItems = p.NavItems
	}
	return def
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
