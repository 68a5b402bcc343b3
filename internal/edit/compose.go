package edit

import (
	"fmt"

	"github.com/quytran/folio/internal/content"
)

// Compose flattens the document into the page's editable fields with the
// view resolved once from the admin flag. The field IDs double as textStyles
// keys for the styled variants, so they must stay stable across releases.
func Compose(doc content.Document, admin bool) []Field {
	v := ResolveView(admin)

	styled := func(id, value string) Field {
		f := Field{ID: id, Kind: KindStyledText, View: v, Value: value}
		if s, ok := doc.TextStyles[id]; ok {
			f.Style = &s
		}
		return f
	}
	text := func(id, value string) Field {
		return Field{ID: id, Kind: KindText, View: v, Value: value}
	}
	image := func(id, value string) Field {
		return Field{ID: id, Kind: KindImage, View: v, Value: value}
	}

	fields := []Field{
		styled("profile.logoText", doc.LogoText),
		image("profile.logoImageUrl", doc.LogoImageURL),
		styled("profile.name", doc.Name),
		styled("profile.role", doc.Role),
		text("profile.dob", doc.DOB),
		text("profile.currentWork", doc.CurrentWork),
		styled("profile.bioTitle", doc.BioTitle),
		{ID: "profile.bioContent", Kind: KindTextArea, View: v, Value: doc.BioContent, Style: styleFor(doc, "profile.bioContent")},
		image("profile.avatarUrl", doc.AvatarURL),

		styled("config.heroBackgroundText", doc.Config.HeroBackgroundText),
		styled("config.tocTitle", doc.Config.TocTitle),
		styled("config.tocSubtitle", doc.Config.TocSubtitle),
		styled("config.workTitleMain", doc.Config.WorkTitleMain),
		styled("config.workTitleSub", doc.Config.WorkTitleSub),
		{ID: "config.workDescription", Kind: KindTextArea, View: v, Value: doc.Config.WorkDescription, Style: styleFor(doc, "config.workDescription")},
		styled("config.quoteContent", doc.Config.QuoteContent),
		styled("config.quoteAuthor", doc.Config.QuoteAuthor),
		text("config.versionText", doc.Config.VersionText),

		text("social.phone", doc.Social.Phone),
		text("social.email", doc.Social.Email),
		text("social.facebook", doc.Social.Facebook),
		text("social.tiktok", doc.Social.TikTok),
	}

	for i, item := range doc.Config.NavItems {
		fields = append(fields,
			text(fmt.Sprintf("nav.%d.label", i), item.Label),
			text(fmt.Sprintf("nav.%d.targetId", i), item.TargetID),
		)
	}
	for i, h := range doc.Highlights {
		fields = append(fields,
			styled(fmt.Sprintf("highlights.%d.text", i), h.Text),
			text(fmt.Sprintf("highlights.%d.url", i), h.URL),
		)
	}
	for i, item := range doc.Portfolio {
		prefix := fmt.Sprintf("portfolio.%d", i)
		fields = append(fields,
			styled(prefix+".title", item.Title),
			Field{ID: prefix + ".description", Kind: KindTextArea, View: v, Value: item.Description, Style: styleFor(doc, prefix+".description")},
			text(prefix+".role", item.Role),
			image(prefix+".imageUrl", item.ImageURL),
			image(prefix+".logoUrl", item.LogoURL),
			text(prefix+".videoUrl", item.VideoURL),
			Field{ID: prefix + ".gallery", Kind: KindGallery, View: v, Values: item.Gallery},
		)
	}
	return fields
}

func styleFor(doc content.Document, id string) *content.TextStyle {
	if s, ok := doc.TextStyles[id]; ok {
		return &s
	}
	return nil
}
