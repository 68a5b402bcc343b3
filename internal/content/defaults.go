package content

import "fmt"

// DefaultDocument returns the built-in content used when neither the remote
// store nor the local cache has anything. Callers get a fresh copy; mutating
// the result never affects later calls.
func DefaultDocument() Document {
	return Document{
		LogoText:     "TQ.",
		LogoImageURL: "",
		Name:         "Trần Thiên Quý",
		Role:         "Event Producer",
		DOB:          "08/11/1998",
		CurrentWork:  "Event",
		BioTitle:     "Xin chào, mình là Quý!",
		BioContent:   "Mình làm việc trong lĩnh vực tổ chức sự kiện – đạo diễn sân khấu, nơi mỗi ngày đều là một hành trình sáng tạo mới. Mình thích tạo ra những khoảnh khắc khiến khán giả phải wow – không phải vì hoành tráng, mà vì chạm được cảm xúc thật.",
		AvatarURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=800&q=80",
		Highlights: []Highlight{
			{Text: "Top 24 cuộc thi Én Sinh Viên 2024 - Sân chơi dành cho tài năng dẫn chương trình chuyên nghiệp miền Nam.", URL: ""},
			{Text: "Phát thanh phường Bình Thuận, Quận 7, TP.HCM và phường Bình Thuận, Quận Hải Châu, TP. Đà Nẵng", URL: ""},
			{Text: "Học bổng 100% đại học FPT TP.HCM", URL: ""},
			{Text: "Giải ba \"Tôi làm phát thanh viên 2023\" - Quận Đoàn Hải Châu, Thành phố Đà Nẵng", URL: ""},
			{Text: "Leader MC Team tại Câu Lạc Bộ Truyền Thông Cóc Sài Gòn", URL: ""},
			{Text: "MC hàng trăm chương trình, sự kiện tại FPT", URL: ""},
		},
		Portfolio: []PortfolioItem{
			{
				ID:          "1",
				Title:       "FES-Camp 4: Thang Âm Việt",
				Description: "Chuỗi 4 chương trình biểu diễn và 4 khóa học âm nhạc truyền thống tại Hà Nội, Đà Nẵng, TP.HCM, Cần Thơ.",
				Role:        "Project Manager / Art Director",
				ImageURL:    "https://picsum.photos/seed/fes1/800/800",
				LogoURL:     "https://placehold.co/400x100/000000/FFFFFF/png?text=THANG+AM+VIET",
				VideoURL:    "https://youtube.com",
				Gallery:     seedGallery("g"),
			},
			{
				ID:          "2",
				Title:       "Talkshow \"Gen Z & AI\"",
				Description: "MC dẫn dắt chương trình với sự tham gia của 500 sinh viên. Khai thác góc nhìn đa chiều về công nghệ.",
				Role:        "MC / Host",
				ImageURL:    "https://picsum.photos/seed/event1/800/600",
				LogoURL:     "https://placehold.co/400x100/000000/FFFFFF/png?text=GENZ+AI",
				VideoURL:    "https://youtube.com",
				Gallery:     seedGallery("ai"),
			},
		},
		Social: Social{
			Phone:    "0335657532",
			Email:    "tranthienquy98@gmail.com",
			Facebook: "https://www.facebook.com/md7xd8j3ax",
			TikTok:   "https://www.tiktok.com/@quymeevent",
		},
		Config: Site{
			HeroBackgroundText: "PORTFOLIO",
			TocTitle:           "Contents",
			TocSubtitle:        "TABLE OF",
			WorkTitleMain:      "WORK",
			WorkTitleSub:       "Folio",
			WorkDescription:    "A collection of events, productions, and creative directions curated over the years.",
			QuoteContent:       "\"Making moments that matter.\"",
			QuoteAuthor:        "Trần Thiên Quý",
			HeroLayoutSwapped:  false,
			VersionText:        "PORTFOLIO V.1.0",
			NavItems: []NavItem{
				{Label: "Home", TargetID: "home"},
				{Label: "Highlight", TargetID: "highlights"},
				{Label: "My Work", TargetID: "work"},
				{Label: "Contact", TargetID: "contact"},
			},
			LabelPortrait:   "Portrait",
			LabelIntro:      "Intro",
			LabelHighlights: "Highlights",
			LabelQuote:      "Quote",
		},
		TextStyles: map[string]TextStyle{},
	}
}

// GalleryMax is the number of gallery slots a portfolio item can hold.
const GalleryMax = 12

// GalleryPlaceholderURL is the image used for freshly added gallery slots.
const GalleryPlaceholderURL = "https://picsum.photos/400/400"

func seedGallery(seed string) []string {
	urls := make([]string, 0, GalleryMax)
	for i := 1; i <= GalleryMax; i++ {
		urls = append(urls, fmt.Sprintf("https://picsum.photos/seed/%s%d/400/400", seed, i))
	}
	return urls
}
