package render

import (
	"html/template"

	"awogen/internal/domain/config"
	"awogen/internal/domain/guide"
)

// 视图结构：URL、富文本、JSON-LD 都在装配阶段算好，模板只负责排版

type GuidePage struct {
	Site      config.SiteConfig
	Analytics config.AnalyticsConfig
	Lang      string
	Slug      string
	Guide     guide.LocalizedGuide
	UI        map[string]string

	Canonical     string
	EnURL         string
	FrURL         string
	HomeURL       string
	LangSwitchURL string

	Intro          template.HTML
	QuickAnswer    template.HTML
	WhyConfusing   template.HTML
	CompareIntro   template.HTML
	CompareVerdict template.HTML
	MangaDesc      template.HTML

	Paths []PathCard
	FAQ   []FAQItem

	HowToJSON template.JS
	FAQJSON   template.JS
}

type PathCard struct {
	Icon        string
	Name        string
	Subtitle    string
	Description template.HTML
	Hours       string
	Includes    string
	Recommended bool
}

type FAQItem struct {
	Question string
	Answer   template.HTML
}

type HomePage struct {
	Site      config.SiteConfig
	Analytics config.AnalyticsConfig
	Lang      string

	Canonical  string
	EnURL      string
	FrURL      string
	HomeURL    string
	OtherHome  string
	LangSwitch string

	Title       string
	Description string
	Heading     string
	Subtitle    template.HTML
	NavHome     string
	CTA         string

	Cards []SeriesCard
}

type SeriesCard struct {
	Link        string
	Emoji       string
	Title       string
	CategoryTag string
}
