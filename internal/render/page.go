package render

import (
	"fmt"
	"html/template"

	"awogen/internal/domain/config"
	"awogen/internal/domain/guide"
	"awogen/internal/domain/site"
)

// BuildGuidePage 把一份本地化指南装配成完整的视图：算 URL、过富文本、生成 JSON-LD。
func BuildGuidePage(cfg config.Config, md *MarkdownRenderer, slug, lang string, lg guide.LocalizedGuide) (GuidePage, error) {
	otherLang := site.LangFR
	if lang != site.LangEN {
		otherLang = site.LangEN
	}

	page := GuidePage{
		Site:      cfg.Site,
		Analytics: cfg.Analytics,
		Lang:      lang,
		Slug:      slug,
		Guide:     lg,
		UI:        lg.UI,

		Canonical:     site.GuideURL(cfg.Site.SiteURL, lang, slug),
		EnURL:         site.GuideURL(cfg.Site.SiteURL, site.LangEN, slug),
		FrURL:         site.GuideURL(cfg.Site.SiteURL, site.LangFR, slug),
		HomeURL:       site.HomePath(lang),
		LangSwitchURL: site.GuidePath(otherLang, slug),
	}

	var err error
	if page.Intro, err = richText(md, lg.Intro); err != nil {
		return GuidePage{}, fmt.Errorf("intro: %w", err)
	}
	if page.QuickAnswer, err = richText(md, lg.QuickAnswer); err != nil {
		return GuidePage{}, fmt.Errorf("quick_answer: %w", err)
	}
	if page.WhyConfusing, err = richText(md, lg.WhyConfusing.Content); err != nil {
		return GuidePage{}, fmt.Errorf("why_confusing: %w", err)
	}
	if page.CompareIntro, err = richText(md, lg.Compare.Intro); err != nil {
		return GuidePage{}, fmt.Errorf("compare intro: %w", err)
	}
	if page.CompareVerdict, err = richText(md, lg.Compare.Verdict); err != nil {
		return GuidePage{}, fmt.Errorf("compare verdict: %w", err)
	}
	if page.MangaDesc, err = richText(md, lg.Manga.Description); err != nil {
		return GuidePage{}, fmt.Errorf("manga: %w", err)
	}

	page.Paths = make([]PathCard, 0, len(lg.Paths))
	for _, p := range lg.Paths {
		desc, err := richText(md, p.Description)
		if err != nil {
			return GuidePage{}, fmt.Errorf("path %q: %w", p.Name, err)
		}
		page.Paths = append(page.Paths, PathCard{
			Icon:        p.Icon,
			Name:        p.Name,
			Subtitle:    p.Subtitle,
			Description: desc,
			Hours:       p.Hours,
			Includes:    p.Includes,
			Recommended: p.Recommended,
		})
	}

	page.FAQ = make([]FAQItem, 0, len(lg.FAQ))
	for _, f := range lg.FAQ {
		answer, err := richText(md, f.Answer)
		if err != nil {
			return GuidePage{}, fmt.Errorf("faq %q: %w", f.Question, err)
		}
		page.FAQ = append(page.FAQ, FAQItem{Question: f.Question, Answer: answer})
	}

	howto, err := BuildHowToSchema(lg, cfg.Site.SiteURL, slug, lang, cfg.Site.Published)
	if err != nil {
		return GuidePage{}, fmt.Errorf("howto schema: %w", err)
	}
	faq, err := BuildFAQSchema(lg)
	if err != nil {
		return GuidePage{}, fmt.Errorf("faq schema: %w", err)
	}
	page.HowToJSON = template.JS(howto)
	page.FAQJSON = template.JS(faq)

	return page, nil
}

// BuildHomePage 装配一种语言的首页：每个系列一张卡片
func BuildHomePage(cfg config.Config, md *MarkdownRenderer, lang string, guides []guide.SeriesGuide) (HomePage, error) {
	otherLang := site.LangFR
	if lang != site.LangEN {
		otherLang = site.LangEN
	}

	subtitle, err := richText(md, Label(nil, lang, "home_subtitle"))
	if err != nil {
		return HomePage{}, err
	}

	page := HomePage{
		Site:      cfg.Site,
		Analytics: cfg.Analytics,
		Lang:      lang,

		Canonical:  site.HomeURL(cfg.Site.SiteURL, lang),
		EnURL:      site.HomeURL(cfg.Site.SiteURL, site.LangEN),
		FrURL:      site.HomeURL(cfg.Site.SiteURL, site.LangFR),
		HomeURL:    site.HomePath(lang),
		OtherHome:  site.HomePath(otherLang),
		LangSwitch: Label(nil, lang, "lang_switch"),

		Title:       Label(nil, lang, "home_title"),
		Description: Label(nil, lang, "home_description"),
		Heading:     Label(nil, lang, "home_heading"),
		Subtitle:    subtitle,
		NavHome:     Label(nil, lang, "nav_home"),
		CTA:         Label(nil, lang, "home_cta"),
	}

	for _, g := range guides {
		lg, ok := g.Locale(lang)
		if !ok {
			continue
		}
		page.Cards = append(page.Cards, SeriesCard{
			Link:        site.GuidePath(lang, g.Slug),
			Emoji:       lg.Emoji,
			Title:       lg.Title,
			CategoryTag: lg.CategoryTag,
		})
	}

	return page, nil
}

func richText(md *MarkdownRenderer, src string) (template.HTML, error) {
	if src == "" {
		return "", nil
	}
	out, err := md.RenderInline(src)
	if err != nil {
		return "", err
	}
	return template.HTML(out), nil
}
