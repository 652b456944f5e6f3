package render

import (
	"context"
	"strings"
	"testing"

	"awogen/internal/domain/config"
	"awogen/internal/domain/guide"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGuide() guide.LocalizedGuide {
	return guide.LocalizedGuide{
		Title:           "Dragon Ball",
		MetaTitle:       "Dragon Ball Watch Order (2026)",
		MetaDescription: "How to watch Dragon Ball in order.",
		CategoryTag:     "Shonen",
		Emoji:           "🐉",
		Intro:           "Dragon Ball spans five series and two decades.",
		QuickAnswer:     "Start with <strong>Dragon Ball</strong>, then Kai.",
		Hero:            guide.Hero{Series: "5", Films: "21", Hours: "450", Updated: "Feb 2026"},
		UI: map[string]string{
			"must_watch":          "Must Watch",
			"watchable":           "Watchable",
			"skip":                "Skip",
			"canon":               "Canon",
			"recommended_label":   "RECOMMENDED",
			"nav_home":            "Home",
			"lang_switch":         "FR",
			"quick_answer_label":  "Quick Answer",
			"why_confusing_label": "Why It's Confusing",
			"paths_heading":       "Three Ways to Watch",
			"timeline_heading":    "Complete Timeline",
			"col_num":             "#",
			"col_title":           "Title",
			"col_type":            "Type",
			"col_episodes":        "Episodes",
			"col_when":            "When",
			"col_path":            "Path",
			"col_verdict":         "Verdict",
			"col_watch":           "Watch",
			"faq_heading":         "FAQ",
			"streaming_heading":   "Where to Stream",
			"footer_text":         "© 2026 AnimeWatchOrder.com",
			"footer_affiliate":    "Some links are affiliate links.",
		},
		Timeline: []guide.TimelineEntry{
			{
				Num: 1, Title: "Dragon Ball", Subtitle: "Ep 1-153",
				Type: "canon", Episodes: "153", When: "1986", Path: "Path A",
				Verdict: "must_watch", Recommended: true,
			},
		},
		Paths: []guide.WatchPath{
			{
				Icon: "⚡", Name: "The Kai Path", Subtitle: "Fastest route",
				Description: "Skip the padding entirely.", Hours: "120h",
				Includes: "DB + Kai + Super", Recommended: true,
			},
		},
		FAQ: []guide.FAQEntry{
			{Question: "Where do I start?", Answer: "With <em>Dragon Ball</em> episode 1."},
		},
		WhyConfusing: guide.InfoBox{Content: "Five series, two retellings, twenty films."},
		Compare: guide.Compare{
			Heading: "DBZ vs Kai",
			Intro:   "Same story, two cuts.",
			Cards: []guide.CompareCard{
				{
					Title: "Kai", Subtitle: "2009 recut", Recommended: true,
					Stats: []guide.CompareStat{{Label: "Episodes", Value: "167"}},
				},
			},
			Verdict: "Watch Kai unless you want the original pacing.",
		},
		Streaming: []guide.Streaming{
			{Icon: "🎬", Platform: "Crunchyroll", Available: []string{"Dragon Ball", "DBZ Kai"}, URL: "https://www.crunchyroll.com", CTA: "Watch now"},
		},
		Manga: guide.Continuation{
			Title: "Continue with the manga", Description: "The anime stops where the manga keeps going.",
			LinkURL: "https://example.com/manga", LinkText: "Manga guide",
		},
	}
}

func renderTestGuide(t *testing.T, lang string, lg guide.LocalizedGuide) string {
	t.Helper()

	cfg := config.Default()
	md := NewMarkdownRenderer()

	page, err := BuildGuidePage(cfg, md, "dragon-ball", lang, lg)
	require.NoError(t, err)

	tpl, err := NewTemplateRenderer("")
	require.NoError(t, err)

	out, err := tpl.RenderGuide(context.Background(), page)
	require.NoError(t, err)
	return string(out)
}

func TestRenderGuidePage(t *testing.T) {
	html := renderTestGuide(t, "en", testGuide())

	t.Run("document structure", func(t *testing.T) {
		assert.Equal(t, 1, strings.Count(html, "<title>"), "exactly one title tag")
		assert.Contains(t, html, "<title>Dragon Ball Watch Order (2026)</title>")
		assert.Equal(t, 1, strings.Count(html, `rel="canonical"`))
		assert.Contains(t, html, `<link rel="canonical" href="https://animewatchorder.com/dragon-ball/">`)
	})

	t.Run("hreflang alternates", func(t *testing.T) {
		assert.Contains(t, html, `<link rel="alternate" hreflang="en" href="https://animewatchorder.com/dragon-ball/">`)
		assert.Contains(t, html, `<link rel="alternate" hreflang="fr" href="https://animewatchorder.com/fr/dragon-ball/">`)
		assert.Contains(t, html, `<link rel="alternate" hreflang="x-default" href="https://animewatchorder.com/dragon-ball/">`)
	})

	t.Run("timeline row", func(t *testing.T) {
		assert.Equal(t, 1, strings.Count(html, "<tr class=\"row--recommended\">"))
		assert.Contains(t, html, `<span class="tag-recommended">RECOMMENDED</span>`)
		assert.Contains(t, html, `<span class="badge badge--canon">Canon</span>`)
		assert.Contains(t, html, `<span class="verdict verdict--must-watch">Must Watch</span>`)
		// 没有 watch_url 时链接落回 "#"
		assert.Contains(t, html, `<a href="#" class="stream-link"`)
	})

	t.Run("language switch points at the french page", func(t *testing.T) {
		assert.Contains(t, html, `<a href="/fr/dragon-ball/" class="nav__lang">FR</a>`)
		assert.Contains(t, html, "<h1>Dragon Ball Watch Order</h1>")
	})

	t.Run("rich text passes embedded html through", func(t *testing.T) {
		assert.Contains(t, html, "Start with <strong>Dragon Ball</strong>, then Kai.")
		assert.Contains(t, html, "With <em>Dragon Ball</em> episode 1.")
	})

	t.Run("json-ld blocks present", func(t *testing.T) {
		assert.Equal(t, 2, strings.Count(html, `<script type="application/ld+json">`))
	})

	t.Run("analytics snippet injected", func(t *testing.T) {
		assert.Contains(t, html, "googletagmanager.com/gtm.js?id=")
		assert.Contains(t, html, config.Default().Analytics.GTMContainer)
	})

	t.Run("films and fillers sections absent without data", func(t *testing.T) {
		assert.NotContains(t, html, `id="films"`)
		assert.NotContains(t, html, `id="fillers"`)
	})
}

func TestRenderGuidePageFrench(t *testing.T) {
	html := renderTestGuide(t, "fr", testGuide())

	assert.Contains(t, html, `<html lang="fr">`)
	assert.Contains(t, html, "<h1>Dragon Ball Ordre de Visionnage</h1>")
	assert.Contains(t, html, `<link rel="canonical" href="https://animewatchorder.com/fr/dragon-ball/">`)
	assert.Contains(t, html, `<a href="/dragon-ball/" class="nav__lang">`)
	// 数据没给的标签走法语默认表
	assert.Contains(t, html, "Mis à jour")
}

func TestRenderGuidePageFilmsAndFillers(t *testing.T) {
	lg := testGuide()
	lg.Films = []guide.Film{
		{Title: "Battle of Gods", Year: "2013", Canon: true, Placement: "After ep 98", Verdict: "must_watch"},
		{Title: "Dead Zone", Year: "1989", Canon: false, Placement: "Anywhere", Verdict: "skip"},
	}
	lg.Fillers = []guide.Filler{
		{Arc: "Garlic Jr.", Episodes: "108-117", Verdict: "skip", Notes: "Pure filler."},
	}

	html := renderTestGuide(t, "en", lg)

	assert.Contains(t, html, `id="films"`)
	assert.Contains(t, html, `<td class="film-title">Battle of Gods</td>`)
	assert.Contains(t, html, `<td class="film-canon-yes">Yes</td>`)
	assert.Contains(t, html, `<td class="film-canon-no">No</td>`)
	assert.Contains(t, html, `id="fillers"`)
	assert.Contains(t, html, "<td>Garlic Jr.</td>")
}

func TestRenderGuidePageUnknownCategories(t *testing.T) {
	lg := testGuide()
	lg.Timeline = []guide.TimelineEntry{
		{Num: 1, Title: "Mystery OVA", Subtitle: "Ep 1", Type: "ova", Episodes: "1", When: "1993", Path: "—", Verdict: "maybe"},
	}

	html := renderTestGuide(t, "en", lg)

	// 未知分类降级到默认样式，不中断构建
	assert.Contains(t, html, `<span class="badge badge--canon">ova</span>`)
	assert.Contains(t, html, `<span class="verdict verdict--watchable">maybe</span>`)
}

func TestBuildHomePage(t *testing.T) {
	cfg := config.Default()
	md := NewMarkdownRenderer()

	guides := []guide.SeriesGuide{
		{Slug: "dragon-ball", Locales: map[string]guide.LocalizedGuide{"en": testGuide(), "fr": testGuide()}},
		{Slug: "naruto", Locales: map[string]guide.LocalizedGuide{"en": {Title: "Naruto", CategoryTag: "Shonen", Emoji: "🍥"}}},
	}

	t.Run("english", func(t *testing.T) {
		page, err := BuildHomePage(cfg, md, "en", guides)
		require.NoError(t, err)

		assert.Len(t, page.Cards, 2)
		assert.Equal(t, "/dragon-ball/", page.Cards[0].Link)
		assert.Equal(t, "/naruto/", page.Cards[1].Link)
		assert.Equal(t, "Anime Watch Order Guides", page.Heading)
		assert.Equal(t, "https://animewatchorder.com/", page.Canonical)

		tpl, err := NewTemplateRenderer("")
		require.NoError(t, err)
		out, err := tpl.RenderHome(context.Background(), page)
		require.NoError(t, err)

		html := string(out)
		assert.Equal(t, 1, strings.Count(html, "<title>"))
		assert.Contains(t, html, `<meta name="google-site-verification"`)
		assert.Contains(t, html, `<span class="series-card__emoji">🍥</span>`)
		assert.Contains(t, html, "View Guide")
	})

	t.Run("french skips series without that locale", func(t *testing.T) {
		page, err := BuildHomePage(cfg, md, "fr", guides)
		require.NoError(t, err)

		assert.Len(t, page.Cards, 1)
		assert.Equal(t, "/fr/dragon-ball/", page.Cards[0].Link)
		assert.Equal(t, "Guides d'Ordre de Visionnage Anime", page.Heading)
		assert.Equal(t, "https://animewatchorder.com/fr/", page.Canonical)
	})
}
