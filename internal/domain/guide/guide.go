package guide

import "strings"

// 一个 slug 对应一份数据文件，里面按语言放两套完整文案
type SeriesGuide struct {
	Slug    string
	Locales map[string]LocalizedGuide
}

func (g SeriesGuide) Locale(lang string) (LocalizedGuide, bool) {
	lg, ok := g.Locales[lang]
	return lg, ok
}

type LocalizedGuide struct {
	Title           string `json:"title"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	CategoryTag     string `json:"category_tag"`
	Emoji           string `json:"emoji"`
	Intro           string `json:"intro"`
	QuickAnswer     string `json:"quick_answer"`

	Hero Hero `json:"hero"`

	// 唯一的本地化接缝：label key -> 展示文案
	UI map[string]string `json:"ui"`

	Timeline []TimelineEntry `json:"timeline"`
	Films    []Film          `json:"films"`
	Fillers  []Filler        `json:"fillers"`
	Paths    []WatchPath     `json:"paths"`
	FAQ      []FAQEntry      `json:"faq"`

	WhyConfusing InfoBox      `json:"why_confusing"`
	Compare      Compare      `json:"dbz_vs_kai"`
	Streaming    []Streaming  `json:"streaming"`
	Manga        Continuation `json:"manga"`
}

type Hero struct {
	Series  string `json:"series"`
	Films   string `json:"films"`
	Hours   string `json:"hours"`
	Updated string `json:"updated"`
}

// 正史分类的闭集，未知值按 canon 降级处理，不报错
const (
	TypeCanon     = "canon"
	TypeMixed     = "mixed"
	TypeFilmCanon = "film_canon"
	TypeNonCanon  = "non_canon"
	TypeFiller    = "filler"
)

const (
	VerdictMustWatch = "must_watch"
	VerdictWatchable = "watchable"
	VerdictSkip      = "skip"
)

type TimelineEntry struct {
	Num         int    `json:"num"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Type        string `json:"type"`
	Episodes    string `json:"episodes"`
	When        string `json:"when"`
	Path        string `json:"path"`
	Verdict     string `json:"verdict"`
	Recommended bool   `json:"recommended"`
	WatchURL    string `json:"watch_url"`
	Notes       string `json:"notes"`
}

type Film struct {
	Title     string `json:"title"`
	Year      string `json:"year"`
	Canon     bool   `json:"canon"`
	Placement string `json:"placement"`
	Verdict   string `json:"verdict"`
}

type Filler struct {
	Arc      string `json:"arc"`
	Episodes string `json:"episodes"`
	Verdict  string `json:"verdict"`
	Notes    string `json:"notes"`
}

type WatchPath struct {
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Hours       string `json:"hours"`
	Includes    string `json:"includes"`
	Recommended bool   `json:"recommended"`
}

type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type InfoBox struct {
	Content string `json:"content"`
}

type Compare struct {
	Heading string        `json:"heading"`
	Intro   string        `json:"intro"`
	Cards   []CompareCard `json:"cards"`
	Verdict string        `json:"verdict"`
}

type CompareCard struct {
	Title       string        `json:"title"`
	Subtitle    string        `json:"subtitle"`
	ColorClass  string        `json:"color_class"`
	Recommended bool          `json:"recommended"`
	Stats       []CompareStat `json:"stats"`
}

type CompareStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Streaming struct {
	Icon      string   `json:"icon"`
	Platform  string   `json:"platform"`
	Available []string `json:"available"`
	URL       string   `json:"url"`
	CTA       string   `json:"cta"`
}

type Continuation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	LinkURL     string `json:"link_url"`
	LinkText    string `json:"link_text"`
}

func (lg *LocalizedGuide) Normalize() {
	lg.Title = strings.TrimSpace(lg.Title)
	lg.CategoryTag = strings.TrimSpace(lg.CategoryTag)
	if lg.Emoji == "" {
		lg.Emoji = "🎬"
	}
}

// RecommendedPaths 返回被标记推荐的观看路线数量（每份指南期望恰好一条，仅作提示）
func (lg LocalizedGuide) RecommendedPaths() int {
	n := 0
	for _, p := range lg.Paths {
		if p.Recommended {
			n++
		}
	}
	return n
}
