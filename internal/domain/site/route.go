package site

import (
	"fmt"
	"path"
	"strings"
)

const (
	LangEN = "en"
	LangFR = "fr"
)

// DefaultLang 是 x-default 指向的语言
const DefaultLang = LangEN

type RouteKind string

const (
	RouteHome    RouteKind = "home"
	RouteGuide   RouteKind = "guide"
	RouteSitemap RouteKind = "sitemap"
)

type Route struct {
	Kind    RouteKind
	Lang    string
	Slug    string
	OutPath string
}

func (r Route) String() string {
	var parts []string
	parts = append(parts, string(r.Kind))
	if r.Lang != "" {
		parts = append(parts, "lang="+r.Lang)
	}
	if r.Slug != "" {
		parts = append(parts, "slug="+r.Slug)
	}
	if r.OutPath != "" {
		parts = append(parts, "out="+r.OutPath)
	}
	return strings.Join(parts, " ")
}

// LangPrefix 非默认语言挂在自己的子目录下，默认语言在站点根
func LangPrefix(lang string) string {
	if lang == DefaultLang {
		return ""
	}
	return "/" + lang
}

// HomePath 站内相对路径，如 "/" 或 "/fr/"
func HomePath(lang string) string {
	return LangPrefix(lang) + "/"
}

// GuidePath 站内相对路径，如 "/dragon-ball/" 或 "/fr/dragon-ball/"
func GuidePath(lang, slug string) string {
	return fmt.Sprintf("%s/%s/", LangPrefix(lang), slug)
}

// HomeURL 完整 URL（siteURL 不带尾斜杠）
func HomeURL(siteURL, lang string) string {
	return strings.TrimSuffix(siteURL, "/") + HomePath(lang)
}

func GuideURL(siteURL, lang, slug string) string {
	return strings.TrimSuffix(siteURL, "/") + GuidePath(lang, slug)
}

// HomeOutPath 输出文件相对 public 目录的路径
func HomeOutPath(lang string) string {
	if lang == DefaultLang {
		return "index.html"
	}
	return path.Join(lang, "index.html")
}

func GuideOutPath(lang, slug string) string {
	if lang == DefaultLang {
		return path.Join(slug, "index.html")
	}
	return path.Join(lang, slug, "index.html")
}
