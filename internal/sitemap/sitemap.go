package sitemap

import (
	"encoding/xml"

	"awogen/internal/domain/site"
)

type URLSet struct {
	XMLName    xml.Name `xml:"urlset"`
	Xmlns      string   `xml:"xmlns,attr"`
	XmlnsXHTML string   `xml:"xmlns:xhtml,attr"`
	URLs       []URL    `xml:"url"`
}

type URL struct {
	Loc        string      `xml:"loc"`
	Alternates []Alternate `xml:"xhtml:link"`
	LastMod    string      `xml:"lastmod"`
	ChangeFreq string      `xml:"changefreq"`
	Priority   string      `xml:"priority"`
}

type Alternate struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// Build 生成整站 sitemap：首页 + 每个系列，英法各一条，互相用 hreflang 标注。
// x-default 永远指向英文版。
func Build(siteURL string, slugs []string, lastmod string) ([]byte, error) {
	set := URLSet{
		Xmlns:      "http://www.sitemaps.org/schemas/sitemap/0.9",
		XmlnsXHTML: "http://www.w3.org/1999/xhtml",
	}

	appendPair := func(enLoc, frLoc string) {
		alternates := []Alternate{
			{Rel: "alternate", Hreflang: "en", Href: enLoc},
			{Rel: "alternate", Hreflang: "fr", Href: frLoc},
			{Rel: "alternate", Hreflang: "x-default", Href: enLoc},
		}
		set.URLs = append(set.URLs,
			URL{Loc: enLoc, Alternates: alternates, LastMod: lastmod, ChangeFreq: "monthly", Priority: "1.0"},
			URL{Loc: frLoc, Alternates: alternates, LastMod: lastmod, ChangeFreq: "monthly", Priority: "0.9"},
		)
	}

	appendPair(site.HomeURL(siteURL, site.LangEN), site.HomeURL(siteURL, site.LangFR))
	for _, slug := range slugs {
		appendPair(
			site.GuideURL(siteURL, site.LangEN, slug),
			site.GuideURL(siteURL, site.LangFR, slug),
		)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, []byte(xml.Header)...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}
