package app

import "awogen/internal/domain/site"

// RouteBuilder 枚举整站要输出的全部页面，构建和 sitemap 共用一份清单
type RouteBuilder struct {
	Langs []string
}

func (rb *RouteBuilder) BuildGuideRoutes(slugs []string) []site.Route {
	var routes []site.Route
	for _, slug := range slugs {
		for _, lang := range rb.Langs {
			routes = append(routes, site.Route{
				Kind:    site.RouteGuide,
				Lang:    lang,
				Slug:    slug,
				OutPath: site.GuideOutPath(lang, slug),
			})
		}
	}
	return routes
}

func (rb *RouteBuilder) BuildHomeRoutes() []site.Route {
	var routes []site.Route
	for _, lang := range rb.Langs {
		routes = append(routes, site.Route{
			Kind:    site.RouteHome,
			Lang:    lang,
			OutPath: site.HomeOutPath(lang),
		})
	}
	return routes
}

func (rb *RouteBuilder) BuildSitemapRoute() site.Route {
	return site.Route{
		Kind:    site.RouteSitemap,
		OutPath: "sitemap.xml",
	}
}
