package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awogen/internal/domain/site"
)

func TestRouteBuilder(t *testing.T) {
	rb := &RouteBuilder{Langs: []string{site.LangEN, site.LangFR}}

	t.Run("guide routes cover every slug and language", func(t *testing.T) {
		routes := rb.BuildGuideRoutes([]string{"dragon-ball", "naruto"})
		require.Len(t, routes, 4)

		var outs []string
		for _, r := range routes {
			assert.Equal(t, site.RouteGuide, r.Kind)
			outs = append(outs, r.OutPath)
		}
		assert.Equal(t, []string{
			"dragon-ball/index.html",
			"fr/dragon-ball/index.html",
			"naruto/index.html",
			"fr/naruto/index.html",
		}, outs)
	})

	t.Run("home routes", func(t *testing.T) {
		routes := rb.BuildHomeRoutes()
		require.Len(t, routes, 2)
		assert.Equal(t, "index.html", routes[0].OutPath)
		assert.Equal(t, "fr/index.html", routes[1].OutPath)
	})

	t.Run("sitemap route", func(t *testing.T) {
		r := rb.BuildSitemapRoute()
		assert.Equal(t, site.RouteSitemap, r.Kind)
		assert.Equal(t, "sitemap.xml", r.OutPath)
	})
}
