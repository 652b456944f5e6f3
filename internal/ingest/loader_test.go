package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awogen/internal/domain/site"
)

const minimalGuide = `{
  "en": {
    "title": "Dragon Ball",
    "meta_title": "Dragon Ball Watch Order",
    "meta_description": "The order.",
    "paths": [
      {"name": "Kai Path", "recommended": true}
    ]
  },
  "fr": {
    "title": "Dragon Ball",
    "meta_title": "Ordre de Visionnage Dragon Ball",
    "meta_description": "L'ordre.",
    "paths": [
      {"name": "Voie Kai", "recommended": true}
    ]
  }
}`

func writeGuide(t *testing.T, dir, slug, body string) string {
	t.Helper()
	path := filepath.Join(dir, slug+".json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadGuide(t *testing.T) {
	t.Run("parses both locales", func(t *testing.T) {
		dir := t.TempDir()
		writeGuide(t, dir, "dragon-ball", minimalGuide)

		g, src, err := LoadGuide(dir, "dragon-ball")
		require.NoError(t, err)
		assert.Equal(t, "dragon-ball", g.Slug)

		en, ok := g.Locale(site.LangEN)
		require.True(t, ok)
		assert.Equal(t, "Dragon Ball", en.Title)
		assert.Equal(t, "🎬", en.Emoji, "缺省 emoji")

		fr, ok := g.Locale(site.LangFR)
		require.True(t, ok)
		assert.Equal(t, "Ordre de Visionnage Dragon Ball", fr.MetaTitle)

		assert.Equal(t, "dragon-ball", src.Slug)
		assert.NotEmpty(t, src.Hash)
		assert.False(t, src.ModTime.IsZero())
	})

	t.Run("missing file error names the path", func(t *testing.T) {
		dir := t.TempDir()
		_, _, err := LoadGuide(dir, "one-piece")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "data file not found")
		assert.Contains(t, err.Error(), filepath.Join(dir, "one-piece.json"))
	})

	t.Run("malformed json error names the path", func(t *testing.T) {
		dir := t.TempDir()
		writeGuide(t, dir, "broken", `{"en": {`)
		_, _, err := LoadGuide(dir, "broken")
		require.Error(t, err)
		assert.Contains(t, err.Error(), filepath.Join(dir, "broken.json"))
	})
}

func TestLoadAll(t *testing.T) {
	langs := []string{site.LangEN, site.LangFR}

	t.Run("loads every configured series", func(t *testing.T) {
		dir := t.TempDir()
		writeGuide(t, dir, "dragon-ball", minimalGuide)
		writeGuide(t, dir, "naruto", minimalGuide)

		guides, srcs, warns, err := LoadAll(dir, []string{"dragon-ball", "naruto"}, langs)
		require.NoError(t, err)
		assert.Len(t, guides, 2)
		assert.Len(t, srcs, 2)
		assert.Empty(t, warns)
	})

	t.Run("any missing series aborts the whole load", func(t *testing.T) {
		dir := t.TempDir()
		writeGuide(t, dir, "dragon-ball", minimalGuide)

		guides, _, _, err := LoadAll(dir, []string{"dragon-ball", "naruto"}, langs)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "naruto.json")
		assert.Nil(t, guides)
	})

	t.Run("warns on missing locale", func(t *testing.T) {
		dir := t.TempDir()
		writeGuide(t, dir, "en-only", `{"en": {"title": "X", "paths": [{"recommended": true}]}}`)

		_, _, warns, err := LoadAll(dir, []string{"en-only"}, langs)
		require.NoError(t, err)
		require.Len(t, warns, 1)
		assert.Contains(t, warns[0].Msg, "missing locale: fr")
	})

	t.Run("warns when recommended path count is off", func(t *testing.T) {
		dir := t.TempDir()
		writeGuide(t, dir, "no-rec", `{"en": {"title": "X", "paths": [{"name": "A"}, {"name": "B"}]}}`)

		_, _, warns, err := LoadAll(dir, []string{"no-rec"}, []string{site.LangEN})
		require.NoError(t, err)
		require.Len(t, warns, 1)
		assert.Contains(t, warns[0].Msg, "expected exactly one recommended path, got 0")
	})

	t.Run("warns on unconfigured data files", func(t *testing.T) {
		dir := t.TempDir()
		writeGuide(t, dir, "dragon-ball", minimalGuide)
		writeGuide(t, dir, "stray", minimalGuide)

		_, _, warns, err := LoadAll(dir, []string{"dragon-ball"}, langs)
		require.NoError(t, err)
		require.Len(t, warns, 1)
		assert.Equal(t, filepath.Join(dir, "stray.json"), warns[0].Path)
		assert.Contains(t, warns[0].Msg, "not configured")
	})
}

func TestDiscoverData(t *testing.T) {
	dir := t.TempDir()
	writeGuide(t, dir, "naruto", "{}")
	writeGuide(t, dir, "dragon-ball", "{}")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	slugs, err := DiscoverData(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"dragon-ball", "naruto"}, slugs)
}
