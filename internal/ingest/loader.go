package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	buildfp "awogen/internal/domain/build"
	"awogen/internal/domain/guide"
)

type Warning struct {
	Path string
	Msg  string
}

// Source 记录数据文件的指纹，供 manifest 和 sitemap lastmod 使用
type Source struct {
	Slug    string
	Path    string
	Hash    string
	ModTime time.Time
}

// LoadGuide 读取并解析一个系列的数据文件。文件缺失是致命错误，错误信息里带完整路径。
func LoadGuide(dataDir, slug string) (guide.SeriesGuide, Source, error) {
	path := filepath.Join(dataDir, slug+".json")

	st, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return guide.SeriesGuide{}, Source{}, fmt.Errorf("data file not found: %s", path)
		}
		return guide.SeriesGuide{}, Source{}, fmt.Errorf("stat %s: %w", path, err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return guide.SeriesGuide{}, Source{}, fmt.Errorf("read %s: %w", path, err)
	}

	locales := make(map[string]guide.LocalizedGuide)
	if err := json.Unmarshal(raw, &locales); err != nil {
		return guide.SeriesGuide{}, Source{}, fmt.Errorf("parse %s: %w", path, err)
	}
	for lang, lg := range locales {
		lg.Normalize()
		locales[lang] = lg
	}

	g := guide.SeriesGuide{Slug: slug, Locales: locales}
	src := Source{
		Slug:    slug,
		Path:    path,
		Hash:    buildfp.HashBytes(raw),
		ModTime: st.ModTime(),
	}
	return g, src, nil
}

// LoadAll 一次性加载全部配置的系列；任何一个缺失立即失败，不产出任何页面。
func LoadAll(dataDir string, slugs, langs []string) ([]guide.SeriesGuide, []Source, []Warning, error) {
	var (
		guides []guide.SeriesGuide
		srcs   []Source
		warns  []Warning
	)

	for _, slug := range slugs {
		g, src, err := LoadGuide(dataDir, slug)
		if err != nil {
			return nil, nil, nil, err
		}
		for _, lang := range langs {
			lg, ok := g.Locale(lang)
			if !ok {
				warns = append(warns, Warning{Path: src.Path, Msg: "missing locale: " + lang})
				continue
			}
			if n := lg.RecommendedPaths(); n != 1 {
				warns = append(warns, Warning{
					Path: src.Path,
					Msg:  fmt.Sprintf("%s: expected exactly one recommended path, got %d", lang, n),
				})
			}
		}
		guides = append(guides, g)
		srcs = append(srcs, src)
	}

	// 数据目录里有文件但没配置进 series 列表的，提示一下
	known := make(map[string]struct{}, len(slugs))
	for _, s := range slugs {
		known[s] = struct{}{}
	}
	if extra, err := DiscoverData(dataDir); err == nil {
		for _, slug := range extra {
			if _, ok := known[slug]; !ok {
				warns = append(warns, Warning{
					Path: filepath.Join(dataDir, slug+".json"),
					Msg:  "data file present but slug not configured",
				})
			}
		}
	}

	return guides, srcs, warns, nil
}
