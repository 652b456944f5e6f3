package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"awogen/internal/app"
	buildfp "awogen/internal/domain/build"
	"awogen/internal/domain/config"
	"awogen/internal/domain/guide"
	"awogen/internal/index"
	"awogen/internal/ingest"
	"awogen/internal/render"
	"awogen/internal/sitemap"

	"go.uber.org/zap"
)

type Builder struct {
	Cfg       config.Config
	IndexPath string
	Log       *zap.SugaredLogger

	// SkipUnchanged 供 watch 模式使用：渲染指纹和上一轮完全一致就不重新渲染。
	// 正式构建保持 false，重跑永远全量覆盖。
	SkipUnchanged bool
}

type Result struct {
	Guides      int
	Pages       int
	Written     int
	Unchanged   int
	Skipped     bool
	Fingerprint buildfp.Fingerprint
	Warnings    []ingest.Warning
}

func (b *Builder) Run(ctx context.Context) (*Result, error) {
	log := b.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	// 先把所有系列全部加载完，任何一个缺失就整轮失败，不写任何页面
	guides, srcs, warns, err := ingest.LoadAll(b.Cfg.Build.DataDir, b.Cfg.Build.Series, b.Cfg.Site.Languages)
	if err != nil {
		return nil, err
	}
	for _, w := range warns {
		log.Warnw("ingest", "path", w.Path, "msg", w.Msg)
	}

	st, err := index.Open(index.OpenOptions{Path: b.IndexPath})
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer st.Close()

	records := make([]index.SourceRecord, 0, len(srcs))
	for _, s := range srcs {
		records = append(records, index.SourceRecord{
			Slug:    s.Slug,
			Path:    s.Path,
			Hash:    s.Hash,
			ModTime: s.ModTime,
		})
	}
	if err := st.RebuildSources(records); err != nil {
		return nil, fmt.Errorf("failed to rebuild manifest: %w", err)
	}

	md := render.NewMarkdownRenderer()
	tpl, err := render.NewTemplateRenderer(b.Cfg.Build.ThemeDir)
	if err != nil {
		return nil, fmt.Errorf("load templates(%s): %w", b.Cfg.Build.ThemeDir, err)
	}

	fp := b.fingerprint(srcs, tpl.SourceHash())
	if b.SkipUnchanged {
		if prev, err := st.GetRenderHash(); err == nil && prev == fp.RenderHash {
			log.Debugw("inputs unchanged, skipping render", "hash", fp.RenderHash)
			return &Result{Guides: len(guides), Skipped: true, Fingerprint: fp, Warnings: warns}, nil
		}
	}

	outDir := b.Cfg.Build.PublicDir
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir public: %w", err)
	}

	res := &Result{Guides: len(guides), Fingerprint: fp, Warnings: warns}

	bySlug := make(map[string]guide.SeriesGuide, len(guides))
	for _, g := range guides {
		bySlug[g.Slug] = g
	}

	rb := &app.RouteBuilder{Langs: b.Cfg.Site.Languages}

	for _, route := range rb.BuildGuideRoutes(b.Cfg.Build.Series) {
		g := bySlug[route.Slug]
		lg, ok := g.Locale(route.Lang)
		if !ok {
			return nil, fmt.Errorf("guide %s: missing locale %q", route.Slug, route.Lang)
		}

		page, err := render.BuildGuidePage(b.Cfg, md, route.Slug, route.Lang, lg)
		if err != nil {
			return nil, fmt.Errorf("assemble %s/%s: %w", route.Slug, route.Lang, err)
		}
		html, err := tpl.RenderGuide(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("render %s/%s: %w", route.Slug, route.Lang, err)
		}
		if err := b.writeArtifact(st, log, res, outDir, route.OutPath, html); err != nil {
			return nil, err
		}
	}

	for _, route := range rb.BuildHomeRoutes() {
		page, err := render.BuildHomePage(b.Cfg, md, route.Lang, guides)
		if err != nil {
			return nil, fmt.Errorf("assemble home/%s: %w", route.Lang, err)
		}
		html, err := tpl.RenderHome(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("render home/%s: %w", route.Lang, err)
		}
		if err := b.writeArtifact(st, log, res, outDir, route.OutPath, html); err != nil {
			return nil, err
		}
	}

	smRoute := rb.BuildSitemapRoute()
	sm, err := sitemap.Build(b.Cfg.Site.SiteURL, b.Cfg.Build.Series, b.lastmod(srcs))
	if err != nil {
		return nil, fmt.Errorf("render sitemap: %w", err)
	}
	if err := b.writeArtifact(st, log, res, outDir, smRoute.OutPath, sm); err != nil {
		return nil, err
	}

	if err := st.PutRenderHash(res.Fingerprint.RenderHash); err != nil {
		return nil, fmt.Errorf("store fingerprint: %w", err)
	}

	log.Infow("build complete",
		"guides", res.Guides,
		"pages", res.Pages,
		"written", res.Written,
		"unchanged", res.Unchanged,
	)
	return res, nil
}

// lastmod 取所有数据文件里最新的修改时间；拿不到就退回固定的发布日期
func (b *Builder) lastmod(srcs []ingest.Source) string {
	var latest time.Time
	for _, s := range srcs {
		if s.ModTime.After(latest) {
			latest = s.ModTime
		}
	}
	if latest.IsZero() {
		return b.Cfg.Site.Published
	}
	return latest.Format("2006-01-02")
}

func (b *Builder) fingerprint(srcs []ingest.Source, templateHash string) buildfp.Fingerprint {
	hashes := make([]string, 0, len(srcs))
	for _, s := range srcs {
		hashes = append(hashes, s.Hash)
	}
	sort.Strings(hashes)

	fp := buildfp.Fingerprint{
		DataHash:     buildfp.HashStrings(hashes...),
		TemplateHash: templateHash,
		ConfigHash:   buildfp.HashStrings(fmt.Sprintf("%+v", b.Cfg)),
	}
	fp.ComputeRenderHash()
	return fp
}

// writeArtifact 总是全量覆盖写出（重跑必须逐字节可复现），manifest 只用来统计变没变
func (b *Builder) writeArtifact(st *index.Store, log *zap.SugaredLogger, res *Result, outDir, rel string, data []byte) error {
	hash := buildfp.HashBytes(data)

	prev, err := st.GetArtifact(rel)
	if err != nil && !errors.Is(err, index.ErrNotFound) {
		return err
	}
	changed := err != nil || prev.Hash != hash

	if err := writeFile(outDir, rel, data); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	if err := st.PutArtifact(index.ArtifactRecord{
		Path:    rel,
		Hash:    hash,
		Size:    len(data),
		BuiltAt: time.Now(),
	}); err != nil {
		return err
	}

	res.Pages++
	if changed {
		res.Written++
		log.Infow("wrote", "path", rel, "bytes", len(data))
	} else {
		res.Unchanged++
		log.Debugw("wrote (unchanged)", "path", rel)
	}
	return nil
}

func writeFile(root, rel string, data []byte) error {
	full := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}
