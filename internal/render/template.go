package render

import (
	"bytes"
	"context"
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

//go:embed templates/*.tmpl
var builtinTemplates embed.FS

type TemplateRenderer struct {
	tpl  *template.Template
	hash string
}

// NewTemplateRenderer 默认用内置模板；themeDir 非空时从磁盘加载同名 *.tmpl 覆盖，
// 和主题目录的用法一致。
func NewTemplateRenderer(themeDir string) (*TemplateRenderer, error) {
	if themeDir == "" {
		return newBuiltinRenderer()
	}

	files, err := filepath.Glob(filepath.Join(themeDir, "*.tmpl"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found in %s", themeDir)
	}
	sort.Strings(files)

	tpl, err := template.New("").Funcs(templateFuncs()).ParseFiles(files...)
	if err != nil {
		return nil, err
	}

	h := sha256.New()
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}
		h.Write(data)
	}
	return &TemplateRenderer{tpl: tpl, hash: hex.EncodeToString(h.Sum(nil))}, nil
}

func newBuiltinRenderer() (*TemplateRenderer, error) {
	tpl, err := template.New("").Funcs(templateFuncs()).ParseFS(builtinTemplates, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}

	names, err := fs.Glob(builtinTemplates, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	h := sha256.New()
	for _, name := range names {
		data, err := fs.ReadFile(builtinTemplates, name)
		if err != nil {
			return nil, err
		}
		h.Write(data)
	}
	return &TemplateRenderer{tpl: tpl, hash: hex.EncodeToString(h.Sum(nil))}, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"badgeClass":   BadgeClass,
		"verdictClass": VerdictClass,
		"verdictLabel": VerdictLabel,
		"typeLabel":    TypeLabel,
		"label":        Label,
		"gtmHead":      GTMHead,
		"orHash": func(s string) string {
			if s == "" {
				return "#"
			}
			return s
		},
	}
}

// SourceHash 参与构建指纹：模板变了输出才可能变
func (r *TemplateRenderer) SourceHash() string {
	return r.hash
}

func (r *TemplateRenderer) RenderGuide(ctx context.Context, page GuidePage) ([]byte, error) {
	return r.exec("guide.tmpl", page)
}

func (r *TemplateRenderer) RenderHome(ctx context.Context, page HomePage) ([]byte, error) {
	return r.exec("home.tmpl", page)
}

func (r *TemplateRenderer) exec(name string, data interface{}) ([]byte, error) {
	t := r.tpl.Lookup(name)
	if t == nil {
		return nil, fmt.Errorf("template %s not found", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
