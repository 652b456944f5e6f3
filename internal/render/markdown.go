package render

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type MarkdownRenderer struct {
	md goldmark.Markdown
}

func NewMarkdownRenderer() *MarkdownRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
			extension.Strikethrough,
		),
		// 数据文件里历来直接写 HTML，必须原样透传
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return &MarkdownRenderer{md: md}
}

func (r *MarkdownRenderer) Render(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderInline 渲染富文本字段。单段输出剥掉外层 <p>，嵌进已有的 <p>/<div> 里不会套娃；
// 多段内容保留分段。
func (r *MarkdownRenderer) RenderInline(src string) (string, error) {
	out, err := r.Render([]byte(src))
	if err != nil {
		return "", err
	}

	s := strings.TrimSpace(string(out))
	if strings.HasPrefix(s, "<p>") && strings.HasSuffix(s, "</p>") {
		inner := s[len("<p>") : len(s)-len("</p>")]
		if !strings.Contains(inner, "<p>") {
			return inner, nil
		}
	}
	return s, nil
}
