package publisher

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 860px; margin: 2rem auto; color: #222; }
img { max-width: 100%%; border: 1px solid #ddd; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 4px 8px; }
.swatch { display: inline-block; width: 1em; height: 1em; vertical-align: middle; }
</style>
</head>
<body>
%s
</body>
</html>
`

// HTMLRenderer は Markdown を単体の HTML 文書に変換します。
type HTMLRenderer interface {
	Render(title string, markdown []byte) (*bytes.Buffer, error)
}

// MarkdownRenderer は goldmark を使った HTMLRenderer の実装です。
type MarkdownRenderer struct {
	md goldmark.Markdown
}

// NewMarkdownRenderer は GFM 拡張（表など）を有効にしたレンダラーを作成します。
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Render は Markdown を変換し、HTML 文書の枠に埋め込みます。
func (r *MarkdownRenderer) Render(title string, markdown []byte) (*bytes.Buffer, error) {
	var body bytes.Buffer
	if err := r.md.Convert(markdown, &body); err != nil {
		return nil, fmt.Errorf("Markdownの変換に失敗しました: %w", err)
	}
	out := new(bytes.Buffer)
	fmt.Fprintf(out, htmlTemplate, html.EscapeString(title), body.String())
	return out, nil
}
