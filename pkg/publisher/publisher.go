package publisher

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/shouni/go-fashion-kit/pkg/domain"
)

// Options はパブリッシュ動作を制御する設定項目です。
type Options struct {
	OutputDir string
}

// PublishResult はパブリッシュ処理の結果として生成されたファイルの情報を保持します。
type PublishResult struct {
	MarkdownPath string   // 生成された design.md のパス
	HTMLPath     string   // 生成された HTML のパス
	ImagePaths   []string // 保存された全画像のパスリスト
}

const (
	defaultDocumentName = "design.md"
	defaultImageDirName = "images"
)

type savedImage struct {
	label   string
	relPath string
}

// DesignPublisher はデザインセッションの成果物を Markdown と HTML の文書として書き出します。
type DesignPublisher struct {
	writer   OutputWriter
	renderer HTMLRenderer
}

// NewDesignPublisher は DesignPublisher を作成します。renderer が nil の場合は HTML を出力しません。
func NewDesignPublisher(writer OutputWriter, renderer HTMLRenderer) *DesignPublisher {
	return &DesignPublisher{
		writer:   writer,
		renderer: renderer,
	}
}

// Publish は画像の保存、Markdownの構築、HTML変換を一括して実行し、生成されたファイル情報を返します。
func (p *DesignPublisher) Publish(ctx context.Context, s domain.Session, opts Options) (PublishResult, error) {
	result := PublishResult{}

	markdown, err := ResolveOutputPath(opts.OutputDir, defaultDocumentName)
	if err != nil {
		return result, err
	}
	result.MarkdownPath = markdown

	imgDir, err := ResolveOutputPath(opts.OutputDir, defaultImageDirName)
	if err != nil {
		return result, err
	}

	saved, err := p.saveImages(ctx, s, imgDir)
	if err != nil {
		return result, fmt.Errorf("画像の書き込みに失敗しました: %w", err)
	}
	for _, img := range saved {
		result.ImagePaths = append(result.ImagePaths, filepath.Join(imgDir, path.Base(img.relPath)))
	}

	content := buildMarkdown(s, saved)
	if err := p.writer.Write(ctx, markdown, strings.NewReader(content), "text/markdown; charset=utf-8"); err != nil {
		return result, fmt.Errorf("markdownファイルの書き込みに失敗しました: %w", err)
	}

	if p.renderer != nil {
		title := documentTitle(s)
		slog.InfoContext(ctx, "Converting to HTML", "title", title)
		htmlBuffer, err := p.renderer.Render(title, []byte(content))
		if err != nil {
			return result, fmt.Errorf("HTMLの変換に失敗しました: %w", err)
		}

		htmlPath := strings.TrimSuffix(markdown, filepath.Ext(markdown)) + ".html"
		if err := p.writer.Write(ctx, htmlPath, htmlBuffer, "text/html; charset=utf-8"); err != nil {
			return result, fmt.Errorf("HTMLファイルの書き込みに失敗しました: %w", err)
		}
		result.HTMLPath = htmlPath
	}

	return result, nil
}

// saveImages はセッションが持つ画像を書き出し、見出しと Markdown 用の相対パスを返します。
func (p *DesignPublisher) saveImages(ctx context.Context, s domain.Session, baseDir string) ([]savedImage, error) {
	candidates := []struct {
		label string
		name  string
		img   *domain.Image
	}{
		{"Virtual Try-On", "tryon", s.TryOn},
		{"Pattern", "pattern", s.Pattern},
		{"Top Material", "top", s.Top},
		{"Border", "border", s.Border},
	}
	if !s.Main.Empty() && (s.Pattern.Empty() || !bytes.Equal(s.Main.Data, s.Pattern.Data)) {
		candidates = append(candidates, struct {
			label string
			name  string
			img   *domain.Image
		}{"Main Material", "main", s.Main})
	}

	var saved []savedImage
	for _, c := range candidates {
		if c.img.Empty() {
			continue
		}
		name := c.name + extensionFor(c.img.MIMEType)
		fullPath, err := ResolveOutputPath(baseDir, name)
		if err != nil {
			return nil, fmt.Errorf("出力パスの解決に失敗しました: %w", err)
		}
		if err := p.writer.Write(ctx, fullPath, bytes.NewReader(c.img.Data), c.img.MIMEType); err != nil {
			return nil, fmt.Errorf("画像の書き込みに失敗しました %s: %w", fullPath, err)
		}
		saved = append(saved, savedImage{label: c.label, relPath: path.Join(defaultImageDirName, name)})
	}
	return saved, nil
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}
