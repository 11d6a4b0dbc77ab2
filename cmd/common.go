package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shouni/go-fashion-kit/internal/builder"
	"github.com/shouni/go-fashion-kit/pkg/domain"
)

// loadApp は設定からアプリケーションの依存関係を構築します。
func loadApp(ctx context.Context) (*builder.AppContext, error) {
	appCtx, err := builder.NewAppContext(ctx, cfg, nil)
	if err != nil {
		return nil, err
	}
	lc := cfg.Library()
	slog.DebugContext(ctx, "Application initialized",
		"text_model", lc.TextModel,
		"image_model", lc.ImageModel,
		"edit_model", lc.EditModel,
	)
	return appCtx, nil
}

// readInput はファイルまたは標準入力（"-"）の内容を読み込みます。
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("入力ファイルの読み込みに失敗しました: %w", err)
	}
	return b, nil
}

// readImage は画像ファイルを読み込みます。空のパスの場合は nil を返します。
func readImage(path string) (*domain.Image, error) {
	if path == "" {
		return nil, nil
	}
	b, err := readInput(path)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrEmptyImage)
	}
	img, err := domain.DecodeImage(string(b))
	if err != nil {
		// base64 でなければ生のバイナリとして扱います。
		img = domain.NewImage(b)
	}
	return &img, nil
}

func writeImage(path string, img *domain.Image) error {
	if img.Empty() {
		return domain.ErrEmptyImage
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ディレクトリの作成に失敗しました: %w", err)
	}
	if err := os.WriteFile(path, img.Data, 0o644); err != nil {
		return fmt.Errorf("画像の書き込みに失敗しました: %w", err)
	}
	slog.Info("Image saved", "path", path, "mime_type", img.MIMEType, "bytes", len(img.Data))
	return nil
}

// printJSON は値を整形して標準出力に書き出します。
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
