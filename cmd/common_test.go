package cmd

import (
	"bytes"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shouni/go-fashion-kit/pkg/domain"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestReadImage(t *testing.T) {
	dir := t.TempDir()

	t.Run("バイナリファイルを読み込むこと", func(t *testing.T) {
		path := filepath.Join(dir, "pattern.png")
		if err := os.WriteFile(path, pngHeader, 0o644); err != nil {
			t.Fatal(err)
		}
		img, err := readImage(path)
		if err != nil {
			t.Fatalf("readImage() error = %v", err)
		}
		if img.MIMEType != "image/png" || !bytes.Equal(img.Data, pngHeader) {
			t.Errorf("img = %s / %d bytes", img.MIMEType, len(img.Data))
		}
	})

	t.Run("base64 テキストを読み込むこと", func(t *testing.T) {
		path := filepath.Join(dir, "pattern.b64")
		encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngHeader)
		if err := os.WriteFile(path, []byte(encoded+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		img, err := readImage(path)
		if err != nil {
			t.Fatalf("readImage() error = %v", err)
		}
		if !bytes.Equal(img.Data, pngHeader) {
			t.Errorf("Data = %v", img.Data)
		}
	})

	t.Run("空のパスは nil", func(t *testing.T) {
		img, err := readImage("")
		if img != nil || err != nil {
			t.Errorf("img = %v, err = %v", img, err)
		}
	})

	t.Run("空のファイルはエラー", func(t *testing.T) {
		path := filepath.Join(dir, "empty.png")
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := readImage(path); !errors.Is(err, domain.ErrEmptyImage) {
			t.Errorf("err = %v", err)
		}
	})
}

func TestWriteImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "tryon.png")
	if err := writeImage(path, &domain.Image{MIMEType: "image/png", Data: pngHeader}); err != nil {
		t.Fatalf("writeImage() error = %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil || !bytes.Equal(got, pngHeader) {
		t.Errorf("got %v, err = %v", got, err)
	}

	if err := writeImage(path, nil); !errors.Is(err, domain.ErrEmptyImage) {
		t.Errorf("err = %v", err)
	}
}

func TestResolvePrompt(t *testing.T) {
	t.Cleanup(func() { prompt, era = "", "" })

	prompt, era = "  ", "Art Deco"
	got, err := resolvePrompt()
	if err != nil || !strings.Contains(got, "Art Deco") {
		t.Errorf("got %q, err = %v", got, err)
	}

	prompt = "paisley"
	if got, _ := resolvePrompt(); got != "paisley" {
		t.Errorf("got %q", got)
	}

	prompt, era = "", "Default"
	if _, err := resolvePrompt(); err == nil {
		t.Error("プロンプトも時代も無い場合にエラーになりませんでした")
	}
}
