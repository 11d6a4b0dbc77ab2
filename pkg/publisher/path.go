package publisher

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shouni/go-utils/urlpath"
)

// ResolveOutputPath は、ベースとなるディレクトリパスとファイル名から最終的な出力パスを生成します。
// ファイル名にディレクトリ外を指す要素が含まれる場合はエラーを返します。
func ResolveOutputPath(baseDir, fileName string) (string, error) {
	if strings.TrimSpace(baseDir) == "" {
		return "", fmt.Errorf("出力ディレクトリは必須です")
	}
	clean := filepath.Clean(fileName)
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("無効なファイル名です: %s", fileName)
	}
	return urlpath.ResolveOutputPath(baseDir, clean)
}
