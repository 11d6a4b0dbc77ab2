package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/shouni/go-fashion-kit/internal/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

var (
	opts config.GenerateOptions
	cfg  *config.Config
)

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- 入出力 ---
	rootCmd.PersistentFlags().StringVarP(&opts.InputFile, "input", "i", "", "入力ファイルのパス（'-' で標準入力）。")
	rootCmd.PersistentFlags().StringVarP(&opts.OutputFile, "output", "o", "", "生成結果の保存先。省略時は標準出力に JSON を出力します。")
	rootCmd.PersistentFlags().StringVar(&opts.OutputDir, "output-dir", config.DefaultOutputDir, "ドキュメントの出力ディレクトリ。")

	// --- AIモデル・挙動設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.TextModel, "model", "", "テキスト/構造化出力に使う Gemini モデル名。")
	rootCmd.PersistentFlags().StringVar(&opts.ImageModel, "image-model", "", "柄生成に使う Gemini モデル名。")
	rootCmd.PersistentFlags().StringVar(&opts.EditModel, "edit-model", "", "試着・再配色に使う Gemini モデル名。")
	rootCmd.PersistentFlags().DurationVar(&opts.RequestTimeout, "timeout", config.DefaultRequestTimeout, "一回の生成リクエストのタイムアウト。")
}

// preRunAppE は、コマンド実行前にロガーを設定し、環境変数の必須チェックを行うのだ。
// 生成機能を使うので、認証情報の確認は欠かせないのだ！
func preRunAppE(cmd *cobra.Command, args []string) error {
	opts.Verbose = verboseFlag(cmd)
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	loaded, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("設定の読み込みに失敗しました: %w", err)
	}
	loaded.Options = opts
	if !loaded.Library().HasCredentials() {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY（または PROJECT_ID）が設定されていません。生成機能の利用には必須です")
	}
	cfg = loaded
	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"fashion-kit",
		addAppFlags,
		preRunAppE,
		dispatchCmd,
		patternCmd,
		inspireCmd,
		borderCmd,
		tryonCmd,
		documentCmd,
		serveCmd,
	)
}

func verboseFlag(cmd *cobra.Command) bool {
	f := cmd.Flags().Lookup("verbose")
	return f != nil && f.Value.String() == "true"
}
