package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-fashion-kit/internal/builder"
	"github.com/shouni/go-fashion-kit/pkg/domain"
	"github.com/shouni/go-fashion-kit/pkg/publisher"

	"github.com/spf13/cobra"
)

// documentCmd は、試着画像からテックパックと商品コピーを作って文書として書き出すのだ。
var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "テックパックと商品コピーを作成します。",
	Long: `--input の試着画像とスタイル選択からテックパックと商品コピーを並行して生成し、
--output-dir に Markdown と HTML の文書を書き出します。片方の生成に失敗しても、もう片方は出力されます。`,
	RunE: documentCommand,
}

func init() {
	documentCmd.Flags().StringVarP(&prompt, "prompt", "p", "", "柄の説明文（商品コピーに使います）。")
	documentCmd.Flags().StringVar(&style.OutfitType, "outfit", "", "衣装の種類（必須）。")
	documentCmd.Flags().StringVar(&style.WearingStyle, "wearing-style", "", "着付けのスタイル。")
	documentCmd.Flags().StringVar(&style.FabricType, "fabric", "", "生地の種類。")
}

func documentCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.InputFile == "" {
		return fmt.Errorf("試着画像（--input）を指定してください")
	}
	tryOn, err := readImage(opts.InputFile)
	if err != nil {
		return err
	}

	appCtx, err := loadApp(ctx)
	if err != nil {
		return err
	}

	s := domain.NewSession("cli", domain.UnlimitedCredits, true)
	s.Prompt = prompt
	s.Style = style
	s.TryOn = tryOn

	s, outcome := appCtx.Manager.Flows().Document(ctx, s)
	if outcome.TechPackErr != nil {
		slog.WarnContext(ctx, "テックパックの生成に失敗しました", "error", outcome.TechPackErr)
	}
	if outcome.EcommerceCopyErr != nil {
		slog.WarnContext(ctx, "商品コピーの生成に失敗しました", "error", outcome.EcommerceCopyErr)
	}
	if outcome.TechPack == nil && outcome.EcommerceCopy == nil {
		return fmt.Errorf("ドキュメントの生成に失敗しました: %w", outcome.TechPackErr)
	}

	result, err := builder.BuildPublisher().Publish(ctx, s, publisher.Options{OutputDir: opts.OutputDir})
	if err != nil {
		return fmt.Errorf("ドキュメントの書き出しに失敗しました: %w", err)
	}
	slog.Info("ドキュメントを書き出したのだ", "markdown", result.MarkdownPath, "html", result.HTMLPath)
	return printJSON(cmd.OutOrStdout(), result)
}
