package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-fashion-kit/pkg/domain"
	"github.com/shouni/go-fashion-kit/pkg/prompts"

	"github.com/spf13/cobra"
)

// patternCmd は、柄を生成して配色とサステナブル素材の提案を付け加えるサブコマンドなのだ。
var patternCmd = &cobra.Command{
	Use:   "pattern",
	Short: "テキスタイル柄を生成します。",
	Long: `説明文から継ぎ目のない柄画像を生成し、配色の抽出とサステナブル素材の提案を並行して行います。
付加情報の取得に失敗しても柄の生成自体は成功として扱います。`,
	RunE: patternCommand,
}

func init() {
	addPatternFlags(patternCmd)
}

func patternCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	p, err := resolvePrompt()
	if err != nil {
		return err
	}

	appCtx, err := loadApp(ctx)
	if err != nil {
		return err
	}

	slog.Info("柄の生成を開始します", "prompt", p, "fabric", style.FabricType)
	s := domain.NewSession("cli", domain.UnlimitedCredits, true)
	s, outcome, err := appCtx.Manager.Flows().GeneratePattern(ctx, s, p, style)
	if err != nil {
		return fmt.Errorf("柄の生成に失敗しました: %w", err)
	}

	if opts.OutputFile != "" {
		if err := writeImage(opts.OutputFile, s.Pattern); err != nil {
			return err
		}
		outcome.Pattern = nil
	}
	return printJSON(cmd.OutOrStdout(), outcome)
}

// resolvePrompt はプロンプトが空の場合にデザイン時代のプリセットを使います。
func resolvePrompt() (string, error) {
	if strings.TrimSpace(prompt) != "" {
		return prompt, nil
	}
	if p, ok := prompts.EraPrompt(era); ok {
		return p, nil
	}
	return "", fmt.Errorf("--prompt または --era を指定してください")
}
