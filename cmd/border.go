package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-fashion-kit/pkg/domain"

	"github.com/spf13/cobra"
)

// borderCmd は、メイン柄に合うボーダー柄を生成するサブコマンドなのだ。
var borderCmd = &cobra.Command{
	Use:   "border",
	Short: "メイン柄に合うボーダー柄を生成します。",
	Long: `--input のメイン柄からボーダー用のプロンプトを導き、ボーダー柄を生成します。
--prompt を指定した場合はプロンプトの導出を省略します。`,
	RunE: borderCommand,
}

func init() {
	addPatternFlags(borderCmd)
}

func borderCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.OutputFile == "" {
		return fmt.Errorf("ボーダー柄の保存先（--output）を指定してください")
	}

	appCtx, err := loadApp(ctx)
	if err != nil {
		return err
	}
	flows := appCtx.Manager.Flows()
	s := domain.NewSession("cli", domain.UnlimitedCredits, true)

	p := prompt
	if strings.TrimSpace(p) == "" && era == "" {
		if opts.InputFile == "" {
			return fmt.Errorf("メイン柄（--input）または --prompt を指定してください")
		}
		mainImg, err := readImage(opts.InputFile)
		if err != nil {
			return err
		}
		s.Pattern = mainImg
		if s, p, err = flows.MatchingBorderPrompt(ctx, s); err != nil {
			return fmt.Errorf("ボーダー用プロンプトの導出に失敗しました: %w", err)
		}
		slog.Info("ボーダー用プロンプトを導出しました", "prompt", p)
	} else if p, err = resolvePrompt(); err != nil {
		return err
	}

	s, err = flows.GenerateBorder(ctx, s, p, style)
	if err != nil {
		return fmt.Errorf("ボーダー柄の生成に失敗しました: %w", err)
	}
	if err := writeImage(opts.OutputFile, s.Border); err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), map[string]string{"prompt": p, "output": opts.OutputFile})
}
