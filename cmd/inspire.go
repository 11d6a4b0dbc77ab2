package cmd

import (
	"fmt"

	"github.com/shouni/go-fashion-kit/pkg/domain"

	"github.com/spf13/cobra"
)

// inspireCmd はアップロード画像から柄のプロンプトと配色を導きます。
var inspireCmd = &cobra.Command{
	Use:   "inspire",
	Short: "参考画像を解析し、柄のプロンプトと配色を導きます。",
	Long:  `--input で指定した画像をメイン素材として扱い、画像解析と配色抽出を並行して行います。`,
	RunE:  inspireCommand,
}

func inspireCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.InputFile == "" {
		return fmt.Errorf("参考画像（--input）を指定してください")
	}
	img, err := readImage(opts.InputFile)
	if err != nil {
		return err
	}

	appCtx, err := loadApp(ctx)
	if err != nil {
		return err
	}

	s := domain.NewSession("cli", domain.UnlimitedCredits, true)
	_, outcome, err := appCtx.Manager.Flows().Inspire(ctx, s, *img)
	if err != nil {
		return fmt.Errorf("画像の解析に失敗しました: %w", err)
	}
	return printJSON(cmd.OutOrStdout(), outcome)
}
