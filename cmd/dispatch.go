package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shouni/go-fashion-kit/pkg/domain"

	"github.com/spf13/cobra"
)

// dispatchCmd は単一のアクションを JSON ペイロードで実行します。
var dispatchCmd = &cobra.Command{
	Use:   "dispatch <action>",
	Short: "単一の生成アクションを実行します。",
	Long: `アクション名と JSON ペイロード（--input、'-' で標準入力）を受け取り、生成機能を一度だけ呼び出します。
画像を返すアクションで --output が指定された場合は画像を保存し、それ以外は結果を JSON で出力します。

アクション一覧:
  ` + strings.Join(actionNames(), "\n  "),
	Args: cobra.ExactArgs(1),
	RunE: dispatchCommand,
}

func dispatchCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	raw := json.RawMessage("{}")
	if opts.InputFile != "" {
		b, err := readInput(opts.InputFile)
		if err != nil {
			return err
		}
		raw = b
	}

	appCtx, err := loadApp(ctx)
	if err != nil {
		return err
	}

	res, err := appCtx.Manager.Dispatcher().DispatchRaw(ctx, args[0], raw)
	if err != nil {
		return fmt.Errorf("アクションの実行に失敗しました: %w", err)
	}

	if res.Modality == domain.ModalityImage && opts.OutputFile != "" {
		return writeImage(opts.OutputFile, res.Image)
	}
	return printJSON(cmd.OutOrStdout(), map[string]any{"success": true, "data": res.Data()})
}

func actionNames() []string {
	actions := domain.AllActions()
	names := make([]string, 0, len(actions))
	for _, a := range actions {
		names = append(names, fmt.Sprintf("%-28s (%s)", a.String(), a.LegacyName()))
	}
	return names
}
