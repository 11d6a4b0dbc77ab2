package cmd

import (
	"fmt"

	"github.com/shouni/go-fashion-kit/pkg/domain"
	"github.com/shouni/go-fashion-kit/pkg/workflow"

	"github.com/spf13/cobra"
)

var (
	topFile    string
	borderFile string
)

// tryonCmd は割り当てた素材で試着画像を生成します。
var tryonCmd = &cobra.Command{
	Use:   "tryon",
	Short: "素材を割り当ててバーチャル試着画像を生成します。",
	Long: `--input のメイン素材（必須）、--top と --border の任意素材を使い、
指定したスタイルでモデルが衣装を着用した画像を生成します。`,
	RunE: tryonCommand,
}

func init() {
	addTryOnFlags(tryonCmd)
	tryonCmd.Flags().StringVar(&topFile, "top", "", "トップス（ブラウス等）の素材画像。")
	tryonCmd.Flags().StringVar(&borderFile, "border", "", "縁取りの素材画像。")
}

func tryonCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.InputFile == "" {
		return fmt.Errorf("メイン素材（--input）を指定してください")
	}
	if opts.OutputFile == "" {
		return fmt.Errorf("試着画像の保存先（--output）を指定してください")
	}

	s, err := loadMaterials(domain.NewSession("cli", domain.UnlimitedCredits, true))
	if err != nil {
		return err
	}

	appCtx, err := loadApp(ctx)
	if err != nil {
		return err
	}
	s, err = appCtx.Manager.Flows().Visualize(ctx, s, style)
	if err != nil {
		return fmt.Errorf("試着画像の生成に失敗しました: %w", err)
	}
	return writeImage(opts.OutputFile, s.TryOn)
}

// loadMaterials はフラグで指定された素材画像をセッションに割り当てます。
func loadMaterials(s domain.Session) (domain.Session, error) {
	for _, m := range []struct {
		role domain.ImageRole
		path string
	}{
		{domain.RoleMain, opts.InputFile},
		{domain.RoleTop, topFile},
		{domain.RoleBorder, borderFile},
	} {
		img, err := readImage(m.path)
		if err != nil {
			return s, err
		}
		if img != nil {
			s = workflow.AssignMaterial(s, m.role, *img)
		}
	}
	return s, nil
}
