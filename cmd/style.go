package cmd

import (
	"github.com/shouni/go-fashion-kit/pkg/domain"

	"github.com/spf13/cobra"
)

var (
	style  domain.StyleOptions
	prompt string
	era    string
)

// addPatternFlags は柄生成で使うフラグを定義します。
func addPatternFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "柄の説明文。")
	cmd.Flags().StringVar(&era, "era", "", "プロンプトが空の場合に使うデザイン時代のプリセット（Mughal, Art Deco など）。")
	cmd.Flags().StringVar(&style.FabricType, "fabric", "", "生地の種類（Auto は指定なし）。")
	cmd.Flags().StringVar(&style.Weave, "weave", "", "織り方。")
	cmd.Flags().StringVar(&style.Texture, "texture", "", "質感。")
	cmd.Flags().StringVar(&style.Scale, "scale", "", "柄の大きさ。")
}

func addTryOnFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&style.OutfitType, "outfit", "", "衣装の種類（必須）。")
	cmd.Flags().StringVar(&style.Neckline, "neckline", "", "ネックライン（必須）。")
	cmd.Flags().StringVar(&style.WearingStyle, "wearing-style", "", "着付けのスタイル。")
	cmd.Flags().StringVar(&style.ModelSize, "model-size", domain.DefaultModelSize, "モデルのサイズ。")
	cmd.Flags().StringVar(&style.CameraView, "camera", "Full Body", "カメラアングル。")
	cmd.Flags().StringVar(&style.Environment, "environment", domain.DefaultEnvironment, "背景。")
	cmd.Flags().StringVar(&style.Pose, "pose", domain.DefaultPose, "ポーズ。")
	cmd.Flags().BoolVar(&style.Accessories, "accessories", false, "衣装に合うアクセサリーを追加します。")
	cmd.Flags().StringVar(&style.FabricType, "fabric", "", "生地の種類（Auto は指定なし）。")
}
