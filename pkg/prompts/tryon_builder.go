package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/go-fashion-kit/pkg/domain"
)

// tryOnInput は試着指示文の各句が参照する入力です。
type tryOnInput struct {
	style     domain.StyleOptions
	hasTop    bool
	hasBorder bool
}

// tryOnClauses は試着の指示文を宣言順に並べたテーブルです。
var tryOnClauses = clauseTable[tryOnInput]{
	{
		name: "subject",
		render: func(in tryOnInput) string {
			return fmt.Sprintf(tryOnSubjectTemplate, orDefault(in.style.ModelSize, domain.DefaultModelSize), strings.TrimSpace(in.style.OutfitType), strings.TrimSpace(in.style.Neckline))
		},
	},
	{
		name:    "fabric",
		applies: func(in tryOnInput) bool { return domain.IsConcreteFabric(in.style.FabricType) },
		render:  func(in tryOnInput) string { return fmt.Sprintf(tryOnFabricTemplate, strings.TrimSpace(in.style.FabricType)) },
	},
	{
		name:    "wearing_style",
		applies: func(in tryOnInput) bool { return domain.IsCustomWearingStyle(in.style.WearingStyle) },
		render:  func(in tryOnInput) string { return WearingStyleClause(in.style.WearingStyle) },
	},
	{
		name:    "top_exclusive",
		applies: func(in tryOnInput) bool { return in.hasTop },
		render:  func(tryOnInput) string { return tryOnTopExclusive },
	},
	{
		name: "main",
		render: func(in tryOnInput) string {
			if in.hasTop {
				return tryOnMainExclusive
			}
			return tryOnMainEntire
		},
	},
	{
		name:    "border_trim",
		applies: func(in tryOnInput) bool { return in.hasBorder },
		render:  func(tryOnInput) string { return tryOnBorderTrim },
	},
	{
		name:   "pose",
		render: func(in tryOnInput) string { return fmt.Sprintf(tryOnPoseTemplate, orDefault(in.style.Pose, domain.DefaultPose)) },
	},
	{
		name:    "accessories",
		applies: func(in tryOnInput) bool { return in.style.Accessories },
		render:  func(tryOnInput) string { return tryOnAccessories },
	},
	{
		name: "environment",
		render: func(in tryOnInput) string {
			return fmt.Sprintf(tryOnEnvironmentTemplate, orDefault(in.style.Environment, domain.DefaultEnvironment))
		},
	},
	{
		name:   "camera",
		render: func(in tryOnInput) string { return fmt.Sprintf(tryOnClosingTemplate, domain.CameraViewLabel(in.style.CameraView)) },
	},
}

// WearingStyleClause は着こなしの指示文を返します。特例表に登録された着こなしはその言い回しを優先します。
func WearingStyleClause(style string) string {
	if override, ok := drapeOverrides[strings.ToLower(strings.TrimSpace(style))]; ok {
		return override
	}
	return fmt.Sprintf(tryOnWearingStyleTemplate, strings.TrimSpace(style))
}

// buildTryOn は画像を top → main → border の順に添付し、最後に指示文を置きます。
func buildTryOn(p domain.TryOnPayload) ComposedRequest {
	images := p.ReferenceImages()

	in := tryOnInput{style: p.Style}
	for _, img := range images {
		switch img.Role {
		case domain.RoleTop:
			in.hasTop = true
		case domain.RoleBorder:
			in.hasBorder = true
		}
	}

	var sb strings.Builder
	tryOnClauses.appendTo(&sb, in)
	return newRequest(p.Action(), images, strings.TrimSpace(sb.String()))
}

func buildRecolor(p domain.RecolorPayload) ComposedRequest {
	images := []domain.ReferenceImage{{Role: domain.RoleMain, Image: *p.Pattern}}
	return newRequest(p.Action(), images, fmt.Sprintf(recolorTemplate, strings.TrimSpace(p.ColorPrompt)))
}

func orDefault(v, def string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return def
}
