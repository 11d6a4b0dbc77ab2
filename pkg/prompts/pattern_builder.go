package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/go-fashion-kit/pkg/domain"
)

// patternClauses は柄生成の修飾指示です。fabric → weave → texture → scale の順は後段が前段を補足する関係のため固定です。
var patternClauses = clauseTable[domain.StyleOptions]{
	{
		name:    "fabric",
		applies: func(s domain.StyleOptions) bool { return domain.IsConcreteFabric(s.FabricType) },
		render:  func(s domain.StyleOptions) string { return fmt.Sprintf(patternFabricTemplate, strings.TrimSpace(s.FabricType)) },
	},
	{
		name:    "weave",
		applies: func(s domain.StyleOptions) bool { return domain.HasValue(s.Weave) },
		render:  func(s domain.StyleOptions) string { return fmt.Sprintf(patternWeaveTemplate, strings.TrimSpace(s.Weave)) },
	},
	{
		name:    "texture",
		applies: func(s domain.StyleOptions) bool { return domain.HasValue(s.Texture) },
		render:  func(s domain.StyleOptions) string { return fmt.Sprintf(patternTextureTemplate, strings.TrimSpace(s.Texture)) },
	},
	{
		name:    "scale",
		applies: func(s domain.StyleOptions) bool { return domain.HasValue(s.Scale) },
		render:  func(s domain.StyleOptions) string { return fmt.Sprintf(patternScaleTemplate, strings.TrimSpace(s.Scale)) },
	},
}

// BuildPatternText は柄生成の指示文を組み立てます。
// 修飾値がすべて空またはセンチネルの場合は固定の書き出しと完全に一致します。
func BuildPatternText(prompt string, details domain.StyleOptions) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(PatternBaseTemplate, strings.TrimSpace(prompt)))
	patternClauses.appendTo(&sb, details)
	return sb.String()
}

func buildPatternImage(p domain.PatternImagePayload) ComposedRequest {
	return newRequest(p.Action(), nil, BuildPatternText(p.Prompt, p.Details))
}

func buildBorderImage(p domain.BorderImagePayload) ComposedRequest {
	return newRequest(p.Action(), nil, BuildPatternText(p.Prompt, p.Details))
}
