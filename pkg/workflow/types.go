package workflow

import "github.com/shouni/go-fashion-kit/pkg/domain"

// PatternOutcome は柄生成フローの結果です。
// 付加情報の取得に失敗した場合は該当フィールドが nil になり、Degraded にそのアクションが記録されます。
type PatternOutcome struct {
	Pattern     *domain.Image             `json:"pattern"`
	Palette     []domain.ColorSwatch      `json:"palette,omitempty"`
	Suggestions []domain.FabricSuggestion `json:"suggestions,omitempty"`
	Degraded    []domain.GenerationAction `json:"degraded,omitempty"`
}

// InspirationOutcome はインスピレーション画像フローの結果です。
type InspirationOutcome struct {
	Prompt   string                    `json:"prompt,omitempty"`
	Palette  []domain.ColorSwatch      `json:"palette,omitempty"`
	Degraded []domain.GenerationAction `json:"degraded,omitempty"`
}

// DocumentationOutcome はドキュメント生成の結果です。二つの生成は互いに依存しないため、個別にエラーを持ちます。
type DocumentationOutcome struct {
	TechPack         *domain.TechPack      `json:"techPack,omitempty"`
	EcommerceCopy    *domain.EcommerceCopy `json:"ecommerceCopy,omitempty"`
	TechPackErr      error                 `json:"-"`
	EcommerceCopyErr error                 `json:"-"`
}
