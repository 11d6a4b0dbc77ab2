package domain

import "strings"

// GenerationAction は生成アクションを識別するタグです。集合は閉じており、追加はコード変更でのみ行います。
type GenerationAction string

const (
	ActionPatternImage             GenerationAction = "pattern-image"
	ActionBorderImage              GenerationAction = "border-image"
	ActionPaletteExtraction        GenerationAction = "palette-extraction"
	ActionPromptIdeas              GenerationAction = "prompt-ideas"
	ActionPromptEnhancement        GenerationAction = "prompt-enhancement"
	ActionImageAnalysis            GenerationAction = "image-analysis"
	ActionBorderPromptFromImage    GenerationAction = "border-prompt-from-image"
	ActionCompositeTryOn           GenerationAction = "composite-try-on"
	ActionRecolor                  GenerationAction = "recolor"
	ActionTrendForecast            GenerationAction = "trend-forecast"
	ActionSustainabilitySuggestion GenerationAction = "sustainability-suggestions"
	ActionTechPack                 GenerationAction = "tech-pack"
	ActionEcommerceCopy            GenerationAction = "ecommerce-copy"
)

// Modality は外部生成機能に期待するレスポンスの形式です。
type Modality int

const (
	ModalityText Modality = iota
	ModalityImage
	ModalityStructured
)

func (m Modality) String() string {
	switch m {
	case ModalityImage:
		return "image"
	case ModalityStructured:
		return "structured"
	default:
		return "text"
	}
}

// ModelClass は呼び出すモデルの種別です。
type ModelClass int

const (
	// ModelText はテキスト/構造化出力用のモデルです。
	ModelText ModelClass = iota
	// ModelImageSynthesis はテキストから画像を合成するモデルです。
	ModelImageSynthesis
	// ModelImageEditing は参照画像を受け取って画像を編集・合成するマルチモーダルモデルです。
	ModelImageEditing
)

type actionTrait struct {
	modality Modality
	model    ModelClass
	legacy   string
}

var actionTraits = map[GenerationAction]actionTrait{
	ActionPatternImage:             {ModalityImage, ModelImageSynthesis, "generatePatternImage"},
	ActionBorderImage:              {ModalityImage, ModelImageSynthesis, "generateBorderImage"},
	ActionPaletteExtraction:        {ModalityStructured, ModelText, "extractColorPalette"},
	ActionPromptIdeas:              {ModalityStructured, ModelText, "generatePromptIdeas"},
	ActionPromptEnhancement:        {ModalityText, ModelText, "enhancePrompt"},
	ActionImageAnalysis:            {ModalityText, ModelText, "analyzeImage"},
	ActionBorderPromptFromImage:    {ModalityText, ModelText, "generateBorderPromptFromImage"},
	ActionCompositeTryOn:           {ModalityImage, ModelImageEditing, "virtualTryOn"},
	ActionRecolor:                  {ModalityImage, ModelImageEditing, "recolorImage"},
	ActionTrendForecast:            {ModalityStructured, ModelText, "getTrendForecasts"},
	ActionSustainabilitySuggestion: {ModalityStructured, ModelText, "getSustainableSuggestions"},
	ActionTechPack:                 {ModalityStructured, ModelText, "generateTechPack"},
	ActionEcommerceCopy:            {ModalityStructured, ModelText, "generateEcommerceCopy"},
}

var legacyNames = func() map[string]GenerationAction {
	m := make(map[string]GenerationAction, len(actionTraits))
	for a, s := range actionTraits {
		m[strings.ToLower(s.legacy)] = a
	}
	return m
}()

// AllActions は定義済みアクションを宣言順で返します。
func AllActions() []GenerationAction {
	return []GenerationAction{
		ActionPatternImage,
		ActionBorderImage,
		ActionPaletteExtraction,
		ActionPromptIdeas,
		ActionPromptEnhancement,
		ActionImageAnalysis,
		ActionBorderPromptFromImage,
		ActionCompositeTryOn,
		ActionRecolor,
		ActionTrendForecast,
		ActionSustainabilitySuggestion,
		ActionTechPack,
		ActionEcommerceCopy,
	}
}

// ParseAction は文字列をアクションに変換します。
// 旧 API の camelCase 名（generatePatternImage など）も受け付けます。
func ParseAction(s string) (GenerationAction, bool) {
	name := strings.TrimSpace(s)
	if a := GenerationAction(strings.ToLower(name)); a.Valid() {
		return a, true
	}
	if a, ok := legacyNames[strings.ToLower(name)]; ok {
		return a, true
	}
	return "", false
}

// Valid はアクションが閉じた集合に含まれるかを返します。
func (a GenerationAction) Valid() bool {
	_, ok := actionTraits[a]
	return ok
}

// Modality はアクションが期待するレスポンス形式を返します。
func (a GenerationAction) Modality() Modality {
	return actionTraits[a].modality
}

// ModelClass はアクションに適したモデル種別を返します。
func (a GenerationAction) ModelClass() ModelClass {
	return actionTraits[a].model
}

// LegacyName は旧 API におけるアクション名です。
func (a GenerationAction) LegacyName() string {
	return actionTraits[a].legacy
}

func (a GenerationAction) String() string { return string(a) }

