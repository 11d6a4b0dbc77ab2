package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// Payload はアクションごとの入力です。宣言したアクションと異なる形状のペイロードは契約違反として扱います。
type Payload interface {
	Action() GenerationAction
	// Validate は構造的に必須なフィールドが揃っているかを検証します。
	Validate() error
}

// PatternImagePayload はテキストからテキスタイル柄を生成する入力です。
type PatternImagePayload struct {
	Prompt  string       `json:"prompt"`
	Details StyleOptions `json:"details"`
}

func (PatternImagePayload) Action() GenerationAction { return ActionPatternImage }

func (p PatternImagePayload) Validate() error {
	return requirePrompt(p.Prompt)
}

// BorderImagePayload はボーダー（縁取り）柄を生成する入力です。
type BorderImagePayload struct {
	Prompt  string       `json:"prompt"`
	Details StyleOptions `json:"details"`
}

func (BorderImagePayload) Action() GenerationAction { return ActionBorderImage }

func (p BorderImagePayload) Validate() error {
	return requirePrompt(p.Prompt)
}

// PaletteExtractionPayload は画像から配色を抽出する入力です。
type PaletteExtractionPayload struct {
	Image *Image `json:"imageBase64"`
}

func (PaletteExtractionPayload) Action() GenerationAction { return ActionPaletteExtraction }

func (p PaletteExtractionPayload) Validate() error { return requireImage("imageBase64", p.Image) }

// PromptIdeasPayload はプロンプト案の生成入力です。
type PromptIdeasPayload struct{}

func (PromptIdeasPayload) Action() GenerationAction { return ActionPromptIdeas }

func (PromptIdeasPayload) Validate() error { return nil }

// PromptEnhancementPayload はプロンプトの推敲入力です。
type PromptEnhancementPayload struct {
	Prompt string `json:"prompt"`
}

func (PromptEnhancementPayload) Action() GenerationAction { return ActionPromptEnhancement }

func (p PromptEnhancementPayload) Validate() error { return requirePrompt(p.Prompt) }

// ImageAnalysisPayload は画像から生成用プロンプトを導く入力です。
type ImageAnalysisPayload struct {
	Image *Image `json:"imageBase64"`
}

func (ImageAnalysisPayload) Action() GenerationAction { return ActionImageAnalysis }

func (p ImageAnalysisPayload) Validate() error { return requireImage("imageBase64", p.Image) }

// BorderPromptPayload はメイン柄に合うボーダー用プロンプトを導く入力です。
type BorderPromptPayload struct {
	Image *Image `json:"imageBase64"`
}

func (BorderPromptPayload) Action() GenerationAction { return ActionBorderPromptFromImage }

func (p BorderPromptPayload) Validate() error { return requireImage("imageBase64", p.Image) }

// TryOnPayload はバーチャル試着の入力です。
// Main は必須で、Top と Border は任意です。
type TryOnPayload struct {
	Top    *Image
	Main   *Image
	Border *Image
	Style  StyleOptions
}

func (TryOnPayload) Action() GenerationAction { return ActionCompositeTryOn }

func (p TryOnPayload) Validate() error {
	var errs []error
	if p.Main.Empty() {
		errs = append(errs, fmt.Errorf("bottomMaterial（メイン素材）は必須です"))
	}
	if !HasValue(p.Style.OutfitType) {
		errs = append(errs, fmt.Errorf("outfit は必須です"))
	}
	if !HasValue(p.Style.Neckline) {
		errs = append(errs, fmt.Errorf("neckType は必須です"))
	}
	return errors.Join(errs...)
}

// ReferenceImages は役割付きの参照画像を返します。並び順は OrderByRole が決めます。
func (p TryOnPayload) ReferenceImages() []ReferenceImage {
	var refs []ReferenceImage
	for role, img := range map[ImageRole]*Image{RoleTop: p.Top, RoleMain: p.Main, RoleBorder: p.Border} {
		if img.Empty() {
			continue
		}
		refs = append(refs, ReferenceImage{Role: role, Image: *img})
	}
	return OrderByRole(refs)
}

// UnmarshalJSON は旧 API のフラットな形式（topMaterial, bottomMaterial, borderMaterial と各スタイル項目）を読み込みます。
func (p *TryOnPayload) UnmarshalJSON(b []byte) error {
	var materials struct {
		Top    *Image `json:"topMaterial"`
		Main   *Image `json:"bottomMaterial"`
		Border *Image `json:"borderMaterial"`
	}
	if err := json.Unmarshal(b, &materials); err != nil {
		return err
	}
	var style StyleOptions
	if err := json.Unmarshal(b, &style); err != nil {
		return err
	}
	*p = TryOnPayload{Top: materials.Top, Main: materials.Main, Border: materials.Border, Style: style}
	return nil
}

// RecolorPayload は柄の構造を保ったまま配色を変更する入力です。
type RecolorPayload struct {
	Pattern     *Image `json:"patternBase64"`
	ColorPrompt string `json:"colorPrompt"`
}

func (RecolorPayload) Action() GenerationAction { return ActionRecolor }

func (p RecolorPayload) Validate() error {
	return errors.Join(requireImage("patternBase64", p.Pattern), requireText("colorPrompt", p.ColorPrompt))
}

// TrendForecastPayload はトレンド予測の入力です。
type TrendForecastPayload struct{}

func (TrendForecastPayload) Action() GenerationAction { return ActionTrendForecast }

func (TrendForecastPayload) Validate() error { return nil }

// SustainabilityPayload はサステナブルな代替素材を提案する入力です。
type SustainabilityPayload struct {
	FabricType string `json:"fabricType"`
}

func (SustainabilityPayload) Action() GenerationAction { return ActionSustainabilitySuggestion }

func (p SustainabilityPayload) Validate() error {
	if !IsConcreteFabric(p.FabricType) {
		return fmt.Errorf("fabricType には具体的な素材名が必要です")
	}
	return nil
}

// DocumentDetails はドキュメント生成に埋め込むコーディネート情報です。
type DocumentDetails struct {
	Outfit        string            `json:"outfit"`
	Style         string            `json:"style"`
	Fabric        string            `json:"fabric"`
	PatternPrompt string            `json:"pattern_prompt,omitempty"`
	Extras        map[string]string `json:"extras,omitempty"`
}

// TechPackPayload は試着画像から仕様書（テックパック）を生成する入力です。
type TechPackPayload struct {
	Image   *Image          `json:"imageBase64"`
	Details DocumentDetails `json:"details"`
}

func (TechPackPayload) Action() GenerationAction { return ActionTechPack }

func (p TechPackPayload) Validate() error { return requireImage("imageBase64", p.Image) }

// EcommerceCopyPayload は EC サイト向けの商品コピーを生成する入力です。
type EcommerceCopyPayload struct {
	Details DocumentDetails `json:"details"`
}

func (EcommerceCopyPayload) Action() GenerationAction { return ActionEcommerceCopy }

func (p EcommerceCopyPayload) Validate() error { return requireText("details.outfit", p.Details.Outfit) }

// NewPayload はアクションに対応する空のペイロードを返します。JSON のデコード先として使います。
func NewPayload(a GenerationAction) (Payload, bool) {
	switch a {
	case ActionPatternImage:
		return &PatternImagePayload{}, true
	case ActionBorderImage:
		return &BorderImagePayload{}, true
	case ActionPaletteExtraction:
		return &PaletteExtractionPayload{}, true
	case ActionPromptIdeas:
		return &PromptIdeasPayload{}, true
	case ActionPromptEnhancement:
		return &PromptEnhancementPayload{}, true
	case ActionImageAnalysis:
		return &ImageAnalysisPayload{}, true
	case ActionBorderPromptFromImage:
		return &BorderPromptPayload{}, true
	case ActionCompositeTryOn:
		return &TryOnPayload{}, true
	case ActionRecolor:
		return &RecolorPayload{}, true
	case ActionTrendForecast:
		return &TrendForecastPayload{}, true
	case ActionSustainabilitySuggestion:
		return &SustainabilityPayload{}, true
	case ActionTechPack:
		return &TechPackPayload{}, true
	case ActionEcommerceCopy:
		return &EcommerceCopyPayload{}, true
	}
	return nil, false
}

// DecodePayload は JSON をアクションに対応するペイロードへデコードし、値として返します。
// 空のボディや null はゼロ値のペイロードになります。
func DecodePayload(a GenerationAction, raw json.RawMessage) (Payload, error) {
	ptr, ok := NewPayload(a)
	if !ok {
		return nil, fmt.Errorf("未対応のアクションです: %s", a)
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		if err := json.Unmarshal(trimmed, ptr); err != nil {
			return nil, fmt.Errorf("ペイロードのデコードに失敗しました: %w", err)
		}
	}
	return Value(ptr), nil
}

// Value はポインタで渡されたペイロードを値に揃えます。
func Value(p Payload) Payload {
	v := reflect.ValueOf(p)
	if v.Kind() != reflect.Pointer {
		return p
	}
	if v.IsNil() {
		return nil
	}
	if elem, ok := v.Elem().Interface().(Payload); ok {
		return elem
	}
	return p
}

func requirePrompt(prompt string) error {
	return requireText("prompt", prompt)
}

func requireText(field, v string) error {
	if !HasValue(v) {
		return fmt.Errorf("%s は必須です", field)
	}
	return nil
}

func requireImage(field string, img *Image) error {
	if img.Empty() {
		return fmt.Errorf("%s は必須です", field)
	}
	return nil
}
