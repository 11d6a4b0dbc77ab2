package domain

// ColorSwatch はパレットの一色です。
type ColorSwatch struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// TrendForecast はトレンド予測の一件です。
type TrendForecast struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
}

// FabricSuggestion はサステナブルな代替素材の提案です。
type FabricSuggestion struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// TechPack は生産向けの仕様書です。
type TechPack struct {
	OutfitName           string        `json:"outfit_name"`
	Description          string        `json:"description"`
	FabricRecommendation string        `json:"fabric_recommendation"`
	ColorPalette         []ColorSwatch `json:"color_palette"`
	ConstructionNotes    []string      `json:"construction_notes"`
}

// EcommerceCopy は商品ページ用のコピーです。
type EcommerceCopy struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// GenerationResult は一回のディスパッチの結果です。
// モダリティに応じて Image, Text, Value のいずれか一つだけが設定されます。
type GenerationResult struct {
	Action   GenerationAction
	Modality Modality
	Image    *Image
	Text     string
	Value    any
}

// Data は呼び出し側の封筒（{success, data}）に載せる値を返します。
// 画像は旧 API と同じく base64 文字列で返します。
func (r *GenerationResult) Data() any {
	if r == nil {
		return nil
	}
	switch r.Modality {
	case ModalityImage:
		if r.Image.Empty() {
			return nil
		}
		return r.Image.Encode()
	case ModalityStructured:
		return r.Value
	default:
		return r.Text
	}
}
