package prompts

import (
	"github.com/shouni/go-fashion-kit/pkg/domain"

	"google.golang.org/genai"
)

// Part はリクエストを構成する要素で、画像かテキストのどちらか一方を持ちます。
type Part struct {
	Image *domain.ReferenceImage
	Text  string
}

// ComposedRequest は外部生成機能にそのまま渡せる完成済みのリクエストです。
// 画像パートは役割順（top → main → border）に並び、テキストパートは常に最後に置かれます。
type ComposedRequest struct {
	Action            domain.GenerationAction
	Modality          domain.Modality
	Model             domain.ModelClass
	SystemInstruction string
	Parts             []Part
	// Schema は構造化レスポンスの場合のみ設定されます。
	Schema *genai.Schema
}

// Text は指示文（最後のテキストパート）を返します。
func (r ComposedRequest) Text() string {
	for i := len(r.Parts) - 1; i >= 0; i-- {
		if r.Parts[i].Image == nil {
			return r.Parts[i].Text
		}
	}
	return ""
}

// Images は添付画像を並び順のまま返します。
func (r ComposedRequest) Images() []domain.ReferenceImage {
	var images []domain.ReferenceImage
	for _, p := range r.Parts {
		if p.Image != nil {
			images = append(images, *p.Image)
		}
	}
	return images
}

func newRequest(action domain.GenerationAction, images []domain.ReferenceImage, text string) ComposedRequest {
	parts := make([]Part, 0, len(images)+1)
	for i := range images {
		parts = append(parts, Part{Image: &images[i]})
	}
	parts = append(parts, Part{Text: text})

	return ComposedRequest{
		Action:   action,
		Modality: action.Modality(),
		Model:    action.ModelClass(),
		Parts:    parts,
	}
}

func (r ComposedRequest) withSchema(schema *genai.Schema) ComposedRequest {
	r.Schema = schema
	return r
}

func (r ComposedRequest) withSystemInstruction(instruction string) ComposedRequest {
	r.SystemInstruction = instruction
	return r
}
