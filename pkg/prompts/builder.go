package prompts

import (
	"fmt"

	"github.com/shouni/go-fashion-kit/pkg/apperr"
	"github.com/shouni/go-fashion-kit/pkg/domain"
)

// Builder はアクションごとの組み立て関数へ振り分ける RequestBuilder の実装です。
type Builder struct{}

// NewBuilder は Builder を生成します。
func NewBuilder() *Builder {
	return &Builder{}
}

// Build はペイロードを検証し、アクションに対応する ComposedRequest を返します。
// 必須項目の欠落は InvalidPayload として返し、既定値での補完は行いません。
func (b *Builder) Build(payload domain.Payload) (ComposedRequest, error) {
	payload = domain.Value(payload)
	if payload == nil {
		return ComposedRequest{}, apperr.Newf(apperr.KindInvalidPayload, "", "ペイロードがありません")
	}

	action := payload.Action()
	if err := payload.Validate(); err != nil {
		return ComposedRequest{}, apperr.New(apperr.KindInvalidPayload, action.String(), err)
	}

	var (
		req ComposedRequest
		err error
	)
	switch p := payload.(type) {
	case domain.PatternImagePayload:
		req = buildPatternImage(p)
	case domain.BorderImagePayload:
		req = buildBorderImage(p)
	case domain.PaletteExtractionPayload:
		req = buildPaletteExtraction(p)
	case domain.PromptIdeasPayload:
		req = buildPromptIdeas(p)
	case domain.PromptEnhancementPayload:
		req = buildPromptEnhancement(p)
	case domain.ImageAnalysisPayload:
		req = buildImageAnalysis(p)
	case domain.BorderPromptPayload:
		req = buildBorderPrompt(p)
	case domain.TryOnPayload:
		req = buildTryOn(p)
	case domain.RecolorPayload:
		req = buildRecolor(p)
	case domain.TrendForecastPayload:
		req = buildTrendForecast(p)
	case domain.SustainabilityPayload:
		req = buildSustainability(p)
	case domain.TechPackPayload:
		req, err = buildTechPack(p)
	case domain.EcommerceCopyPayload:
		req, err = buildEcommerceCopy(p)
	default:
		return ComposedRequest{}, apperr.New(apperr.KindUnsupportedAction, action.String(), fmt.Errorf("ペイロード型 %T は未対応です", payload))
	}
	if err != nil {
		return ComposedRequest{}, apperr.New(apperr.KindInvalidPayload, action.String(), err)
	}
	return req, nil
}

var _ RequestBuilder = (*Builder)(nil)
