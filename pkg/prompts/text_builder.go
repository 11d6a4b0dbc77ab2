package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shouni/go-fashion-kit/pkg/domain"
)

// 画像を一枚添付してテキストまたは構造化データを得るリクエストです。

func buildPaletteExtraction(p domain.PaletteExtractionPayload) ComposedRequest {
	return newRequest(p.Action(), inspiration(p.Image), paletteInstruction).withSchema(PaletteSchema())
}

func buildImageAnalysis(p domain.ImageAnalysisPayload) ComposedRequest {
	return newRequest(p.Action(), inspiration(p.Image), analysisInstruction)
}

func buildBorderPrompt(p domain.BorderPromptPayload) ComposedRequest {
	return newRequest(p.Action(), inspiration(p.Image), borderPromptInstruction)
}

func inspiration(img *domain.Image) []domain.ReferenceImage {
	return []domain.ReferenceImage{{Role: domain.RoleInspiration, Image: *img}}
}

// テキストのみのリクエストです。

func buildPromptIdeas(p domain.PromptIdeasPayload) ComposedRequest {
	return newRequest(p.Action(), nil, promptIdeasInstruction).withSchema(PromptIdeasSchema())
}

func buildPromptEnhancement(p domain.PromptEnhancementPayload) ComposedRequest {
	return newRequest(p.Action(), nil, strings.TrimSpace(p.Prompt)).withSystemInstruction(enhancementSystemInstruction)
}

func buildTrendForecast(p domain.TrendForecastPayload) ComposedRequest {
	return newRequest(p.Action(), nil, trendForecastInstruction).withSchema(TrendForecastSchema())
}

func buildSustainability(p domain.SustainabilityPayload) ComposedRequest {
	text := fmt.Sprintf(sustainabilityTemplate, strings.TrimSpace(p.FabricType))
	return newRequest(p.Action(), nil, text).withSchema(SustainabilitySchema())
}

// 構造化ドキュメントのリクエストです。詳細情報は JSON として指示文に埋め込みます。

func buildTechPack(p domain.TechPackPayload) (ComposedRequest, error) {
	details, err := json.Marshal(p.Details)
	if err != nil {
		return ComposedRequest{}, fmt.Errorf("details のシリアライズに失敗しました: %w", err)
	}
	images := []domain.ReferenceImage{{Role: domain.RoleMain, Image: *p.Image}}
	return newRequest(p.Action(), images, fmt.Sprintf(techPackTemplate, details)).withSchema(TechPackSchema()), nil
}

func buildEcommerceCopy(p domain.EcommerceCopyPayload) (ComposedRequest, error) {
	details, err := json.Marshal(p.Details)
	if err != nil {
		return ComposedRequest{}, fmt.Errorf("details のシリアライズに失敗しました: %w", err)
	}
	return newRequest(p.Action(), nil, fmt.Sprintf(ecommerceTemplate, details)).withSchema(EcommerceCopySchema()), nil
}
