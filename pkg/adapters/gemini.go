package adapters

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shouni/go-fashion-kit/pkg/apperr"
	"github.com/shouni/go-fashion-kit/pkg/config"
	"github.com/shouni/go-fashion-kit/pkg/domain"
	"github.com/shouni/go-fashion-kit/pkg/prompts"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// contentGenerator は genai.Models のうち本パッケージが使うメソッドです。
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateImages(ctx context.Context, model string, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

const (
	// patternAspectRatio はタイル状に敷き詰める柄のための正方形の比率です。
	patternAspectRatio = "1:1"
	patternMIMEType    = "image/png"
	// imagenModelPrefix で始まるモデルは GenerateImages で呼び出します。
	imagenModelPrefix = "imagen"
)

// GeminiCapability は Gemini API を使った Capability の実装です。
type GeminiCapability struct {
	models      contentGenerator
	cfg         config.Config
	limiter     *rate.Limiter
	temperature *float32
}

// NewGeminiCapability は設定から Gemini クライアントを初期化します。
// API キーもプロジェクト ID も無い場合は MissingCredentials を返します。
func NewGeminiCapability(ctx context.Context, cfg config.Config) (*GeminiCapability, error) {
	clientConfig, err := clientConfigFrom(cfg)
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, apperr.New(apperr.KindMissingCredentials, "", fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err))
	}
	return newGeminiCapability(client.Models, cfg), nil
}

func newGeminiCapability(models contentGenerator, cfg config.Config) *GeminiCapability {
	c := &GeminiCapability{
		models:      models,
		cfg:         cfg,
		temperature: cfg.Temperature,
	}
	if cfg.RateInterval > 0 {
		c.limiter = rate.NewLimiter(rate.Every(cfg.RateInterval), 1)
	}
	return c
}

func clientConfigFrom(cfg config.Config) (*genai.ClientConfig, error) {
	switch {
	case cfg.GeminiAPIKey != "":
		return &genai.ClientConfig{
			APIKey:     cfg.GeminiAPIKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
		}, nil
	case cfg.ProjectID != "":
		return &genai.ClientConfig{
			Project:    cfg.ProjectID,
			Location:   cfg.LocationID,
			Backend:    genai.BackendVertexAI,
			HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
		}, nil
	default:
		return nil, apperr.Newf(apperr.KindMissingCredentials, "", "GEMINI_API_KEY または PROJECT_ID が設定されていません")
	}
}

// Generate はリクエストを一度だけ送信します。
func (c *GeminiCapability) Generate(ctx context.Context, req prompts.ComposedRequest) (*Response, error) {
	action := req.Action.String()
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, apperr.New(apperr.KindTransientUpstreamFailure, action, err)
		}
	}

	if c.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.RequestTimeout)
		defer cancel()
	}

	model := c.modelFor(req.Model)
	logger := slog.With("action", action, "model", model, "images", len(req.Images()))
	logger.DebugContext(ctx, "Sending generation request")

	startTime := time.Now()
	var out *Response
	if isImagenModel(model) && req.Model == domain.ModelImageSynthesis {
		resp, err := c.models.GenerateImages(ctx, model, req.Text(), &genai.GenerateImagesConfig{
			NumberOfImages: 1,
			AspectRatio:    patternAspectRatio,
			OutputMIMEType: patternMIMEType,
		})
		if err != nil {
			return nil, classifyError(action, err)
		}
		out = fromGeneratedImages(resp)
	} else {
		resp, err := c.models.GenerateContent(ctx, model, toContents(req), c.toConfig(req))
		if err != nil {
			return nil, classifyError(action, err)
		}
		out = fromGenAIResponse(resp)
	}

	logger.InfoContext(ctx, "Generation request completed",
		"parts", len(out.Parts),
		"duration", time.Since(startTime).Round(time.Millisecond),
	)
	return out, nil
}

func (c *GeminiCapability) modelFor(class domain.ModelClass) string {
	switch class {
	case domain.ModelImageSynthesis:
		return c.cfg.ImageModel
	case domain.ModelImageEditing:
		return c.cfg.EditModel
	default:
		return c.cfg.TextModel
	}
}

// toContents は画像パートとテキストパートを順序を保ったまま一つのユーザーメッセージにまとめます。
func toContents(req prompts.ComposedRequest) []*genai.Content {
	parts := make([]*genai.Part, 0, len(req.Parts))
	for _, p := range req.Parts {
		if p.Image != nil {
			parts = append(parts, &genai.Part{InlineData: &genai.Blob{MIMEType: p.Image.MIMEType, Data: p.Image.Data}})
			continue
		}
		parts = append(parts, genai.NewPartFromText(p.Text))
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

func (c *GeminiCapability) toConfig(req prompts.ComposedRequest) *genai.GenerateContentConfig {
	gc := &genai.GenerateContentConfig{}
	if req.Modality != domain.ModalityImage {
		gc.Temperature = c.temperature
	}
	if req.SystemInstruction != "" {
		gc.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	switch req.Modality {
	case domain.ModalityImage:
		gc.ResponseModalities = []string{"IMAGE", "TEXT"}
		if req.Model == domain.ModelImageSynthesis {
			gc.ImageConfig = &genai.ImageConfig{AspectRatio: patternAspectRatio}
		}
	case domain.ModalityStructured:
		gc.ResponseMIMEType = "application/json"
		gc.ResponseSchema = req.Schema
	}
	return gc
}

// fromGenAIResponse は最初の候補のパートを取り出します。候補が無い場合は空のレスポンスです。
func fromGenAIResponse(resp *genai.GenerateContentResponse) *Response {
	out := &Response{}
	if resp == nil || len(resp.Candidates) == 0 {
		return out
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return out
	}
	for _, part := range cand.Content.Parts {
		if part == nil {
			continue
		}
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			out.Parts = append(out.Parts, ResponsePart{Data: part.InlineData.Data, MIMEType: part.InlineData.MIMEType})
			continue
		}
		if part.Text != "" && !part.Thought {
			out.Parts = append(out.Parts, ResponsePart{Text: part.Text})
		}
	}
	return out
}

// fromGeneratedImages は Imagen の応答から最初の画像を取り出します。
func fromGeneratedImages(resp *genai.GenerateImagesResponse) *Response {
	out := &Response{}
	if resp == nil {
		return out
	}
	for _, gi := range resp.GeneratedImages {
		if gi == nil || gi.Image == nil || len(gi.Image.ImageBytes) == 0 {
			continue
		}
		mimeType := gi.Image.MIMEType
		if mimeType == "" {
			mimeType = patternMIMEType
		}
		out.Parts = append(out.Parts, ResponsePart{Data: gi.Image.ImageBytes, MIMEType: mimeType})
		break
	}
	return out
}

func isImagenModel(model string) bool {
	return strings.HasPrefix(strings.ToLower(model), imagenModelPrefix)
}

// classifyError は API エラーのステータスコードから種別を決めます。
func classifyError(action string, err error) error {
	code := 0
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
	case errors.As(err, &apiErrPtr):
		code = apiErrPtr.Code
	}

	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return apperr.New(apperr.KindMissingCredentials, action, err)
	case code == http.StatusTooManyRequests || code == http.StatusRequestTimeout || code >= 500:
		return apperr.New(apperr.KindTransientUpstreamFailure, action, err)
	case code >= 400:
		return apperr.New(apperr.KindInvalidPayload, action, err)
	default:
		return apperr.Classify(action, err)
	}
}
