package dispatcher

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/shouni/go-fashion-kit/pkg/adapters"
	"github.com/shouni/go-fashion-kit/pkg/apperr"
	"github.com/shouni/go-fashion-kit/pkg/domain"

	"google.golang.org/genai"
)

var jsonBlockRegex = regexp.MustCompile("(?s)```(?:json)?\\s*(.*\\S)\\s*```")

// normalize はモダリティに応じて生のレスポンスを GenerationResult に変換します。
func normalize(action domain.GenerationAction, resp *adapters.Response, schema *genai.Schema) (*domain.GenerationResult, error) {
	result := &domain.GenerationResult{Action: action, Modality: action.Modality()}

	switch action.Modality() {
	case domain.ModalityImage:
		part, ok := resp.FirstImage()
		if !ok {
			return nil, apperr.Newf(apperr.KindEmptyResult, action.String(), "画像パートが含まれていません")
		}
		mimeType := part.MIMEType
		if mimeType == "" {
			mimeType = domain.DefaultImageMIMEType
		}
		result.Image = &domain.Image{MIMEType: mimeType, Data: part.Data}

	case domain.ModalityStructured:
		raw := resp.Text()
		if strings.TrimSpace(raw) == "" {
			return nil, apperr.Newf(apperr.KindEmptyResult, action.String(), "構造化データが返されませんでした")
		}
		value, err := parseStructured(action, raw, schema)
		if err != nil {
			return nil, apperr.New(apperr.KindMalformedUpstreamResponse, action.String(), err)
		}
		result.Value = value

	default:
		text := resp.Text()
		if strings.TrimSpace(text) == "" {
			return nil, apperr.Newf(apperr.KindEmptyResult, action.String(), "テキストが返されませんでした")
		}
		result.Text = text
	}
	return result, nil
}

// structuredTarget はアクションごとのデコード先を返します。
func structuredTarget(action domain.GenerationAction) any {
	switch action {
	case domain.ActionPaletteExtraction:
		return &[]domain.ColorSwatch{}
	case domain.ActionPromptIdeas:
		return &[]string{}
	case domain.ActionTrendForecast:
		return &[]domain.TrendForecast{}
	case domain.ActionSustainabilitySuggestion:
		return &[]domain.FabricSuggestion{}
	case domain.ActionTechPack:
		return &domain.TechPack{}
	case domain.ActionEcommerceCopy:
		return &domain.EcommerceCopy{}
	default:
		var v any
		return &v
	}
}

// parseStructured は応答テキストから JSON を取り出し、スキーマに沿っているか確かめてからデコードします。
// コードフェンスで囲まれている場合はその中身を、そうでなければ最も外側の括弧の範囲を使います。
func parseStructured(action domain.GenerationAction, raw string, schema *genai.Schema) (any, error) {
	raw = strings.TrimSpace(raw)
	rawJSON := raw
	if !json.Valid([]byte(rawJSON)) {
		rawJSON = extractJSON(raw)
		if !json.Valid([]byte(rawJSON)) {
			return nil, fmt.Errorf("AIからの応答に含まれるJSONの解析に失敗しました (応答抜粋: %q)", truncateString(raw, 200))
		}
	}

	if err := conform(json.RawMessage(rawJSON), schema, "$"); err != nil {
		return nil, fmt.Errorf("AIからの応答がスキーマと一致しません (応答抜粋: %q): %w", truncateString(raw, 200), err)
	}

	target := structuredTarget(action)
	if err := json.Unmarshal([]byte(rawJSON), target); err != nil {
		return nil, fmt.Errorf("AIからの応答に含まれるJSONの解析に失敗しました (応答抜粋: %q): %w", truncateString(raw, 200), err)
	}
	return reflect.ValueOf(target).Elem().Interface(), nil
}

// conform は値がスキーマの型と必須プロパティを満たすかを再帰的に検査します。
// null はどの位置でも欠落として扱います。schema が nil の場合は null だけを拒否します。
func conform(raw json.RawMessage, schema *genai.Schema, path string) error {
	if isNull(raw) {
		return fmt.Errorf("%s が null です", path)
	}
	if schema == nil {
		return nil
	}

	switch schema.Type {
	case genai.TypeObject:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return fmt.Errorf("%s はオブジェクトではありません", path)
		}
		for _, key := range schema.Required {
			if _, ok := obj[key]; !ok {
				return fmt.Errorf("%s.%s がありません", path, key)
			}
		}
		for key, value := range obj {
			prop, ok := schema.Properties[key]
			if !ok {
				continue
			}
			if err := conform(value, prop, path+"."+key); err != nil {
				return err
			}
		}
	case genai.TypeArray:
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("%s は配列ではありません", path)
		}
		for i, item := range items {
			if err := conform(item, schema.Items, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case genai.TypeString:
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("%s は文字列ではありません", path)
		}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

func extractJSON(raw string) string {
	if matches := jsonBlockRegex.FindStringSubmatch(raw); len(matches) > 1 {
		return matches[1]
	}

	open, closing := "{", "}"
	if i, j := strings.Index(raw, "["), strings.Index(raw, "{"); i != -1 && (j == -1 || i < j) {
		open, closing = "[", "]"
	}
	first := strings.Index(raw, open)
	last := strings.LastIndex(raw, closing)
	if first != -1 && last > first {
		return raw[first : last+1]
	}
	return raw
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
