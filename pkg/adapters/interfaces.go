package adapters

import (
	"context"
	"strings"

	"github.com/shouni/go-fashion-kit/pkg/prompts"
)

// Capability は外部の生成機能の境界です。組み立て済みのリクエストを一度だけ送信し、生のレスポンスを返します。
// 実装は再試行を行いません。
type Capability interface {
	Generate(ctx context.Context, req prompts.ComposedRequest) (*Response, error)
}

// CapabilityFunc は関数を Capability として扱うためのアダプターです。
type CapabilityFunc func(ctx context.Context, req prompts.ComposedRequest) (*Response, error)

// Generate は f(ctx, req) を呼び出します。
func (f CapabilityFunc) Generate(ctx context.Context, req prompts.ComposedRequest) (*Response, error) {
	return f(ctx, req)
}

// ResponsePart はレスポンスの一要素です。インラインの画像データかテキストのどちらかを持ちます。
type ResponsePart struct {
	Text     string
	Data     []byte
	MIMEType string
}

// Response は外部生成機能からの生のレスポンスです。
type Response struct {
	Parts []ResponsePart
}

// FirstImage はバイナリデータを持つ最初のパートを返します。
func (r *Response) FirstImage() (ResponsePart, bool) {
	if r == nil {
		return ResponsePart{}, false
	}
	for _, p := range r.Parts {
		if len(p.Data) > 0 {
			return p, true
		}
	}
	return ResponsePart{}, false
}

// Text はテキストパートを連結して返します。
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range r.Parts {
		if len(p.Data) == 0 {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}
