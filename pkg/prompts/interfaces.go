package prompts

import "github.com/shouni/go-fashion-kit/pkg/domain"

// RequestBuilder は、アクションのペイロードから外部生成機能へのリクエストを組み立てる契約です。
// 実装は純粋関数であり、I/O を行いません。
type RequestBuilder interface {
	// Build は、ペイロードを検証し ComposedRequest を生成します。
	// 必須フィールドが欠けている場合は InvalidPayload に分類されたエラーを返します。
	Build(payload domain.Payload) (ComposedRequest, error)
}
