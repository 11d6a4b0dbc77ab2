package config

import (
	"time"
)

// デフォルト値の定義
const (
	DefaultLocationID     = "us-central1"
	DefaultTextModel      = "gemini-2.5-flash"
	DefaultImageModel     = "gemini-2.5-flash-image"
	DefaultEditModel      = "gemini-2.5-flash-image"
	DefaultRequestTimeout = 120 * time.Second
	// DefaultRateInterval が 0 の場合、送信間隔の調整は行いません。
	DefaultRateInterval = 0
)

// DefaultTemperature はテキスト/構造化出力に使う温度です。画像生成には適用しません。
var DefaultTemperature float32 = 0.7

// Config は Go Fashion Kit の生成機能を動作させるための基本設定です。
type Config struct {
	// --- AI Model Settings ---
	TextModel  string // テキスト・構造化出力用
	ImageModel string // テキストからの柄生成用
	EditModel  string // 参照画像を使う合成・再配色用

	// --- Google AI (Gemini API) Settings ---
	GeminiAPIKey string

	// --- Vertex AI Settings ---
	ProjectID  string // Google Cloud Project ID
	LocationID string // 例: "us-central1"

	// --- Generation Settings ---
	Temperature  *float32
	RateInterval time.Duration

	// --- Timeout ---
	// RequestTimeout を超えた呼び出しは TransientUpstreamFailure として返されます。
	RequestTimeout time.Duration
}

// DefaultConfig は推奨されるデフォルト設定を返すヘルパー関数です。
func DefaultConfig() Config {
	temperature := DefaultTemperature
	return Config{
		LocationID:     DefaultLocationID,
		TextModel:      DefaultTextModel,
		ImageModel:     DefaultImageModel,
		EditModel:      DefaultEditModel,
		Temperature:    &temperature,
		RateInterval:   DefaultRateInterval,
		RequestTimeout: DefaultRequestTimeout,
	}
}

// HasCredentials は生成機能を呼び出すための認証設定があるかを返します。
func (c Config) HasCredentials() bool {
	return c.GeminiAPIKey != "" || c.ProjectID != ""
}
