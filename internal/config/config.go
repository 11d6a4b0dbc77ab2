package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	libconfig "github.com/shouni/go-fashion-kit/pkg/config"
	"github.com/shouni/go-fashion-kit/pkg/session"

	"github.com/joho/godotenv"
	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義
const (
	DefaultHTTPAddr       = ":8080"
	DefaultCredits        = 3
	DefaultOutputDir      = "output"
	DefaultSessionTTL     = session.DefaultTTL
	DefaultRequestTimeout = libconfig.DefaultRequestTimeout
)

// Config はアプリケーション全体の環境設定（APIキーやクラウド設定）を保持する構造体です。
type Config struct {
	ProjectID    string
	LocationID   string
	GeminiAPIKey string
	TextModel    string
	ImageModel   string
	EditModel    string

	HTTPAddr       string
	AdminToken     string
	SessionTTL     time.Duration
	DefaultCredits int
	RateInterval   time.Duration

	Options GenerateOptions
}

// LoadConfig は .env があれば読み込んだうえで、環境変数から設定を返します。
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env", ".env.local")

	cfg := &Config{
		ProjectID:    envutil.GetEnv("PROJECT_ID", ""),
		LocationID:   envutil.GetEnv("REGION", libconfig.DefaultLocationID),
		GeminiAPIKey: firstNonEmpty(envutil.GetEnv("GEMINI_API_KEY", ""), envutil.GetEnv("API_KEY", "")),
		TextModel:    envutil.GetEnv("GEMINI_MODEL", libconfig.DefaultTextModel),
		ImageModel:   envutil.GetEnv("IMAGE_GEMINI_MODEL", libconfig.DefaultImageModel),
		EditModel:    envutil.GetEnv("EDIT_GEMINI_MODEL", libconfig.DefaultEditModel),
		HTTPAddr:     envutil.GetEnv("HTTP_ADDR", DefaultHTTPAddr),
		AdminToken:   envutil.GetEnv("ADMIN_TOKEN", ""),
	}

	var err error
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", DefaultSessionTTL); err != nil {
		return nil, err
	}
	if cfg.RateInterval, err = durationEnv("RATE_INTERVAL", libconfig.DefaultRateInterval); err != nil {
		return nil, err
	}
	if cfg.DefaultCredits, err = intEnv("DEFAULT_CREDITS", DefaultCredits); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Library は pkg/config の設定に変換します。CLI フラグで指定されたモデルが優先されます。
func (c *Config) Library() libconfig.Config {
	lc := libconfig.DefaultConfig()
	lc.GeminiAPIKey = c.GeminiAPIKey
	lc.ProjectID = c.ProjectID
	if c.LocationID != "" {
		lc.LocationID = c.LocationID
	}
	lc.TextModel = firstNonEmpty(c.Options.TextModel, c.TextModel, lc.TextModel)
	lc.ImageModel = firstNonEmpty(c.Options.ImageModel, c.ImageModel, lc.ImageModel)
	lc.EditModel = firstNonEmpty(c.Options.EditModel, c.EditModel, lc.EditModel)
	lc.RateInterval = c.RateInterval
	if c.Options.RequestTimeout > 0 {
		lc.RequestTimeout = c.Options.RequestTimeout
	}
	return lc
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータです。
type GenerateOptions struct {
	// 入出力関連
	InputFile  string // --input: 参照画像や JSON ペイロードのパス
	OutputFile string // --output: 生成画像や結果 JSON の保存先
	OutputDir  string // --output-dir: ドキュメントの出力先

	// AI挙動設定
	TextModel  string // --model
	ImageModel string // --image-model
	EditModel  string // --edit-model

	// 実行制御
	RequestTimeout time.Duration // --timeout
	Verbose        bool          // --verbose
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s の値が不正です (%q): %w", key, raw, err)
	}
	return d, nil
}

func intEnv(key string, def int) (int, error) {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s の値が不正です (%q): %w", key, raw, err)
	}
	if n < 0 {
		slog.Warn("負の利用回数は無制限として扱います", "key", key, "value", n)
		n = -1
	}
	return n, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
