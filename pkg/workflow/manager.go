package workflow

import (
	"context"
	"fmt"

	"github.com/shouni/go-fashion-kit/pkg/adapters"
	"github.com/shouni/go-fashion-kit/pkg/config"
	"github.com/shouni/go-fashion-kit/pkg/dispatcher"
	"github.com/shouni/go-fashion-kit/pkg/prompts"
)

// Manager は、リクエスト組み立て・生成機能・Dispatcher・Flows を構築して保持します。
type Manager struct {
	cfg        config.Config
	builder    prompts.RequestBuilder
	capability adapters.Capability
	dispatcher *dispatcher.Dispatcher
	flows      *Flows
}

// New は、設定を基に新しい Manager を初期化します。
func New(ctx context.Context, args ManagerArgs) (*Manager, error) {
	rb := initializeBuilder(args.Builder)

	capability, err := initializeCapability(ctx, args.Capability, args.Config)
	if err != nil {
		return nil, err
	}

	d, err := dispatcher.New(rb, capability)
	if err != nil {
		return nil, fmt.Errorf("Dispatcher の初期化に失敗しました: %w", err)
	}

	flows, err := NewFlows(d)
	if err != nil {
		return nil, fmt.Errorf("Flows の初期化に失敗しました: %w", err)
	}

	return &Manager{
		cfg:        args.Config,
		builder:    rb,
		capability: capability,
		dispatcher: d,
		flows:      flows,
	}, nil
}

// initializeBuilder は RequestBuilder を初期化します。
// 引数として既存のビルダーが渡された場合はそれを返し、nil の場合は新規作成します。
func initializeBuilder(rb prompts.RequestBuilder) prompts.RequestBuilder {
	if rb != nil {
		return rb
	}
	return prompts.NewBuilder()
}

// initializeCapability は生成機能を初期化します。
// 引数として既存の実装が渡された場合はそれを返し、nil の場合は Gemini クライアントを作成します。
func initializeCapability(ctx context.Context, capability adapters.Capability, cfg config.Config) (adapters.Capability, error) {
	if capability != nil {
		return capability, nil
	}
	gc, err := adapters.NewGeminiCapability(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return gc, nil
}

// Config は Manager の設定を返します。
func (m *Manager) Config() config.Config { return m.cfg }

// Dispatcher は単一アクション実行用の Dispatcher を返します。
func (m *Manager) Dispatcher() *dispatcher.Dispatcher { return m.dispatcher }

// Flows は複数アクションを連結する Flows を返します。
func (m *Manager) Flows() *Flows { return m.flows }
