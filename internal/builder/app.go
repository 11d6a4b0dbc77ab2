package builder

import (
	"context"
	"fmt"

	"github.com/shouni/go-fashion-kit/internal/config"
	"github.com/shouni/go-fashion-kit/pkg/adapters"
	"github.com/shouni/go-fashion-kit/pkg/workflow"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持します。
// これを各Build関数に渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config  *config.Config         // Configは、環境変数から読み込まれたグローバルな設定です（APIキー、プロジェクトIDなど）。
	Options config.GenerateOptions // Optionsは、コマンドラインから渡された実行時の設定です（モデル名、出力先など）。
	Manager *workflow.Manager      // Managerは、Dispatcher と Flows を保持します。
}

// NewAppContext は設定から Manager を構築して、AppContext を返すのだ。
// capability が nil の場合は Gemini クライアントを初期化します。
func NewAppContext(ctx context.Context, cfg *config.Config, capability adapters.Capability) (*AppContext, error) {
	if cfg == nil {
		return nil, fmt.Errorf("Config は必須です")
	}
	manager, err := workflow.New(ctx, workflow.ManagerArgs{
		Config:     cfg.Library(),
		Capability: capability,
	})
	if err != nil {
		return nil, fmt.Errorf("ワークフローの初期化に失敗しました: %w", err)
	}
	return &AppContext{
		Config:  cfg,
		Options: cfg.Options,
		Manager: manager,
	}, nil
}
