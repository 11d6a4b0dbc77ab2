package workflow

import (
	"github.com/shouni/go-fashion-kit/pkg/adapters"
	"github.com/shouni/go-fashion-kit/pkg/config"
	"github.com/shouni/go-fashion-kit/pkg/prompts"
)

// ManagerArgs は Manager の初期化に必要な依存関係です。
// Capability と Builder は省略でき、nil の場合は Config から既定の実装を構築します。
type ManagerArgs struct {
	Config     config.Config
	Capability adapters.Capability
	Builder    prompts.RequestBuilder
}
