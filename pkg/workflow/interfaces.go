package workflow

import (
	"context"

	"github.com/shouni/go-fashion-kit/pkg/domain"
)

// Dispatcher は、単一アクションの実行を担う契約です。
type Dispatcher interface {
	Dispatch(ctx context.Context, action domain.GenerationAction, payload domain.Payload) (*domain.GenerationResult, error)
}

// Workflow は、デザインセッションの各工程を連結するフロー群の契約です。
// 各メソッドは Session を値で受け取り、更新した Session を返します。
type Workflow interface {
	// GeneratePattern は柄を生成し、サステナブル素材の提案と配色抽出を並行して付加します。
	GeneratePattern(ctx context.Context, s domain.Session, prompt string, details domain.StyleOptions) (domain.Session, PatternOutcome, error)
	// Inspire はアップロード画像をメイン素材として受け入れ、解析プロンプトと配色を付加します。
	Inspire(ctx context.Context, s domain.Session, img domain.Image) (domain.Session, InspirationOutcome, error)
	// MatchingBorderPrompt はメイン柄に合うボーダー用プロンプトを導きます。
	MatchingBorderPrompt(ctx context.Context, s domain.Session) (domain.Session, string, error)
	// GenerateBorder はボーダー柄を生成し、ボーダー素材として割り当てます。
	GenerateBorder(ctx context.Context, s domain.Session, prompt string, details domain.StyleOptions) (domain.Session, error)
	// Visualize は割り当て済みの素材で試着画像を生成します。
	Visualize(ctx context.Context, s domain.Session, style domain.StyleOptions) (domain.Session, error)
	// TechPack は試着画像からテックパックを生成します。
	TechPack(ctx context.Context, s domain.Session) (domain.Session, error)
	// EcommerceCopy は商品コピーを生成します。
	EcommerceCopy(ctx context.Context, s domain.Session) (domain.Session, error)
	// Document はテックパックと商品コピーを互いに独立して生成します。
	Document(ctx context.Context, s domain.Session) (domain.Session, DocumentationOutcome)
}
