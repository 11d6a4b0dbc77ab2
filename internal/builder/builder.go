package builder

import (
	"github.com/shouni/go-fashion-kit/pkg/domain"
	"github.com/shouni/go-fashion-kit/pkg/publisher"
	"github.com/shouni/go-fashion-kit/pkg/server"
	"github.com/shouni/go-fashion-kit/pkg/session"
)

// BuildServer は HTTP サーバーのハンドラー群を構築します。
func BuildServer(appCtx *AppContext) (*server.Server, error) {
	return server.New(server.Options{
		Dispatcher: appCtx.Manager.Dispatcher(),
		Flows:      appCtx.Manager.Flows(),
		Sessions:   session.NewStore(appCtx.Config.SessionTTL, appCtx.Config.DefaultCredits),
		Catalog:    domain.DefaultCatalog(),
		AdminToken: appCtx.Config.AdminToken,
	})
}

// BuildPublisher は成果物をローカルに書き出す Publisher を構築します。
func BuildPublisher() *publisher.DesignPublisher {
	return publisher.NewDesignPublisher(publisher.NewLocalWriter(), publisher.NewMarkdownRenderer())
}
