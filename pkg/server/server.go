package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shouni/go-fashion-kit/pkg/domain"
	"github.com/shouni/go-fashion-kit/pkg/session"
	"github.com/shouni/go-fashion-kit/pkg/workflow"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxBodyBytes はリクエストボディの上限です。参照画像を base64 で受け取るため大きめに取ります。
const maxBodyBytes = 32 << 20

// RawDispatcher はアクション名と JSON ペイロードで単一アクションを実行する契約です。
type RawDispatcher interface {
	DispatchRaw(ctx context.Context, name string, raw json.RawMessage) (*domain.GenerationResult, error)
}

// Options は Server の初期化に必要な依存関係です。
type Options struct {
	Dispatcher RawDispatcher
	Flows      workflow.Workflow
	Sessions   *session.Store
	Catalog    domain.Catalog
	// AdminToken が設定されている場合、X-Admin-Token ヘッダーが一致するセッションは利用回数が無制限になります。
	AdminToken string
}

// Server は生成機能を HTTP で公開します。
type Server struct {
	dispatcher RawDispatcher
	flows      workflow.Workflow
	sessions   *session.Store
	catalog    domain.Catalog
	adminToken string
}

// New は Server を初期化します。
func New(opts Options) (*Server, error) {
	if opts.Dispatcher == nil {
		return nil, fmt.Errorf("Dispatcher は必須です")
	}
	if opts.Flows == nil {
		return nil, fmt.Errorf("Flows は必須です")
	}
	if opts.Sessions == nil {
		return nil, fmt.Errorf("Sessions は必須です")
	}
	return &Server{
		dispatcher: opts.Dispatcher,
		flows:      opts.Flows,
		sessions:   opts.Sessions,
		catalog:    opts.Catalog,
		adminToken: opts.AdminToken,
	}, nil
}

// Handler はルーティング済みの http.Handler を返します。
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(
		requestID,
		middleware.RealIP,
		middleware.Recoverer,
		cors,
		requestLogger,
	)

	r.Get("/healthz", s.health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", s.getCatalog)
		r.Post("/gemini", s.dispatch)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.createSession)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(s.lockSession)
				r.Get("/", s.getSession)
				r.Delete("/", s.deleteSession)
				r.Post("/pattern", s.generatePattern)
				r.Post("/inspire", s.inspire)
				r.Post("/materials", s.assignMaterial)
				r.Post("/border-prompt", s.matchingBorderPrompt)
				r.Post("/border", s.generateBorder)
				r.Post("/tryon", s.visualize)
				r.Post("/techpack", s.techPack)
				r.Post("/ecommerce", s.ecommerceCopy)
				r.Post("/document", s.document)
			})
		})
	})

	return r
}
