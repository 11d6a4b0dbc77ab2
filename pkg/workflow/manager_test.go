package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/shouni/go-fashion-kit/pkg/adapters"
	"github.com/shouni/go-fashion-kit/pkg/apperr"
	"github.com/shouni/go-fashion-kit/pkg/config"
	"github.com/shouni/go-fashion-kit/pkg/domain"
	"github.com/shouni/go-fashion-kit/pkg/prompts"
)

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("Capability を差し替えて構築できること", func(t *testing.T) {
		var got prompts.ComposedRequest
		capability := adapters.CapabilityFunc(func(_ context.Context, req prompts.ComposedRequest) (*adapters.Response, error) {
			got = req
			return &adapters.Response{Parts: []adapters.ResponsePart{{Text: "refined paisley"}}}, nil
		})

		m, err := New(ctx, ManagerArgs{Config: config.DefaultConfig(), Capability: capability})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if m.Flows() == nil || m.Dispatcher() == nil {
			t.Fatal("Flows または Dispatcher が初期化されていません")
		}

		res, err := m.Dispatcher().Dispatch(ctx, domain.ActionPromptEnhancement, domain.PromptEnhancementPayload{Prompt: "paisley"})
		if err != nil {
			t.Fatalf("Dispatch() error = %v", err)
		}
		if res.Text != "refined paisley" || got.Action != domain.ActionPromptEnhancement {
			t.Errorf("res = %+v, request action = %s", res, got.Action)
		}
		if m.Config().TextModel != config.DefaultTextModel {
			t.Errorf("TextModel = %q", m.Config().TextModel)
		}
	})

	t.Run("認証情報が無い場合は MissingCredentials", func(t *testing.T) {
		_, err := New(ctx, ManagerArgs{Config: config.DefaultConfig()})
		if !errors.Is(err, apperr.ErrMissingCredentials) {
			t.Errorf("err = %v, want MissingCredentials", err)
		}
	})
}
