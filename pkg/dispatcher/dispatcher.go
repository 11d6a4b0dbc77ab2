package dispatcher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/go-fashion-kit/pkg/adapters"
	"github.com/shouni/go-fashion-kit/pkg/apperr"
	"github.com/shouni/go-fashion-kit/pkg/domain"
	"github.com/shouni/go-fashion-kit/pkg/prompts"
)

// Dispatcher はアクションを検証し、リクエストを組み立てて外部生成機能を一度だけ呼び出し、結果を正規化します。
// 呼び出し間で状態を持ちません。
type Dispatcher struct {
	builder    prompts.RequestBuilder
	capability adapters.Capability
}

// New は Dispatcher を初期化します。
func New(builder prompts.RequestBuilder, capability adapters.Capability) (*Dispatcher, error) {
	if builder == nil {
		return nil, fmt.Errorf("RequestBuilder は必須です")
	}
	if capability == nil {
		return nil, fmt.Errorf("Capability は必須です")
	}
	return &Dispatcher{builder: builder, capability: capability}, nil
}

// Dispatch は型付きのペイロードでアクションを実行するのだ。外部への呼び出しは必ず一度きりなのだ。
func (d *Dispatcher) Dispatch(ctx context.Context, action domain.GenerationAction, payload domain.Payload) (*domain.GenerationResult, error) {
	if !action.Valid() {
		return nil, apperr.Newf(apperr.KindUnsupportedAction, action.String(), "未対応のアクションです")
	}
	payload = domain.Value(payload)
	if payload == nil {
		return nil, apperr.Newf(apperr.KindInvalidPayload, action.String(), "ペイロードがありません")
	}
	if payload.Action() != action {
		return nil, apperr.Newf(apperr.KindInvalidPayload, action.String(), "ペイロードの形状 (%s) がアクションと一致しません", payload.Action())
	}

	req, err := d.builder.Build(payload)
	if err != nil {
		return nil, err
	}

	logger := slog.With("action", action.String(), "modality", action.Modality().String())
	startTime := time.Now()

	resp, err := d.capability.Generate(ctx, req)
	if err != nil {
		err = apperr.Classify(action.String(), err)
		logger.ErrorContext(ctx, "Dispatch failed", "kind", apperr.KindOf(err), "error", err)
		return nil, err
	}

	result, err := normalize(action, resp, req.Schema)
	if err != nil {
		logger.WarnContext(ctx, "Response normalization failed", "kind", apperr.KindOf(err), "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Dispatch completed", "duration", time.Since(startTime).Round(time.Millisecond))
	return result, nil
}

// DispatchRaw はアクション名と JSON ペイロードを受け取る境界向けの入口です。
func (d *Dispatcher) DispatchRaw(ctx context.Context, name string, raw json.RawMessage) (*domain.GenerationResult, error) {
	action, ok := domain.ParseAction(name)
	if !ok {
		return nil, apperr.Newf(apperr.KindUnsupportedAction, name, "未対応のアクションです")
	}
	payload, err := domain.DecodePayload(action, raw)
	if err != nil {
		return nil, apperr.New(apperr.KindInvalidPayload, action.String(), err)
	}
	return d.Dispatch(ctx, action, payload)
}
