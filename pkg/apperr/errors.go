package apperr

import (
	"errors"
	"fmt"
)

// Kind は呼び出し側に一様に返すエラー種別です。
type Kind string

const (
	KindUnknown                   Kind = "Unknown"
	KindMissingCredentials        Kind = "MissingCredentials"
	KindInvalidPayload            Kind = "InvalidPayload"
	KindUnsupportedAction         Kind = "UnsupportedAction"
	KindEmptyResult               Kind = "EmptyResult"
	KindMalformedUpstreamResponse Kind = "MalformedUpstreamResponse"
	KindTransientUpstreamFailure  Kind = "TransientUpstreamFailure"
)

// 各種別の番兵エラーです。errors.Is(err, apperr.ErrEmptyResult) のように判定します。
var (
	ErrMissingCredentials        = &sentinel{KindMissingCredentials}
	ErrInvalidPayload            = &sentinel{KindInvalidPayload}
	ErrUnsupportedAction         = &sentinel{KindUnsupportedAction}
	ErrEmptyResult               = &sentinel{KindEmptyResult}
	ErrMalformedUpstreamResponse = &sentinel{KindMalformedUpstreamResponse}
	ErrTransientUpstreamFailure  = &sentinel{KindTransientUpstreamFailure}
)

type sentinel struct{ kind Kind }

func (s *sentinel) Error() string { return string(s.kind) }

// Error は分類済みのエラーです。Action は失敗したアクション名で、不明な場合は空です。
type Error struct {
	Kind   Kind
	Action string
	Err    error
}

// New は分類済みのエラーを作成します。
func New(kind Kind, action string, err error) *Error {
	return &Error{Kind: kind, Action: action, Err: err}
}

// Newf はメッセージから分類済みのエラーを作成します。
func Newf(kind Kind, action, format string, args ...any) *Error {
	return New(kind, action, fmt.Errorf(format, args...))
}

func (e *Error) Error() string {
	switch {
	case e.Action != "" && e.Err != nil:
		return fmt.Sprintf("%s [%s]: %v", e.Kind, e.Action, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Action != "":
		return fmt.Sprintf("%s [%s]", e.Kind, e.Action)
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is は同じ種別の番兵エラーと一致します。
func (e *Error) Is(target error) bool {
	var s *sentinel
	if errors.As(target, &s) {
		return s.kind == e.Kind
	}
	return false
}

// Retryable は呼び出し側が再試行を検討してよい種別かを返します。コア自身は再試行しません。
func (e *Error) Retryable() bool {
	return e.Kind == KindTransientUpstreamFailure
}

// KindOf はエラーの種別を返します。分類されていないエラーは KindUnknown です。
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Classify は外部生成機能の呼び出しで生じた未分類のエラーを TransientUpstreamFailure に分類します。
// 既に分類済みのエラーはそのまま返します。
func Classify(action string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return New(KindTransientUpstreamFailure, action, err)
}
