package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shouni/go-fashion-kit/pkg/apperr"
	"github.com/shouni/go-fashion-kit/pkg/session"
)

var errNoCredits = errors.New("利用回数の上限に達しました")

// retryAfter は再試行してよいエラーに付ける Retry-After の値です。
const retryAfter = 5 * time.Second

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, successEnvelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	kind := string(apperr.KindOf(err))
	if code >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "Request failed",
			"request_id", RequestIDFromContext(r.Context()),
			"kind", kind,
			"error", err,
		)
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) && appErr.Retryable() {
		w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
	}
	writeJSON(w, code, errorEnvelope{Success: false, Error: err.Error(), Kind: kind})
}

// statusFor はエラー種別を HTTP ステータスに対応付けます。
func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errNoCredits):
		return http.StatusPaymentRequired
	}

	switch apperr.KindOf(err) {
	case apperr.KindInvalidPayload, apperr.KindUnsupportedAction:
		return http.StatusBadRequest
	case apperr.KindEmptyResult, apperr.KindMalformedUpstreamResponse:
		return http.StatusBadGateway
	case apperr.KindTransientUpstreamFailure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
