package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/shouni/go-fashion-kit/pkg/apperr"
	"github.com/shouni/go-fashion-kit/pkg/domain"
	"github.com/shouni/go-fashion-kit/pkg/prompts"
	"github.com/shouni/go-fashion-kit/pkg/workflow"

	"github.com/go-chi/chi/v5"
)

type dispatchRequest struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

type generateRequest struct {
	Prompt  string              `json:"prompt"`
	Era     string              `json:"era"`
	Details domain.StyleOptions `json:"details"`
}

type inspireRequest struct {
	Image domain.Image `json:"image"`
}

type materialRequest struct {
	Role  domain.ImageRole `json:"role"`
	Image domain.Image     `json:"image"`
}

type createSessionResponse struct {
	Session domain.Session `json:"session"`
}

type flowResponse struct {
	Session domain.Session `json:"session"`
	Outcome any            `json:"outcome,omitempty"`
}

type borderPromptResponse struct {
	Session domain.Session `json:"session"`
	Prompt  string         `json:"prompt"`
}

type documentResponse struct {
	Session       domain.Session        `json:"session"`
	TechPack      *domain.TechPack      `json:"techPack,omitempty"`
	EcommerceCopy *domain.EcommerceCopy `json:"ecommerceCopy,omitempty"`
	Errors        map[string]string     `json:"errors,omitempty"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Sessions: s.sessions.Len()})
}

func (s *Server) getCatalog(w http.ResponseWriter, _ *http.Request) {
	writeData(w, s.catalog)
}

// dispatch は {action, payload} を受け取り、単一アクションを実行します。
func (s *Server) dispatch(w http.ResponseWriter, r *http.Request) {
	var req dispatchRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	res, err := s.dispatcher.DispatchRaw(r.Context(), req.Action, req.Payload)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, res.Data())
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	admin := s.adminToken != "" && r.Header.Get("X-Admin-Token") == s.adminToken
	sess, err := s.sessions.Create(admin)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, createSessionResponse{Session: sess})
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, createSessionResponse{Session: sess})
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.sessions.Get(id); err != nil {
		writeError(w, r, err)
		return
	}
	s.sessions.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

// generatePattern は柄生成フローを実行します。成功時に利用回数を一つ消費します。
func (s *Server) generatePattern(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.billableSession(w, r)
	if !ok {
		return
	}
	var req generateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	prompt, err := resolvePrompt(domain.ActionPatternImage, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sess, outcome, err := s.flows.GeneratePattern(r.Context(), sess, prompt, req.Details)
	if err != nil {
		writeError(w, r, err)
		return
	}
	sess = sess.ConsumeCredit()
	s.sessions.Put(sess)
	writeData(w, flowResponse{Session: sess, Outcome: outcome})
}

func (s *Server) inspire(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req inspireRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	sess, outcome, err := s.flows.Inspire(r.Context(), sess, req.Image)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.sessions.Put(sess)
	writeData(w, flowResponse{Session: sess, Outcome: outcome})
}

// assignMaterial は画像を素材に割り当てます。画像が省略された場合は現在の柄を使います。
func (s *Server) assignMaterial(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req materialRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	switch req.Role {
	case domain.RoleTop, domain.RoleMain, domain.RoleBorder:
	default:
		writeError(w, r, apperr.Newf(apperr.KindInvalidPayload, "", "role %q は割り当てできません", req.Role))
		return
	}
	img := req.Image
	if img.Empty() {
		if sess.Pattern.Empty() {
			writeError(w, r, apperr.New(apperr.KindInvalidPayload, "", domain.ErrEmptyImage))
			return
		}
		img = *sess.Pattern
	}
	sess = workflow.AssignMaterial(sess, req.Role, img)
	s.sessions.Put(sess)
	writeData(w, flowResponse{Session: sess})
}

func (s *Server) matchingBorderPrompt(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	sess, prompt, err := s.flows.MatchingBorderPrompt(r.Context(), sess)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.sessions.Put(sess)
	writeData(w, borderPromptResponse{Session: sess, Prompt: prompt})
}

// generateBorder はボーダー柄を生成します。プロンプトが空の場合は導出済みのボーダー用プロンプトを使います。
func (s *Server) generateBorder(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.billableSession(w, r)
	if !ok {
		return
	}
	var req generateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Prompt) == "" && req.Era == "" {
		req.Prompt = sess.BorderPrompt
	}
	prompt, err := resolvePrompt(domain.ActionBorderImage, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sess, err = s.flows.GenerateBorder(r.Context(), sess, prompt, req.Details)
	if err != nil {
		writeError(w, r, err)
		return
	}
	sess = sess.ConsumeCredit()
	s.sessions.Put(sess)
	writeData(w, flowResponse{Session: sess})
}

func (s *Server) visualize(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	var style domain.StyleOptions
	if err := decodeBody(w, r, &style); err != nil {
		writeError(w, r, err)
		return
	}
	sess, err = s.flows.Visualize(r.Context(), sess, style)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.sessions.Put(sess)
	writeData(w, flowResponse{Session: sess})
}

func (s *Server) techPack(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	sess, err = s.flows.TechPack(r.Context(), sess)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.sessions.Put(sess)
	writeData(w, documentResponse{Session: sess, TechPack: sess.TechPack})
}

func (s *Server) ecommerceCopy(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	sess, err = s.flows.EcommerceCopy(r.Context(), sess)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.sessions.Put(sess)
	writeData(w, documentResponse{Session: sess, EcommerceCopy: sess.EcommerceCopy})
}

// document はテックパックと商品コピーを生成します。片方だけ成功した場合も 200 を返し、失敗は errors に入ります。
func (s *Server) document(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	sess, outcome := s.flows.Document(r.Context(), sess)
	if outcome.TechPackErr != nil && outcome.EcommerceCopyErr != nil {
		writeError(w, r, outcome.TechPackErr)
		return
	}
	s.sessions.Put(sess)

	resp := documentResponse{Session: sess, TechPack: outcome.TechPack, EcommerceCopy: outcome.EcommerceCopy}
	for action, err := range map[domain.GenerationAction]error{
		domain.ActionTechPack:      outcome.TechPackErr,
		domain.ActionEcommerceCopy: outcome.EcommerceCopyErr,
	} {
		if err == nil {
			continue
		}
		if resp.Errors == nil {
			resp.Errors = make(map[string]string)
		}
		resp.Errors[action.String()] = err.Error()
	}
	writeData(w, resp)
}

// billableSession はセッションを取得し、利用回数が残っているかを確認します。
func (s *Server) billableSession(w http.ResponseWriter, r *http.Request) (domain.Session, bool) {
	sess, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return domain.Session{}, false
	}
	if !sess.HasCredits() {
		writeError(w, r, errNoCredits)
		return domain.Session{}, false
	}
	return sess, true
}

// resolvePrompt はプロンプトが空の場合にデザイン時代のプリセットで補います。
func resolvePrompt(action domain.GenerationAction, req generateRequest) (string, error) {
	if strings.TrimSpace(req.Prompt) != "" {
		return req.Prompt, nil
	}
	if p, ok := prompts.EraPrompt(req.Era); ok {
		return p, nil
	}
	return "", apperr.Newf(apperr.KindInvalidPayload, action.String(), "prompt は必須です")
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperr.New(apperr.KindInvalidPayload, "", fmt.Errorf("リクエストボディの解析に失敗しました: %w", err))
	}
	return nil
}
