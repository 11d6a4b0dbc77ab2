package workflow

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/shouni/go-fashion-kit/pkg/apperr"
	"github.com/shouni/go-fashion-kit/pkg/domain"

	"github.com/google/go-cmp/cmp"
)

// fakeDispatcher はアクションごとに固定の結果またはエラーを返します。
type fakeDispatcher struct {
	mu       sync.Mutex
	calls    []domain.GenerationAction
	payloads map[domain.GenerationAction]domain.Payload
	results  map[domain.GenerationAction]*domain.GenerationResult
	errs     map[domain.GenerationAction]error
}

func newFakeDispatcher() *fakeDispatcher {
	return &fakeDispatcher{
		payloads: map[domain.GenerationAction]domain.Payload{},
		results: map[domain.GenerationAction]*domain.GenerationResult{
			domain.ActionPatternImage:          {Image: &domain.Image{MIMEType: "image/png", Data: []byte("pattern")}},
			domain.ActionBorderImage:           {Image: &domain.Image{MIMEType: "image/png", Data: []byte("border")}},
			domain.ActionCompositeTryOn:        {Image: &domain.Image{MIMEType: "image/png", Data: []byte("tryon")}},
			domain.ActionImageAnalysis:         {Text: "hand-blocked indigo florals"},
			domain.ActionBorderPromptFromImage: {Text: "thin indigo vine border"},
			domain.ActionPaletteExtraction:     {Value: []domain.ColorSwatch{{Name: "Indigo", Hex: "#3F51B5"}}},
			domain.ActionSustainabilitySuggestion: {Value: []domain.FabricSuggestion{
				{Name: "Peace Silk", Reason: "cruelty-free"},
			}},
			domain.ActionTechPack:      {Value: domain.TechPack{OutfitName: "Indigo Saree"}},
			domain.ActionEcommerceCopy: {Value: domain.EcommerceCopy{Title: "Indigo Dreams"}},
		},
		errs: map[domain.GenerationAction]error{},
	}
}

func (f *fakeDispatcher) Dispatch(_ context.Context, action domain.GenerationAction, payload domain.Payload) (*domain.GenerationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, action)
	f.payloads[action] = payload
	if err := f.errs[action]; err != nil {
		return nil, err
	}
	res := *f.results[action]
	res.Action = action
	res.Modality = action.Modality()
	return &res, nil
}

func (f *fakeDispatcher) called(action domain.GenerationAction) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Contains(f.calls, action)
}

func newTestFlows(t *testing.T, d Dispatcher) *Flows {
	t.Helper()
	flows, err := NewFlows(d)
	if err != nil {
		t.Fatalf("NewFlows() error = %v", err)
	}
	return flows
}

func TestNewFlows_RequiresDispatcher(t *testing.T) {
	if _, err := NewFlows(nil); err == nil {
		t.Error("nil の Dispatcher でエラーになりませんでした")
	}
}

func TestFlows_GeneratePattern(t *testing.T) {
	ctx := context.Background()
	silk := domain.StyleOptions{FabricType: "Silk", OutfitType: "Saree"}

	t.Run("柄と付加情報がすべて揃うこと", func(t *testing.T) {
		d := newFakeDispatcher()
		s, outcome, err := newTestFlows(t, d).GeneratePattern(ctx, domain.NewSession("s1", 3, false), "paisley", silk)
		if err != nil {
			t.Fatalf("GeneratePattern() error = %v", err)
		}
		if string(outcome.Pattern.Data) != "pattern" || len(outcome.Palette) != 1 || len(outcome.Suggestions) != 1 {
			t.Errorf("outcome = %+v", outcome)
		}
		if len(outcome.Degraded) != 0 {
			t.Errorf("Degraded = %v", outcome.Degraded)
		}
		if s.Stage != domain.StagePatternReady || s.Prompt != "paisley" || s.Style.FabricType != "Silk" {
			t.Errorf("session = %+v", s)
		}
	})

	t.Run("配色抽出の失敗は柄を残して省略されること", func(t *testing.T) {
		d := newFakeDispatcher()
		d.errs[domain.ActionPaletteExtraction] = apperr.Newf(apperr.KindMalformedUpstreamResponse, "palette-extraction", "bad json")

		s, outcome, err := newTestFlows(t, d).GeneratePattern(ctx, domain.NewSession("s1", 3, false), "paisley", silk)
		if err != nil {
			t.Fatalf("付加情報の失敗でフローが失敗しました: %v", err)
		}
		if outcome.Pattern == nil || s.Pattern == nil {
			t.Error("柄が結果に含まれていません")
		}
		if outcome.Palette != nil || s.Palette != nil {
			t.Errorf("Palette = %v, want nil", outcome.Palette)
		}
		if len(outcome.Suggestions) != 1 {
			t.Errorf("Suggestions = %v", outcome.Suggestions)
		}
		if diff := cmp.Diff([]domain.GenerationAction{domain.ActionPaletteExtraction}, outcome.Degraded); diff != "" {
			t.Errorf("Degraded mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("以前の試着画像とドキュメントを破棄すること", func(t *testing.T) {
		in := domain.NewSession("s1", 3, false)
		in.TryOn = &domain.Image{MIMEType: "image/png", Data: []byte("old-tryon")}
		in.TechPack = &domain.TechPack{OutfitName: "old"}
		in.EcommerceCopy = &domain.EcommerceCopy{Title: "old"}
		in.Stage = domain.StageDocumented

		s, _, err := newTestFlows(t, newFakeDispatcher()).GeneratePattern(ctx, in, "ikat", silk)
		if err != nil {
			t.Fatalf("GeneratePattern() error = %v", err)
		}
		if s.TryOn != nil || s.TechPack != nil || s.EcommerceCopy != nil {
			t.Errorf("古い成果物が残っています: tryOn=%v techPack=%v copy=%v", s.TryOn, s.TechPack, s.EcommerceCopy)
		}
		if s.Pattern == nil || string(s.Pattern.Data) != "pattern" {
			t.Errorf("Pattern = %+v", s.Pattern)
		}
		if s.Stage != domain.StagePatternReady {
			t.Errorf("Stage = %s, want %s", s.Stage, domain.StagePatternReady)
		}
	})

	t.Run("素材が Auto の場合はサステナブル提案を呼ばないこと", func(t *testing.T) {
		d := newFakeDispatcher()
		_, outcome, err := newTestFlows(t, d).GeneratePattern(ctx, domain.NewSession("s1", 3, false), "paisley", domain.StyleOptions{FabricType: "Auto"})
		if err != nil {
			t.Fatalf("GeneratePattern() error = %v", err)
		}
		if d.called(domain.ActionSustainabilitySuggestion) {
			t.Error("sustainability-suggestion が呼ばれました")
		}
		if outcome.Suggestions != nil || len(outcome.Degraded) != 0 {
			t.Errorf("outcome = %+v", outcome)
		}
	})

	t.Run("柄生成の失敗はそのまま返すこと", func(t *testing.T) {
		d := newFakeDispatcher()
		d.errs[domain.ActionPatternImage] = apperr.Newf(apperr.KindEmptyResult, "pattern-image", "no image")

		in := domain.NewSession("s1", 3, false)
		s, _, err := newTestFlows(t, d).GeneratePattern(ctx, in, "paisley", silk)
		if !errors.Is(err, apperr.ErrEmptyResult) {
			t.Errorf("err = %v, want EmptyResult", err)
		}
		if s.Stage != domain.StageEmpty || d.called(domain.ActionPaletteExtraction) {
			t.Errorf("失敗時にセッションが更新されたか付加呼び出しが行われました: %+v", s)
		}
	})
}

func TestFlows_Inspire(t *testing.T) {
	ctx := context.Background()
	img := domain.Image{MIMEType: "image/jpeg", Data: []byte("upload")}

	t.Run("画像をメイン素材として同期的に割り当てること", func(t *testing.T) {
		d := newFakeDispatcher()
		d.errs[domain.ActionImageAnalysis] = errors.New("timeout")

		s, outcome, err := newTestFlows(t, d).Inspire(ctx, domain.NewSession("s1", 3, false), img)
		if err != nil {
			t.Fatalf("Inspire() error = %v", err)
		}
		if s.Main == nil || string(s.Main.Data) != "upload" || s.Stage != domain.StageMaterialsAssigned {
			t.Errorf("session = %+v", s)
		}
		if outcome.Prompt != "" || len(outcome.Palette) != 1 {
			t.Errorf("outcome = %+v", outcome)
		}
		if diff := cmp.Diff([]domain.GenerationAction{domain.ActionImageAnalysis}, outcome.Degraded); diff != "" {
			t.Errorf("Degraded mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("解析結果をプロンプトに反映すること", func(t *testing.T) {
		s, outcome, err := newTestFlows(t, newFakeDispatcher()).Inspire(ctx, domain.NewSession("s1", 3, false), img)
		if err != nil {
			t.Fatalf("Inspire() error = %v", err)
		}
		if outcome.Prompt != "hand-blocked indigo florals" || s.Prompt != outcome.Prompt {
			t.Errorf("prompt = %q / %q", outcome.Prompt, s.Prompt)
		}
	})

	t.Run("空の画像は InvalidPayload", func(t *testing.T) {
		_, _, err := newTestFlows(t, newFakeDispatcher()).Inspire(ctx, domain.NewSession("s1", 3, false), domain.Image{})
		if !errors.Is(err, apperr.ErrInvalidPayload) {
			t.Errorf("err = %v", err)
		}
	})
}

func TestFlows_Border(t *testing.T) {
	ctx := context.Background()

	t.Run("メイン柄が無い場合は InvalidPayload", func(t *testing.T) {
		d := newFakeDispatcher()
		_, _, err := newTestFlows(t, d).MatchingBorderPrompt(ctx, domain.NewSession("s1", 3, false))
		if !errors.Is(err, apperr.ErrInvalidPayload) {
			t.Errorf("err = %v", err)
		}
		if len(d.calls) != 0 {
			t.Errorf("calls = %v", d.calls)
		}
	})

	t.Run("プロンプトを導いてからボーダーを割り当てること", func(t *testing.T) {
		d := newFakeDispatcher()
		flows := newTestFlows(t, d)
		s := domain.NewSession("s1", 3, false)
		s.Pattern = &domain.Image{MIMEType: "image/png", Data: []byte("pattern")}

		s, prompt, err := flows.MatchingBorderPrompt(ctx, s)
		if err != nil {
			t.Fatalf("MatchingBorderPrompt() error = %v", err)
		}
		if prompt != "thin indigo vine border" || s.BorderPrompt != prompt {
			t.Errorf("prompt = %q", prompt)
		}

		s, err = flows.GenerateBorder(ctx, s, prompt, domain.StyleOptions{})
		if err != nil {
			t.Fatalf("GenerateBorder() error = %v", err)
		}
		if s.Border == nil || string(s.Border.Data) != "border" || s.Stage != domain.StageMaterialsAssigned {
			t.Errorf("session = %+v", s)
		}
	})
}

func TestFlows_VisualizeAndDocument(t *testing.T) {
	ctx := context.Background()

	base := domain.NewSession("s1", 3, false)
	base.Prompt = "paisley"
	base.Style = domain.StyleOptions{OutfitType: "Saree", FabricType: "Silk", WearingStyle: "Nivi Drape"}
	base.Main = &domain.Image{MIMEType: "image/png", Data: []byte("main")}

	t.Run("試着で以前のドキュメントが破棄されること", func(t *testing.T) {
		d := newFakeDispatcher()
		s := base
		s.TechPack = &domain.TechPack{OutfitName: "old"}
		s.EcommerceCopy = &domain.EcommerceCopy{Title: "old"}

		s, err := newTestFlows(t, d).Visualize(ctx, s, domain.StyleOptions{Neckline: "Boat Neck", Accessories: true})
		if err != nil {
			t.Fatalf("Visualize() error = %v", err)
		}
		if s.TryOn == nil || s.TechPack != nil || s.EcommerceCopy != nil || s.Stage != domain.StageVisualized {
			t.Errorf("session = %+v", s)
		}

		got, ok := d.payloads[domain.ActionCompositeTryOn].(domain.TryOnPayload)
		if !ok {
			t.Fatalf("payload = %T", d.payloads[domain.ActionCompositeTryOn])
		}
		if got.Style.OutfitType != "Saree" || got.Style.Neckline != "Boat Neck" || !got.Style.Accessories {
			t.Errorf("style = %+v", got.Style)
		}
	})

	t.Run("試着前のテックパックは InvalidPayload", func(t *testing.T) {
		d := newFakeDispatcher()
		_, err := newTestFlows(t, d).TechPack(ctx, base)
		if !errors.Is(err, apperr.ErrInvalidPayload) {
			t.Errorf("err = %v", err)
		}
		if d.called(domain.ActionTechPack) {
			t.Error("tech-pack が呼ばれました")
		}
	})

	visualized := base
	visualized.TryOn = &domain.Image{MIMEType: "image/png", Data: []byte("tryon")}
	visualized.Stage = domain.StageVisualized

	t.Run("片方の失敗がもう片方に影響しないこと", func(t *testing.T) {
		d := newFakeDispatcher()
		d.errs[domain.ActionTechPack] = apperr.Newf(apperr.KindTransientUpstreamFailure, "tech-pack", "503")

		s, outcome := newTestFlows(t, d).Document(ctx, visualized)
		if !errors.Is(outcome.TechPackErr, apperr.ErrTransientUpstreamFailure) || outcome.TechPack != nil {
			t.Errorf("tech pack = %+v / %v", outcome.TechPack, outcome.TechPackErr)
		}
		if outcome.EcommerceCopyErr != nil || outcome.EcommerceCopy == nil || outcome.EcommerceCopy.Title != "Indigo Dreams" {
			t.Errorf("ecommerce = %+v / %v", outcome.EcommerceCopy, outcome.EcommerceCopyErr)
		}
		if s.Stage != domain.StageDocumented || s.EcommerceCopy == nil || s.TechPack != nil {
			t.Errorf("session = %+v", s)
		}

		ec, _ := d.payloads[domain.ActionEcommerceCopy].(domain.EcommerceCopyPayload)
		want := domain.DocumentDetails{Outfit: "Saree", Style: "Nivi Drape", Fabric: "Silk", PatternPrompt: "paisley"}
		if diff := cmp.Diff(want, ec.Details); diff != "" {
			t.Errorf("details mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("両方失敗した場合は段階を進めないこと", func(t *testing.T) {
		d := newFakeDispatcher()
		d.errs[domain.ActionTechPack] = errors.New("boom")
		d.errs[domain.ActionEcommerceCopy] = errors.New("boom")

		s, outcome := newTestFlows(t, d).Document(ctx, visualized)
		if outcome.TechPackErr == nil || outcome.EcommerceCopyErr == nil {
			t.Errorf("outcome = %+v", outcome)
		}
		if s.Stage != domain.StageVisualized {
			t.Errorf("Stage = %s", s.Stage)
		}
	})

	t.Run("個別のテックパック生成", func(t *testing.T) {
		s, err := newTestFlows(t, newFakeDispatcher()).TechPack(ctx, visualized)
		if err != nil {
			t.Fatalf("TechPack() error = %v", err)
		}
		if s.TechPack == nil || s.TechPack.OutfitName != "Indigo Saree" {
			t.Errorf("TechPack = %+v", s.TechPack)
		}
	})
}

func TestAssignMaterial(t *testing.T) {
	img := domain.Image{MIMEType: "image/png", Data: []byte("top")}
	s := AssignMaterial(domain.NewSession("s1", 3, false), domain.RoleTop, img)
	if s.Top == nil || s.Stage != domain.StageMaterialsAssigned {
		t.Errorf("session = %+v", s)
	}

	unchanged := AssignMaterial(domain.NewSession("s2", 3, false), domain.ImageRole("sleeve"), img)
	if unchanged.Stage != domain.StageEmpty {
		t.Errorf("未知の役割で段階が進みました: %s", unchanged.Stage)
	}
}
