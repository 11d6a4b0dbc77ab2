package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-fashion-kit/pkg/apperr"
	"github.com/shouni/go-fashion-kit/pkg/domain"

	"golang.org/x/sync/errgroup"
)

// Flows は Dispatcher の呼び出しを固定の順序・並列構成で連結します。
// 中間成果物は呼び出し側の Session に保持され、Flows 自身は状態を持ちません。
type Flows struct {
	dispatcher Dispatcher
}

// NewFlows は Flows を初期化します。
func NewFlows(d Dispatcher) (*Flows, error) {
	if d == nil {
		return nil, fmt.Errorf("Dispatcher は必須です")
	}
	return &Flows{dispatcher: d}, nil
}

// GeneratePattern は柄を生成したあと、サステナブル素材の提案と配色抽出を並行で実行するのだ。
// 付加情報の失敗はログに残して省略し、フロー全体は成功として扱います。以前の試着画像とドキュメントは破棄されます。
func (f *Flows) GeneratePattern(ctx context.Context, s domain.Session, prompt string, details domain.StyleOptions) (domain.Session, PatternOutcome, error) {
	res, err := f.dispatcher.Dispatch(ctx, domain.ActionPatternImage, domain.PatternImagePayload{Prompt: prompt, Details: details})
	if err != nil {
		return s, PatternOutcome{}, err
	}

	outcome := PatternOutcome{Pattern: res.Image}
	var suggestionsErr, paletteErr error

	eg, egCtx := errgroup.WithContext(ctx)
	if domain.IsConcreteFabric(details.FabricType) {
		eg.Go(func() error {
			outcome.Suggestions, suggestionsErr = f.suggestions(egCtx, details.FabricType)
			return nil
		})
	}
	eg.Go(func() error {
		outcome.Palette, paletteErr = f.palette(egCtx, *res.Image)
		return nil
	})
	_ = eg.Wait()

	outcome.Degraded = degraded(ctx, map[domain.GenerationAction]error{
		domain.ActionSustainabilitySuggestion: suggestionsErr,
		domain.ActionPaletteExtraction:        paletteErr,
	})

	s.Prompt = prompt
	s.Style = mergeStyle(s.Style, details)
	s.Pattern = res.Image
	s.Palette = outcome.Palette
	s.Suggestions = outcome.Suggestions
	// 新しい柄に対して以前の試着画像とドキュメントは無効です。
	s.TryOn = nil
	s.TechPack = nil
	s.EcommerceCopy = nil
	s.Stage = domain.StagePatternReady
	if s.Top != nil || s.Main != nil || s.Border != nil {
		s.Stage = domain.StageMaterialsAssigned
	}
	return s.Advance(s.Stage), outcome, nil
}

// Inspire はアップロード画像をメイン素材として同期的に受け入れ、画像解析と配色抽出を並行で付加します。
func (f *Flows) Inspire(ctx context.Context, s domain.Session, img domain.Image) (domain.Session, InspirationOutcome, error) {
	if img.Empty() {
		return s, InspirationOutcome{}, apperr.New(apperr.KindInvalidPayload, domain.ActionImageAnalysis.String(), domain.ErrEmptyImage)
	}

	s.Pattern = &img
	s.Main = &img
	s = s.Advance(domain.StageMaterialsAssigned)

	var outcome InspirationOutcome
	var analysisErr, paletteErr error

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var res *domain.GenerationResult
		res, analysisErr = f.dispatcher.Dispatch(egCtx, domain.ActionImageAnalysis, domain.ImageAnalysisPayload{Image: &img})
		if analysisErr == nil {
			outcome.Prompt = res.Text
		}
		return nil
	})
	eg.Go(func() error {
		outcome.Palette, paletteErr = f.palette(egCtx, img)
		return nil
	})
	_ = eg.Wait()

	outcome.Degraded = degraded(ctx, map[domain.GenerationAction]error{
		domain.ActionImageAnalysis:     analysisErr,
		domain.ActionPaletteExtraction: paletteErr,
	})

	if outcome.Prompt != "" {
		s.Prompt = outcome.Prompt
	}
	if outcome.Palette != nil {
		s.Palette = outcome.Palette
	}
	return s, outcome, nil
}

// MatchingBorderPrompt は生成済みのメイン柄からボーダー用プロンプトを導きます。
// 生成は行わず、呼び出し側が次の柄生成を起動します。
func (f *Flows) MatchingBorderPrompt(ctx context.Context, s domain.Session) (domain.Session, string, error) {
	if s.Pattern.Empty() {
		return s, "", apperr.Newf(apperr.KindInvalidPayload, domain.ActionBorderPromptFromImage.String(), "メイン柄が生成されていません")
	}
	res, err := f.dispatcher.Dispatch(ctx, domain.ActionBorderPromptFromImage, domain.BorderPromptPayload{Image: s.Pattern})
	if err != nil {
		return s, "", err
	}
	s.BorderPrompt = res.Text
	return s, res.Text, nil
}

// GenerateBorder はボーダー柄を生成してボーダー素材に割り当てます。
func (f *Flows) GenerateBorder(ctx context.Context, s domain.Session, prompt string, details domain.StyleOptions) (domain.Session, error) {
	res, err := f.dispatcher.Dispatch(ctx, domain.ActionBorderImage, domain.BorderImagePayload{Prompt: prompt, Details: details})
	if err != nil {
		return s, err
	}
	s.BorderPrompt = prompt
	return AssignMaterial(s, domain.RoleBorder, *res.Image), nil
}

// Visualize は割り当て済みの素材で試着画像を生成します。以前のドキュメントは破棄されます。
func (f *Flows) Visualize(ctx context.Context, s domain.Session, style domain.StyleOptions) (domain.Session, error) {
	accessories := style.Accessories
	style = mergeStyle(s.Style, style)
	style.Accessories = accessories
	res, err := f.dispatcher.Dispatch(ctx, domain.ActionCompositeTryOn, domain.TryOnPayload{
		Top:    s.Top,
		Main:   s.Main,
		Border: s.Border,
		Style:  style,
	})
	if err != nil {
		return s, err
	}
	s.Style = style
	s.TryOn = res.Image
	s.TechPack = nil
	s.EcommerceCopy = nil
	return s.Advance(domain.StageVisualized), nil
}

// TechPack は試着画像とスタイル選択からテックパックを生成します。
func (f *Flows) TechPack(ctx context.Context, s domain.Session) (domain.Session, error) {
	pack, err := f.techPack(ctx, s)
	if err != nil {
		return s, err
	}
	s.TechPack = pack
	return s.Advance(domain.StageDocumented), nil
}

// EcommerceCopy はスタイル選択と柄のプロンプトから商品コピーを生成します。
func (f *Flows) EcommerceCopy(ctx context.Context, s domain.Session) (domain.Session, error) {
	ec, err := f.ecommerceCopy(ctx, s)
	if err != nil {
		return s, err
	}
	s.EcommerceCopy = ec
	return s.Advance(domain.StageDocumented), nil
}

// Document はテックパックと商品コピーを並行して生成します。片方の失敗はもう片方に影響しません。
func (f *Flows) Document(ctx context.Context, s domain.Session) (domain.Session, DocumentationOutcome) {
	var outcome DocumentationOutcome

	var eg errgroup.Group
	eg.Go(func() error {
		outcome.TechPack, outcome.TechPackErr = f.techPack(ctx, s)
		return nil
	})
	eg.Go(func() error {
		outcome.EcommerceCopy, outcome.EcommerceCopyErr = f.ecommerceCopy(ctx, s)
		return nil
	})
	_ = eg.Wait()

	if outcome.TechPack != nil {
		s.TechPack = outcome.TechPack
	}
	if outcome.EcommerceCopy != nil {
		s.EcommerceCopy = outcome.EcommerceCopy
	}
	if outcome.TechPack != nil || outcome.EcommerceCopy != nil {
		s = s.Advance(domain.StageDocumented)
	}
	return s, outcome
}

// AssignMaterial は画像を指定した役割の素材として割り当てます。
func AssignMaterial(s domain.Session, role domain.ImageRole, img domain.Image) domain.Session {
	switch role {
	case domain.RoleTop:
		s.Top = &img
	case domain.RoleMain:
		s.Main = &img
	case domain.RoleBorder:
		s.Border = &img
	default:
		return s
	}
	return s.Advance(domain.StageMaterialsAssigned)
}

func (f *Flows) techPack(ctx context.Context, s domain.Session) (*domain.TechPack, error) {
	if s.TryOn.Empty() {
		return nil, apperr.Newf(apperr.KindInvalidPayload, domain.ActionTechPack.String(), "試着画像が生成されていません")
	}
	res, err := f.dispatcher.Dispatch(ctx, domain.ActionTechPack, domain.TechPackPayload{
		Image:   s.TryOn,
		Details: documentDetails(s, false),
	})
	if err != nil {
		return nil, err
	}
	pack, ok := res.Value.(domain.TechPack)
	if !ok {
		return nil, unexpectedValue(domain.ActionTechPack, res.Value)
	}
	return &pack, nil
}

func (f *Flows) ecommerceCopy(ctx context.Context, s domain.Session) (*domain.EcommerceCopy, error) {
	if s.TryOn.Empty() {
		return nil, apperr.Newf(apperr.KindInvalidPayload, domain.ActionEcommerceCopy.String(), "試着画像が生成されていません")
	}
	res, err := f.dispatcher.Dispatch(ctx, domain.ActionEcommerceCopy, domain.EcommerceCopyPayload{
		Details: documentDetails(s, true),
	})
	if err != nil {
		return nil, err
	}
	ec, ok := res.Value.(domain.EcommerceCopy)
	if !ok {
		return nil, unexpectedValue(domain.ActionEcommerceCopy, res.Value)
	}
	return &ec, nil
}

func (f *Flows) palette(ctx context.Context, img domain.Image) ([]domain.ColorSwatch, error) {
	res, err := f.dispatcher.Dispatch(ctx, domain.ActionPaletteExtraction, domain.PaletteExtractionPayload{Image: &img})
	if err != nil {
		return nil, err
	}
	palette, ok := res.Value.([]domain.ColorSwatch)
	if !ok {
		return nil, unexpectedValue(domain.ActionPaletteExtraction, res.Value)
	}
	return palette, nil
}

func (f *Flows) suggestions(ctx context.Context, fabric string) ([]domain.FabricSuggestion, error) {
	res, err := f.dispatcher.Dispatch(ctx, domain.ActionSustainabilitySuggestion, domain.SustainabilityPayload{FabricType: fabric})
	if err != nil {
		return nil, err
	}
	suggestions, ok := res.Value.([]domain.FabricSuggestion)
	if !ok {
		return nil, unexpectedValue(domain.ActionSustainabilitySuggestion, res.Value)
	}
	return suggestions, nil
}

func documentDetails(s domain.Session, withPrompt bool) domain.DocumentDetails {
	d := domain.DocumentDetails{
		Outfit: s.Style.OutfitType,
		Style:  s.Style.WearingStyle,
		Fabric: s.Style.FabricType,
	}
	if withPrompt {
		d.PatternPrompt = s.Prompt
	}
	return d
}

// mergeStyle は next の値がある項目だけ base を上書きします。Accessories は呼び出し側で扱います。
func mergeStyle(base, next domain.StyleOptions) domain.StyleOptions {
	set := func(dst *string, v string) {
		if domain.HasValue(v) {
			*dst = v
		}
	}
	set(&base.FabricType, next.FabricType)
	set(&base.Weave, next.Weave)
	set(&base.Texture, next.Texture)
	set(&base.Scale, next.Scale)
	set(&base.OutfitType, next.OutfitType)
	set(&base.Neckline, next.Neckline)
	set(&base.ModelSize, next.ModelSize)
	set(&base.WearingStyle, next.WearingStyle)
	set(&base.CameraView, next.CameraView)
	set(&base.Environment, next.Environment)
	set(&base.Pose, next.Pose)
	return base
}

// degraded は失敗した付加アクションをログに残し、宣言順に並べて返します。
func degraded(ctx context.Context, errs map[domain.GenerationAction]error) []domain.GenerationAction {
	var out []domain.GenerationAction
	for _, action := range domain.AllActions() {
		err, ok := errs[action]
		if !ok || err == nil {
			continue
		}
		slog.WarnContext(ctx, "Enrichment call failed, omitting result",
			"action", action.String(),
			"kind", apperr.KindOf(err),
			"error", err,
		)
		out = append(out, action)
	}
	return out
}

func unexpectedValue(action domain.GenerationAction, v any) error {
	return apperr.Newf(apperr.KindMalformedUpstreamResponse, action.String(), "想定外の型の結果です: %T", v)
}

var _ Workflow = (*Flows)(nil)
