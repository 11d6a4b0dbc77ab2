package domain

import "time"

// SessionStage はデザインセッションの概念上の進行段階です。順序の強制は呼び出し側の責務です。
type SessionStage string

const (
	StageEmpty             SessionStage = "empty"
	StagePatternReady      SessionStage = "pattern_ready"
	StageMaterialsAssigned SessionStage = "materials_assigned"
	StageVisualized        SessionStage = "visualized"
	StageDocumented        SessionStage = "documented"
)

// UnlimitedCredits は利用回数の制限が無いことを示します。
const UnlimitedCredits = -1

// Session はオーケストレーションフローが引き継ぐ中間成果物です。
// フローは Session を値で受け取り、更新した新しい値を返します。
type Session struct {
	ID            string             `json:"id"`
	Stage         SessionStage       `json:"stage"`
	Prompt        string             `json:"prompt,omitempty"`
	Style         StyleOptions       `json:"style"`
	Pattern       *Image             `json:"pattern,omitempty"`
	Top           *Image             `json:"top,omitempty"`
	Main          *Image             `json:"main,omitempty"`
	Border        *Image             `json:"border,omitempty"`
	TryOn         *Image             `json:"tryOn,omitempty"`
	Palette       []ColorSwatch      `json:"palette,omitempty"`
	BorderPrompt  string             `json:"borderPrompt,omitempty"`
	Suggestions   []FabricSuggestion `json:"suggestions,omitempty"`
	TechPack      *TechPack          `json:"techPack,omitempty"`
	EcommerceCopy *EcommerceCopy     `json:"ecommerceCopy,omitempty"`
	Credits       int                `json:"credits"`
	Admin         bool               `json:"admin"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// NewSession は空のセッションを作成します。
// admin の場合は利用回数を無制限にします。
func NewSession(id string, credits int, admin bool) Session {
	if admin {
		credits = UnlimitedCredits
	}
	return Session{ID: id, Stage: StageEmpty, Credits: credits, Admin: admin, UpdatedAt: time.Now()}
}

// Advance は段階を前に進めます。既に先の段階にいる場合は変更しません。
func (s Session) Advance(stage SessionStage) Session {
	if stageRank(stage) > stageRank(s.Stage) {
		s.Stage = stage
	}
	s.UpdatedAt = time.Now()
	return s
}

// HasCredits は課金対象のアクションを実行できるかを返します。
func (s Session) HasCredits() bool {
	return s.Credits == UnlimitedCredits || s.Credits > 0
}

// ConsumeCredit は利用回数を一つ減らした Session を返します。無制限の場合はそのままです。
func (s Session) ConsumeCredit() Session {
	if s.Credits > 0 {
		s.Credits--
	}
	return s
}

// Billable はクレジットを消費するアクションかを返します。
func Billable(a GenerationAction) bool {
	return a == ActionPatternImage || a == ActionBorderImage
}

func stageRank(s SessionStage) int {
	switch s {
	case StagePatternReady:
		return 1
	case StageMaterialsAssigned:
		return 2
	case StageVisualized:
		return 3
	case StageDocumented:
		return 4
	default:
		return 0
	}
}
