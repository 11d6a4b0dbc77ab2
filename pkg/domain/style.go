package domain

import (
	"encoding/json"
	"strings"
)

const (
	// SentinelAuto はファブリック指定なしを表す UI 上の既定値です。
	SentinelAuto = "Auto"
	// sentinelStandard を含む着こなしは既定の着こなしとして扱います。
	sentinelStandard = "standard"
)

// StyleOptions はスタイル指定のオプション群です。
// どのキーも任意の修飾子で、値が空・空白のみ・センチネル値の場合は対応する指示文を省略します。
type StyleOptions struct {
	FabricType   string `json:"fabricType,omitempty"`
	Weave        string `json:"weave,omitempty"`
	Texture      string `json:"texture,omitempty"`
	Scale        string `json:"scale,omitempty"`
	OutfitType   string `json:"outfitType,omitempty"`
	Neckline     string `json:"neckline,omitempty"`
	ModelSize    string `json:"modelSize,omitempty"`
	WearingStyle string `json:"wearingStyle,omitempty"`
	CameraView   string `json:"cameraView,omitempty"`
	Environment  string `json:"environment,omitempty"`
	Pose         string `json:"pose,omitempty"`
	Accessories  bool   `json:"accessories,omitempty"`
}

// UnmarshalJSON は旧 API のキー名（weaveType, outfit, neckType, addAccessories）も受け付けます。
func (s *StyleOptions) UnmarshalJSON(b []byte) error {
	type plain StyleOptions
	var aux struct {
		plain
		WeaveType      string `json:"weaveType"`
		Outfit         string `json:"outfit"`
		NeckType       string `json:"neckType"`
		AddAccessories *bool  `json:"addAccessories"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*s = StyleOptions(aux.plain)
	if s.Weave == "" {
		s.Weave = aux.WeaveType
	}
	if s.OutfitType == "" {
		s.OutfitType = aux.Outfit
	}
	if s.Neckline == "" {
		s.Neckline = aux.NeckType
	}
	if aux.AddAccessories != nil && !s.Accessories {
		s.Accessories = *aux.AddAccessories
	}
	return nil
}

// HasValue は値が空文字や空白のみでないかを判定します。
func HasValue(v string) bool {
	return strings.TrimSpace(v) != ""
}

// IsConcreteFabric はファブリック指定が "Auto" 以外の具体的な値かを判定します。
func IsConcreteFabric(v string) bool {
	return HasValue(v) && !strings.EqualFold(strings.TrimSpace(v), SentinelAuto)
}

// IsCustomWearingStyle は着こなしが既定（standard を含む名称）以外かを判定します。
func IsCustomWearingStyle(v string) bool {
	return HasValue(v) && !strings.Contains(strings.ToLower(v), sentinelStandard)
}
