package domain

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodePayload(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(pngHeader)

	t.Run("旧 API の試着ペイロードを読み込めること", func(t *testing.T) {
		raw := json.RawMessage(`{
			"topMaterial": "` + encoded + `",
			"bottomMaterial": "` + encoded + `",
			"borderMaterial": null,
			"outfit": "Lehenga Choli",
			"neckType": "Boat Neck",
			"wearingStyle": "Gujarati Dupatta Drape",
			"addAccessories": true
		}`)
		p, err := DecodePayload(ActionCompositeTryOn, raw)
		if err != nil {
			t.Fatalf("DecodePayload() error = %v", err)
		}
		tp, ok := p.(TryOnPayload)
		if !ok {
			t.Fatalf("type = %T", p)
		}
		if err := tp.Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
		want := StyleOptions{OutfitType: "Lehenga Choli", Neckline: "Boat Neck", WearingStyle: "Gujarati Dupatta Drape", Accessories: true}
		if diff := cmp.Diff(want, tp.Style); diff != "" {
			t.Errorf("style mismatch (-want +got):\n%s", diff)
		}
		if len(tp.ReferenceImages()) != 2 || tp.Border != nil {
			t.Errorf("images = %d, border = %v", len(tp.ReferenceImages()), tp.Border)
		}
	})

	t.Run("空のボディはゼロ値になること", func(t *testing.T) {
		for _, raw := range []json.RawMessage{nil, json.RawMessage("null"), json.RawMessage("  ")} {
			p, err := DecodePayload(ActionTrendForecast, raw)
			if err != nil {
				t.Fatalf("DecodePayload(%q) error = %v", raw, err)
			}
			if _, ok := p.(TrendForecastPayload); !ok {
				t.Errorf("type = %T", p)
			}
		}
	})

	t.Run("不正な JSON はエラー", func(t *testing.T) {
		if _, err := DecodePayload(ActionPatternImage, json.RawMessage(`{"prompt":`)); err == nil {
			t.Error("エラーが返されませんでした")
		}
	})

	t.Run("旧 API のドキュメント詳細", func(t *testing.T) {
		p, err := DecodePayload(ActionEcommerceCopy, json.RawMessage(`{"details":{"outfit":"Saree","style":"Nivi","fabric":"Silk","pattern_prompt":"paisley"}}`))
		if err != nil {
			t.Fatalf("DecodePayload() error = %v", err)
		}
		ec := p.(EcommerceCopyPayload)
		if ec.Details.PatternPrompt != "paisley" || ec.Validate() != nil {
			t.Errorf("payload = %+v", ec)
		}
	})
}

func TestValidate(t *testing.T) {
	img := &Image{Data: []byte("x")}
	tests := []struct {
		name    string
		payload Payload
		wantErr bool
	}{
		{"柄: プロンプトあり", PatternImagePayload{Prompt: "paisley"}, false},
		{"柄: 空白のみ", PatternImagePayload{Prompt: " \t"}, true},
		{"試着: 必須項目なし", TryOnPayload{}, true},
		{"試着: main のみで衣装なし", TryOnPayload{Main: img}, true},
		{"試着: 必須項目あり", TryOnPayload{Main: img, Style: StyleOptions{OutfitType: "Sherwani", Neckline: "High Neck"}}, false},
		{"再配色: 色指定なし", RecolorPayload{Pattern: img}, true},
		{"サステナブル: Auto", SustainabilityPayload{FabricType: "AUTO"}, true},
		{"サステナブル: Silk", SustainabilityPayload{FabricType: "Silk"}, false},
		{"テックパック: 画像なし", TechPackPayload{}, true},
		{"プロンプト案", PromptIdeasPayload{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.payload.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValue(t *testing.T) {
	p := &PatternImagePayload{Prompt: "x"}
	if _, ok := Value(p).(PatternImagePayload); !ok {
		t.Errorf("Value(ptr) = %T", Value(p))
	}
	var nilPtr *PatternImagePayload
	if Value(nilPtr) != nil {
		t.Error("Value(nil ptr) != nil")
	}
}

func TestStyleHelpers(t *testing.T) {
	if IsConcreteFabric("auto") || IsConcreteFabric(" ") || !IsConcreteFabric("Silk") {
		t.Error("IsConcreteFabric の判定が不正です")
	}
	if IsCustomWearingStyle("Standard Kameez") || !IsCustomWearingStyle("Sharara Style") {
		t.Error("IsCustomWearingStyle の判定が不正です")
	}
	if got := CameraViewLabel("Front"); got != "Front view" {
		t.Errorf("CameraViewLabel(Front) = %q", got)
	}
	if got := CameraViewLabel(""); got != DefaultCameraView {
		t.Errorf("CameraViewLabel(\"\") = %q", got)
	}
}
