package domain

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  GenerationAction
		ok    bool
	}{
		{"正規名", "pattern-image", ActionPatternImage, true},
		{"前後の空白と大文字", "  Tech-Pack ", ActionTechPack, true},
		{"旧名称", "virtualTryOn", ActionCompositeTryOn, true},
		{"旧名称の小文字", "getsustainablesuggestions", ActionSustainabilitySuggestion, true},
		{"未知の名前", "makeCoffee", "", false},
		{"空文字", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAction(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseAction(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestActionTraits(t *testing.T) {
	if len(AllActions()) != len(actionTraits) {
		t.Fatalf("AllActions() = %d, actionTraits = %d", len(AllActions()), len(actionTraits))
	}
	for _, a := range AllActions() {
		if !a.Valid() {
			t.Errorf("%s が Valid ではありません", a)
		}
		if _, ok := NewPayload(a); !ok {
			t.Errorf("%s のペイロードが定義されていません", a)
		}
		if a.LegacyName() == "" {
			t.Errorf("%s の旧名称がありません", a)
		}
	}

	tests := []struct {
		action   GenerationAction
		modality Modality
		model    ModelClass
	}{
		{ActionPatternImage, ModalityImage, ModelImageSynthesis},
		{ActionCompositeTryOn, ModalityImage, ModelImageEditing},
		{ActionRecolor, ModalityImage, ModelImageEditing},
		{ActionPaletteExtraction, ModalityStructured, ModelText},
		{ActionPromptEnhancement, ModalityText, ModelText},
		{ActionEcommerceCopy, ModalityStructured, ModelText},
	}
	for _, tt := range tests {
		if tt.action.Modality() != tt.modality || tt.action.ModelClass() != tt.model {
			t.Errorf("%s: modality=%v model=%v", tt.action, tt.action.Modality(), tt.action.ModelClass())
		}
	}

	if GenerationAction("unknown").Valid() {
		t.Error("未知のアクションが Valid です")
	}
}
