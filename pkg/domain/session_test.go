package domain

import "testing"

func TestSession(t *testing.T) {
	t.Run("段階は後戻りしないこと", func(t *testing.T) {
		s := NewSession("s", 1, false).Advance(StageVisualized).Advance(StagePatternReady)
		if s.Stage != StageVisualized {
			t.Errorf("Stage = %s", s.Stage)
		}
	})

	t.Run("利用回数の消費", func(t *testing.T) {
		s := NewSession("s", 1, false)
		if !s.HasCredits() {
			t.Fatal("HasCredits() = false")
		}
		s = s.ConsumeCredit()
		if s.HasCredits() || s.Credits != 0 {
			t.Errorf("credits = %d", s.Credits)
		}
		if s.ConsumeCredit().Credits != 0 {
			t.Error("0 未満になりました")
		}
	})

	t.Run("管理者は無制限", func(t *testing.T) {
		s := NewSession("s", 1, true)
		for range 5 {
			s = s.ConsumeCredit()
		}
		if !s.HasCredits() || s.Credits != UnlimitedCredits {
			t.Errorf("credits = %d", s.Credits)
		}
	})

	t.Run("課金対象のアクション", func(t *testing.T) {
		if !Billable(ActionPatternImage) || !Billable(ActionBorderImage) || Billable(ActionPaletteExtraction) {
			t.Error("Billable の判定が不正です")
		}
	})
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	for _, outfit := range c.Outfits {
		if len(c.WearingStyles[outfit]) == 0 {
			t.Errorf("%s の着こなしがありません", outfit)
		}
	}
}
