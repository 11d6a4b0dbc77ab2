package prompts

import "strings"

// eraPrompts はデザイン時代ごとのプリセットプロンプトです。
var eraPrompts = map[string]string{
	"mughal":           "An opulent Mughal-era miniature painting style pattern, intricate florals, elephants, and paisley motifs, with gold inlay.",
	"art deco":         "A bold Art Deco geometric pattern, featuring sharp angles, symmetrical sunbursts, and metallic gold lines on a dark background.",
	"victorian":        "A dense Victorian-era pattern with romantic florals, damask elements, and ornate filigree in a rich, dark color palette.",
	"60s psychedelic":  "A vibrant 1960s psychedelic pattern with swirling paisley, abstract waves, and high-contrast, hallucinogenic colors.",
	"japanese ukiyo-e": "A Japanese Ukiyo-e woodblock print style pattern, featuring elegant cranes, serene landscapes, and stylized waves.",
}

// EraPrompt はデザイン時代名に対応するプリセットを返します。"Default" や未登録の名前では ok が false です。
func EraPrompt(era string) (string, bool) {
	p, ok := eraPrompts[strings.ToLower(strings.TrimSpace(era))]
	return p, ok
}
