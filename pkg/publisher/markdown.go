package publisher

import (
	"fmt"
	"strings"

	"github.com/shouni/go-fashion-kit/pkg/domain"
)

const defaultTitle = "Untitled Design"

// documentTitle はテックパック、商品コピー、スタイル選択の順に見つかったものを表題にします。
func documentTitle(s domain.Session) string {
	switch {
	case s.TechPack != nil && strings.TrimSpace(s.TechPack.OutfitName) != "":
		return s.TechPack.OutfitName
	case s.EcommerceCopy != nil && strings.TrimSpace(s.EcommerceCopy.Title) != "":
		return s.EcommerceCopy.Title
	case domain.HasValue(s.Style.OutfitType):
		return s.Style.OutfitType
	default:
		return defaultTitle
	}
}

// buildMarkdown はセッションの成果物を Markdown 文書にまとめます。
// images は保存済み画像の見出しと相対パスです。
func buildMarkdown(s domain.Session, images []savedImage) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", documentTitle(s))

	if s.Prompt != "" {
		fmt.Fprintf(&sb, "> %s\n\n", escapeLine(s.Prompt))
	}

	for _, img := range images {
		fmt.Fprintf(&sb, "## %s\n\n![%s](%s)\n\n", img.label, img.label, img.relPath)
	}

	writeStyle(&sb, s.Style)

	if tp := s.TechPack; tp != nil {
		sb.WriteString("## Tech Pack\n\n")
		if tp.Description != "" {
			fmt.Fprintf(&sb, "%s\n\n", tp.Description)
		}
		if tp.FabricRecommendation != "" {
			fmt.Fprintf(&sb, "**Fabric recommendation:** %s\n\n", tp.FabricRecommendation)
		}
		writePalette(&sb, "### Color Palette", tp.ColorPalette)
		if len(tp.ConstructionNotes) > 0 {
			sb.WriteString("### Construction Notes\n\n")
			for i, note := range tp.ConstructionNotes {
				fmt.Fprintf(&sb, "%d. %s\n", i+1, escapeLine(note))
			}
			sb.WriteString("\n")
		}
	} else {
		writePalette(&sb, "## Color Palette", s.Palette)
	}

	if ec := s.EcommerceCopy; ec != nil {
		sb.WriteString("## Product Listing\n\n")
		fmt.Fprintf(&sb, "### %s\n\n%s\n\n", escapeLine(ec.Title), ec.Description)
		if len(ec.Keywords) > 0 {
			fmt.Fprintf(&sb, "**Keywords:** %s\n\n", strings.Join(ec.Keywords, ", "))
		}
	}

	if len(s.Suggestions) > 0 {
		sb.WriteString("## Sustainable Alternatives\n\n")
		for _, sug := range s.Suggestions {
			fmt.Fprintf(&sb, "- **%s**: %s\n", escapeLine(sug.Name), escapeLine(sug.Reason))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeStyle(sb *strings.Builder, st domain.StyleOptions) {
	rows := [][2]string{
		{"Outfit", st.OutfitType},
		{"Wearing Style", st.WearingStyle},
		{"Neckline", st.Neckline},
		{"Fabric", st.FabricType},
		{"Weave", st.Weave},
		{"Texture", st.Texture},
		{"Scale", st.Scale},
	}
	var filled [][2]string
	for _, r := range rows {
		if domain.HasValue(r[1]) {
			filled = append(filled, r)
		}
	}
	if len(filled) == 0 {
		return
	}
	sb.WriteString("## Specification\n\n| Item | Value |\n| --- | --- |\n")
	for _, r := range filled {
		fmt.Fprintf(sb, "| %s | %s |\n", r[0], escapeCell(r[1]))
	}
	sb.WriteString("\n")
}

func writePalette(sb *strings.Builder, heading string, palette []domain.ColorSwatch) {
	if len(palette) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s\n\n| Name | Hex |\n| --- | --- |\n", heading)
	for _, c := range palette {
		fmt.Fprintf(sb, "| %s | `%s` |\n", escapeCell(c.Name), escapeCell(c.Hex))
	}
	sb.WriteString("\n")
}

func escapeLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(escapeLine(s), "|", `\|`)
}
