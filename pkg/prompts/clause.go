package prompts

import "strings"

// clause は (述語, 指示文) の組です。テーブルの宣言順に評価され、述語が真のものだけが連結されます。
// applies が nil の指示文は常に含まれます。
type clause[T any] struct {
	name    string
	applies func(T) bool
	render  func(T) string
}

type clauseTable[T any] []clause[T]

// appendTo は base に適用される指示文を宣言順に追記します。
func (t clauseTable[T]) appendTo(sb *strings.Builder, in T) {
	for _, c := range t {
		if c.applies != nil && !c.applies(in) {
			continue
		}
		sb.WriteString(c.render(in))
	}
}

// names は適用される指示文の名前を宣言順に返します。テスト用です。
func (t clauseTable[T]) names(in T) []string {
	var out []string
	for _, c := range t {
		if c.applies == nil || c.applies(in) {
			out = append(out, c.name)
		}
	}
	return out
}
