package tghtml

import "strings"

// escaper covers the four metacharacters the dialect reserves. A single
// Replacer pass keeps the ampersand from re-escaping the entities it
// introduces.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Escape renders s as literal text in the target dialect. Whitespace is
// passed through untouched.
func Escape(s string) string {
	return escaper.Replace(s)
}
