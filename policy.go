package tghtml

// SpoilerClass is the class value that keeps a <span> alive as a spoiler.
// Spans with any other class dissolve into their text.
const SpoilerClass = "tg-spoiler"

type tagAction int

const (
	actionDissolve tagAction = iota
	actionKeep
	actionHeading
	actionList
	actionListItem
	actionLineBreak
)

// tagRule classifies one tag name. rename is the output tag for actionKeep,
// attrs its attribute allow-list, sep the separator the element leaves
// behind. Classification depends on nothing but the name, except span, which
// classify resolves from its class attribute.
type tagRule struct {
	action    tagAction
	rename    string
	attrs     []string
	sep       string
	underline bool
}

var tagRules = map[string]tagRule{
	"b":      {action: actionKeep, rename: "b"},
	"strong": {action: actionKeep, rename: "b"},
	"i":      {action: actionKeep, rename: "i"},
	"em":     {action: actionKeep, rename: "i"},
	"u":      {action: actionKeep, rename: "u"},
	"ins":    {action: actionKeep, rename: "u"},
	"s":      {action: actionKeep, rename: "s"},
	"strike": {action: actionKeep, rename: "s"},
	"del":    {action: actionKeep, rename: "s"},

	"code": {action: actionKeep, rename: "code", attrs: []string{"class"}},
	"pre":  {action: actionKeep, rename: "pre", attrs: []string{"class"}},

	"a":          {action: actionKeep, rename: "a", attrs: []string{"href"}},
	"tg-emoji":   {action: actionKeep, rename: "tg-emoji", attrs: []string{"emoji-id"}},
	"tg-spoiler": {action: actionKeep, rename: "tg-spoiler"},
	"spoiler":    {action: actionKeep, rename: "tg-spoiler"},

	"blockquote": {action: actionKeep, rename: "blockquote", attrs: []string{"expandable"}, sep: sepLine},

	"br": {action: actionLineBreak},

	"h1": {action: actionHeading, underline: true},
	"h2": {action: actionHeading},
	"h3": {action: actionHeading},
	"h4": {action: actionHeading},
	"h5": {action: actionHeading},
	"h6": {action: actionHeading},

	"ul": {action: actionList},
	"ol": {action: actionList},
	"li": {action: actionListItem},

	"p":          {sep: sepBlock},
	"div":        {sep: sepBlock},
	"section":    {sep: sepBlock},
	"article":    {sep: sepBlock},
	"aside":      {sep: sepBlock},
	"main":       {sep: sepBlock},
	"nav":        {sep: sepBlock},
	"header":     {sep: sepBlock},
	"footer":     {sep: sepBlock},
	"figure":     {sep: sepBlock},
	"figcaption": {sep: sepBlock},
	"details":    {sep: sepBlock},
	"summary":    {sep: sepBlock},
	"hr":         {sep: sepBlock},
	"table":      {sep: sepBlock},

	"tr": {sep: sepLine},
	"td": {sep: sepSpace},
	"th": {sep: sepSpace},

	"dl": {sep: sepBlock},
	"dt": {sep: sepLine},
	"dd": {sep: sepLine},
}

// classify resolves the rule for an element. Unrecognized tags dissolve in
// place without contributing any spacing.
func classify(name string, attrs attributes) tagRule {
	if name == "span" {
		if class, ok := attrs.Get("class"); ok && class == SpoilerClass {
			return tagRule{action: actionKeep, rename: "span", attrs: []string{"class"}}
		}
		return tagRule{}
	}

	return tagRules[name]
}
