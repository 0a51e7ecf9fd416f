package tghtml

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// renderContext is inherited top-down during the walk. insideQuote holds
// inside a blockquote and all its descendants, verbatim inside pre and code.
type renderContext struct {
	insideQuote bool
	verbatim    bool
}

type attributes []html.Attribute

// Get returns the first value of the named attribute, matching the parser's
// duplicate resolution order.
func (attrs attributes) Get(key string) (string, bool) {
	for _, attr := range attrs {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// URL prefixes passed through href attributes unchanged. Anything else gets
// the secure default prepended; the check is textual, the rest of the URL is
// not validated.
var urlSchemes = []string{"http://", "https://", "tg://"}

// RewriteURL normalizes an href value for the target dialect.
func RewriteURL(href string) string {
	href = strings.TrimSpace(href)
	for _, scheme := range urlSchemes {
		if strings.HasPrefix(href, scheme) {
			return href
		}
	}
	return "https://" + href
}

// rewrite parses input and assembles the converted output bottom-up. It
// never returns partial output: a parse error or a panic during the walk
// surfaces as an error and the caller falls back to plain-text escaping.
func rewrite(input string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("rewrite: %v", r)
		}
	}()

	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(input), context)
	if err != nil {
		return "", errors.Wrap(err, "parse")
	}

	var root assembler
	for _, n := range nodes {
		renderNode(&root, n, renderContext{})
	}

	return strings.Trim(capNewlines(root.String()), " \t\n"), nil
}

func renderNode(a *assembler, n *html.Node, ctx renderContext) {
	switch n.Type {
	case html.TextNode:
		renderText(a, n.Data, ctx)
	case html.ElementNode:
		renderElement(a, n, ctx)
	case html.CommentNode, html.DoctypeNode:
		// dropped
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			renderNode(a, c, ctx)
		}
	}
}

// angleStripper removes bracket characters the tokenizer left in text, e.g.
// bare runs like "<1mb>" that never formed a tag. The interior text stays.
var angleStripper = strings.NewReplacer("<", "", ">", "")

func renderText(a *assembler, text string, ctx renderContext) {
	switch {
	case ctx.verbatim:
		a.raw(Escape(text))

	case ctx.insideQuote:
		if strings.TrimSpace(text) == "" {
			if strings.ContainsAny(text, "\n\r") {
				a.newline()
			} else {
				a.space()
			}
			return
		}
		a.text(Escape(text))

	default:
		if strings.TrimSpace(text) == "" {
			// Formatting whitespace between blocks contributes nothing; a
			// plain run between inline nodes keeps a single spacer.
			if !strings.ContainsAny(text, "\n\r") {
				a.space()
			}
			return
		}
		a.text(flowText(Escape(angleStripper.Replace(text))))
	}
}

func renderElement(a *assembler, n *html.Node, ctx renderContext) {
	name := strings.ToLower(n.Data)
	rule := classify(name, attributes(n.Attr))

	switch rule.action {
	case actionLineBreak:
		a.newline()

	case actionKeep:
		renderKept(a, n, rule, ctx)

	case actionHeading:
		if content := strings.TrimSpace(renderChildren(n, ctx)); content != "" {
			a.sep(sepBlock)
			if rule.underline {
				a.text("<b><u>" + content + "</u></b>")
			} else {
				a.text("<b>" + content + "</b>")
			}
			a.sep(sepBlock)
		}

	case actionList:
		renderList(a, n, ctx)

	case actionListItem:
		renderItem(a, n, ctx)

	default:
		// Dissolved elements separate themselves from both neighbors; the
		// assembler merges whatever the adjacent sibling contributed.
		a.sep(rule.sep)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			renderNode(a, c, ctx)
		}
		a.sep(rule.sep)
	}
}

func renderKept(a *assembler, n *html.Node, rule tagRule, ctx renderContext) {
	childCtx := ctx
	switch rule.rename {
	case "blockquote":
		childCtx.insideQuote = true
	case "pre", "code":
		childCtx.verbatim = true
	}

	content := renderChildren(n, childCtx)
	if rule.rename == "blockquote" {
		content = quoteLines(content)
	}
	if strings.TrimSpace(content) == "" {
		return
	}

	a.sep(rule.sep)
	a.text(openTag(rule.rename, attributes(n.Attr), rule.attrs) + content + "</" + rule.rename + ">")
	a.sep(rule.sep)
}

// Bullet is the marker rendered before each list item once list structure is
// flattened to line-separated text.
const Bullet = "• "

func renderList(a *assembler, n *html.Node, ctx renderContext) {
	a.sep(sepLine)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && strings.ToLower(c.Data) == "li" {
			renderItem(a, c, ctx)
			continue
		}
		renderNode(a, c, ctx)
	}
	a.sep(sepBlock)
}

func renderItem(a *assembler, n *html.Node, ctx renderContext) {
	if line := strings.TrimSpace(renderChildren(n, ctx)); line != "" {
		a.text(Bullet + line)
		a.sep(sepLine)
	}
}

func renderChildren(n *html.Node, ctx renderContext) string {
	var a assembler
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNode(&a, c, ctx)
	}
	return a.String()
}

// openTag serializes the opening tag with its surviving attributes. href
// values are scheme-normalized and the boolean expandable attribute is
// re-serialized with an explicit empty value.
func openTag(name string, attrs attributes, allowed []string) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	for _, key := range allowed {
		val, ok := attrs.Get(key)
		if !ok {
			continue
		}
		switch key {
		case "href":
			val = RewriteURL(val)
		case "expandable":
			val = ""
		}
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteString(`="`)
		b.WriteString(Escape(val))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	return b.String()
}
