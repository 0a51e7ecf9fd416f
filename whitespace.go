package tghtml

import (
	"regexp"
	"strings"
)

var (
	spaceRun   = regexp.MustCompile(`\s+`)
	hspaceRun  = regexp.MustCompile(`[ \t]+`)
	newlineRun = regexp.MustCompile(`\n{3,}`)
)

// flowText collapses every maximal whitespace run, newlines included, to a
// single space.
func flowText(s string) string {
	return spaceRun.ReplaceAllString(s, " ")
}

// quoteLines tightens the rendered body of a blockquote: horizontal padding
// is trimmed per line, inner runs collapse to one space, blank-line runs cap
// at one, and the quote neither starts nor ends with a blank line.
func quoteLines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(hspaceRun.ReplaceAllString(line, " "))
	}

	return strings.Trim(capNewlines(strings.Join(lines, "\n")), "\n")
}

// capNewlines enforces the two-newline ceiling over the whole output.
// Separators from different nodes can combine past the limit, so this runs
// once more after all per-node assembly.
func capNewlines(s string) string {
	return newlineRun.ReplaceAllString(s, "\n\n")
}
