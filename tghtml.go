// Package tghtml converts arbitrary, possibly malformed HTML into the
// restricted tag set accepted by the Telegram Bot API message renderer.
//
// The input is typically produced by a language model and may contain any
// markup at all. Tags with a Telegram equivalent are rewritten, structural
// tags (paragraphs, divisions, headings, lists) are dissolved into plain
// text with sensible spacing, and everything else is dropped while its text
// content is kept.
package tghtml

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Transform rewrites html into Telegram-ready HTML. It is total: it never
// returns an error. Plain text input is escaped as is, and any parse or
// rewrite failure degrades the whole call to escaped plain text rather than
// returning partial output.
func Transform(html string) string {
	if !strings.Contains(html, "<") {
		// No tag can start without '<'.
		return Escape(html)
	}

	out, err := rewrite(html)
	if err != nil {
		logrus.WithField("service", "tghtml").Warnf("degrading to plain text: %s", err)
		return Escape(html)
	}

	return out
}
