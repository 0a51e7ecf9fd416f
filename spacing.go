package tghtml

import (
	"bytes"
	"strings"
)

// Separators dissolved elements leave behind, ordered by strength. Adjacent
// separators merge to the strongest one instead of stacking.
const (
	sepNone  = ""
	sepSpace = " "
	sepLine  = "\n"
	sepBlock = "\n\n"
)

func sepRank(sep string) int {
	switch sep {
	case sepBlock:
		return 3
	case sepLine:
		return 2
	case sepSpace:
		return 1
	}
	return 0
}

// assembler accumulates rendered content left to right. A separator is held
// pending until more content arrives, so siblings of dissolved blocks merge
// their spacing, the output never starts or ends with a separator, and two
// adjacent paragraphs can never produce four newlines.
type assembler struct {
	buf     []byte
	pending string
}

func (a *assembler) text(s string) {
	if s == "" {
		return
	}
	if a.flush() || a.endsWithNewline() {
		s = strings.TrimLeft(s, " \t")
		if s == "" {
			return
		}
	}
	a.buf = append(a.buf, s...)
}

// raw appends without any separator or padding bookkeeping. Preformatted
// regions use it to keep their whitespace exactly as written.
func (a *assembler) raw(s string) {
	a.flush()
	a.buf = append(a.buf, s...)
}

// space requests a single inline spacer between neighboring inline nodes.
func (a *assembler) space() {
	if len(a.buf) == 0 || a.pending != "" || a.endsWithNewline() {
		return
	}
	if a.buf[len(a.buf)-1] == ' ' {
		return
	}
	a.buf = append(a.buf, ' ')
}

// newline writes a literal line break, as left by <br>.
func (a *assembler) newline() {
	a.flush()
	a.buf = bytes.TrimRight(a.buf, " \t")
	a.buf = append(a.buf, '\n')
}

// sep schedules the separator an element leaves after its content.
func (a *assembler) sep(s string) {
	if len(a.buf) == 0 {
		return
	}
	if sepRank(s) > sepRank(a.pending) {
		a.pending = s
	}
}

// flush materializes the pending separator. Separators own the whitespace at
// their boundaries: horizontal padding on either side is absorbed, so a cell
// or block never contributes a doubled space. Reports whether a separator was
// written, in which case following text sheds its leading padding.
func (a *assembler) flush() bool {
	if a.pending == "" {
		return false
	}
	sep := a.pending
	a.pending = ""
	a.buf = bytes.TrimRight(a.buf, " \t")
	a.buf = append(a.buf, sep...)
	return true
}

func (a *assembler) endsWithNewline() bool {
	return len(a.buf) > 0 && a.buf[len(a.buf)-1] == '\n'
}

// String returns the accumulated content. A still-pending separator is
// dropped: nothing follows it.
func (a *assembler) String() string {
	return string(a.buf)
}
