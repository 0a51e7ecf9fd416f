package tghtml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_flowText(t *testing.T) {
	assert.Equal(t, "a b", flowText("a \t\n b"))
	assert.Equal(t, " ", flowText("\n\n"))
	assert.Equal(t, " lead and trail ", flowText("  lead \r\n and  trail\t"))
}

func Test_quoteLines(t *testing.T) {
	assert.Equal(t, "a b\n\nc", quoteLines("  a   b  \n\n\n\nc\n"))
	assert.Equal(t, "one\ntwo", quoteLines("one\r\ntwo"))
	assert.Equal(t, "", quoteLines("\n \n\t\n"))
}

func Test_capNewlines(t *testing.T) {
	assert.Equal(t, "a\n\nb", capNewlines("a\n\n\n\nb"))
	assert.Equal(t, "a\n\nb", capNewlines("a\n\nb"))
	assert.Equal(t, "a\nb", capNewlines("a\nb"))
}
