package tghtml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_assembler_MergesAdjacentSeparators(t *testing.T) {
	var a assembler
	a.text("a")
	a.sep(sepBlock)
	a.sep(sepBlock)
	a.text("b")
	assert.Equal(t, "a\n\nb", a.String())
}

func Test_assembler_UpgradesPendingSeparator(t *testing.T) {
	var a assembler
	a.text("a")
	a.sep(sepSpace)
	a.sep(sepLine)
	a.text("b")
	assert.Equal(t, "a\nb", a.String())
}

func Test_assembler_DropsBoundarySeparators(t *testing.T) {
	var a assembler
	a.sep(sepBlock)
	a.text("a")
	a.sep(sepBlock)
	assert.Equal(t, "a", a.String())
}

func Test_assembler_SpaceSeparatorAbsorbsPadding(t *testing.T) {
	var a assembler
	a.text("a ")
	a.sep(sepSpace)
	a.text(" b")
	assert.Equal(t, "a b", a.String())
}

func Test_assembler_TrimsAroundNewlines(t *testing.T) {
	var a assembler
	a.text("a ")
	a.sep(sepLine)
	a.text("  b")
	assert.Equal(t, "a\nb", a.String())
}

func Test_assembler_InlineSpacer(t *testing.T) {
	var a assembler
	a.text("a")
	a.space()
	a.space()
	a.text("b")
	assert.Equal(t, "a b", a.String())

	a = assembler{}
	a.space()
	assert.Equal(t, "", a.String())
}

func Test_assembler_Newline(t *testing.T) {
	var a assembler
	a.text("a \t")
	a.newline()
	a.text("b")
	assert.Equal(t, "a\nb", a.String())
}
