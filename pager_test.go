package tghtml

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestPager_OnePage(t *testing.T) {
	pages := Pager{PageSize: 10, MaxPages: 1}.Split("Hello, Mark. How do you do?")
	assert.Equal(t, []string{"Hello,"}, pages)
}

func TestPager_ManyPages(t *testing.T) {
	pages := Pager{PageSize: 10}.Split("Hello, Mark. How do you do?")
	assert.Equal(t, []string{"Hello,", "Mark. How", "do you do?"}, pages)
}

func TestPager_LongWord(t *testing.T) {
	pages := Pager{PageSize: 3}.Split("abcdefgh")
	assert.Equal(t, []string{"abc", "def", "gh"}, pages)
}

func TestPager_Emojis(t *testing.T) {
	pages := Pager{PageSize: 3}.Split("😭👌🎉😞😘😔")
	assert.Equal(t, []string{"😭👌🎉", "😞😘😔"}, pages)
}

func TestPager_PunctuationAtBoundary(t *testing.T) {
	pages := Pager{PageSize: 5, MaxPages: 0}.Split("abcde.fg")
	assert.Equal(t, []string{"abcde", ".fg"}, pages)
	for _, page := range pages {
		assert.LessOrEqual(t, utf8.RuneCountInString(page), 5)
	}
}

func TestPager_Fits(t *testing.T) {
	assert.Equal(t, []string{"short"}, Pager{}.Split("short"))
	assert.Empty(t, Pager{}.Split(""))
}
