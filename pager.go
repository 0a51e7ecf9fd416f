package tghtml

import (
	"strings"

	"golang.org/x/exp/utf8string"
)

// Message size limits imposed by the Telegram Bot API, in characters.
const (
	MaxMessageSize = 4096
	MaxCaptionSize = 1024
)

// Pager splits transformed output into chunks the message API accepts.
// Pages break before whitespace or after sentence punctuation; a single word
// longer than the page is cut hard. PageSize < 1 means MaxMessageSize,
// MaxPages < 1 means no limit.
type Pager struct {
	PageSize int
	MaxPages int
}

func (p Pager) Split(text string) []string {
	pageSize := p.PageSize
	if pageSize < 1 {
		pageSize = MaxMessageSize
	}

	pages := make([]string, 0)
	str := utf8string.NewString(text)
	length := str.RuneCount()
	offset := 0
	for offset < length {
		if p.MaxPages > 0 && len(pages) >= p.MaxPages {
			break
		}
		end := offset + pageSize
		if end >= length {
			pages = appendPage(pages, str.Slice(offset, length))
			break
		}
		nextOffset := end
	search:
		for i := end; i > offset; i-- {
			switch str.At(i) {
			case '\n', ' ', '\t', '\v':
				end, nextOffset = i, i+1
				break search
			case ',', '.', ':', ';':
				if i == end {
					// Keeping the mark would push the page one rune over
					// the limit; cut before it instead.
					end, nextOffset = i, i
					break search
				}
				end, nextOffset = i+1, i+1
				break search
			}
		}
		pages = appendPage(pages, str.Slice(offset, end))
		offset = nextOffset
	}

	return pages
}

func appendPage(pages []string, page string) []string {
	page = strings.Trim(page, " \t\n\v")
	if page == "" {
		return pages
	}
	return append(pages, page)
}
