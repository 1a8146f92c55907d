package richtext

import (
	"strings"
	"unicode/utf8"
)

// Excerpt thresholds, in characters.
const (
	GridExcerptLength     = 120
	FeaturedExcerptLength = 150
)

const ellipsis = "..."

// PlainText concatenates the span text of t without separators.
func (t Text) PlainText() string {
	var b strings.Builder
	for _, s := range t.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// PlainText joins the plain text of every text-bearing block with blank lines.
func (bs Blocks) PlainText() string {
	parts := make([]string, 0, len(bs))
	for _, block := range bs {
		if t, ok := textOf(block); ok {
			if s := t.PlainText(); s != "" {
				parts = append(parts, s)
			}
		}
	}
	return strings.Join(parts, "\n\n")
}

// FirstParagraph returns the first Paragraph block, if any.
func (bs Blocks) FirstParagraph() (Paragraph, bool) {
	for _, block := range bs {
		if p, ok := block.(Paragraph); ok {
			return p, true
		}
	}
	return Paragraph{}, false
}

// Excerpt derives a short preview. A non-empty explicit excerpt is returned
// unchanged. Otherwise the first paragraph's text is used, cut to limit
// characters with "..." appended when longer than limit.
func Excerpt(explicit string, blocks Blocks, limit int) string {
	if explicit != "" {
		return explicit
	}
	p, ok := blocks.FirstParagraph()
	if !ok {
		return ""
	}
	return Truncate(p.PlainText(), limit)
}

// Truncate cuts s to limit characters and appends "..." when s is longer.
func Truncate(s string, limit int) string {
	if limit < 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + ellipsis
}

func textOf(block Block) (Text, bool) {
	switch b := block.(type) {
	case Paragraph:
		return b.Text, true
	case Heading:
		return b.Text, true
	case ListItem:
		return b.Text, true
	case Quote:
		return b.Text, true
	default:
		return Text{}, false
	}
}
