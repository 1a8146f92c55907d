package richtext

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/alecthomas/chroma"
	chromahtml "github.com/alecthomas/chroma/formatters/html"
	"github.com/alecthomas/chroma/lexers"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"sgwebsitebuilder.com/web/internal/imageurl"
)

const (
	inlineImageWidth = 1200
	codeTabWidth     = 4
)

// Renderer converts blocks and markdown into sanitized HTML.
type Renderer struct {
	images    *imageurl.Builder
	policy    *bluemonday.Policy
	formatter *chromahtml.Formatter
	markdown  goldmark.Markdown
}

// NewRenderer constructs a Renderer. images resolves inline image blocks and may be nil.
func NewRenderer(images *imageurl.Builder) *Renderer {
	return &Renderer{
		images:    images,
		policy:    newContentPolicy(),
		formatter: chromahtml.New(chromahtml.WithClasses(true), chromahtml.TabWidth(codeTabWidth)),
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

func newContentPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption")
	policy.AllowAttrs("class").OnElements("figure", "figcaption", "p", "span", "pre", "code", "blockquote", "ul", "ol", "li", "div")
	policy.AllowAttrs("loading").OnElements("img")
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return policy
}

// HTML renders blocks in order. Consecutive list items are grouped into
// nested ul/ol elements. Unknown blocks are skipped.
func (r *Renderer) HTML(blocks Blocks) template.HTML {
	var b strings.Builder
	var lists listStack
	for _, block := range blocks {
		item, isItem := block.(ListItem)
		if !isItem {
			lists.closeAll(&b)
		}
		switch v := block.(type) {
		case Paragraph:
			b.WriteString("<p>")
			writeText(&b, v.Text)
			b.WriteString("</p>")
		case Heading:
			fmt.Fprintf(&b, "<h%d>", v.Level)
			writeText(&b, v.Text)
			fmt.Fprintf(&b, "</h%d>", v.Level)
		case Quote:
			b.WriteString("<blockquote>")
			writeText(&b, v.Text)
			b.WriteString("</blockquote>")
		case ListItem:
			lists.push(&b, item)
			writeText(&b, v.Text)
		case Image:
			r.writeImage(&b, v)
		case Code:
			r.writeCode(&b, v)
		}
	}
	lists.closeAll(&b)
	return template.HTML(r.policy.Sanitize(b.String()))
}

// Markdown renders markdown source to sanitized HTML. Plain text renders as a paragraph.
func (r *Renderer) Markdown(src string) template.HTML {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<p>" + html.EscapeString(src) + "</p>")
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes()))
}

// CodeCSS returns the stylesheet for highlighted code blocks.
func (r *Renderer) CodeCSS() (string, error) {
	var buf bytes.Buffer
	if err := r.formatter.WriteCSS(&buf, codeStyle); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Renderer) writeImage(b *strings.Builder, img Image) {
	src, err := r.images.URL(img.Source, imageurl.Options{Width: inlineImageWidth})
	if err != nil {
		return
	}
	b.WriteString(`<figure class="rich-figure">`)
	fmt.Fprintf(b, `<img src="%s" alt="%s" loading="lazy">`, html.EscapeString(src), html.EscapeString(img.Source.Alt))
	if img.Caption != "" {
		b.WriteString("<figcaption>" + html.EscapeString(img.Caption) + "</figcaption>")
	}
	b.WriteString("</figure>")
}

func (r *Renderer) writeCode(b *strings.Builder, c Code) {
	lexer := lexers.Get(c.Language)
	if lexer == nil {
		lexer = lexers.Analyse(c.Code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	b.WriteString(`<div class="rich-code">`)
	if c.Filename != "" {
		b.WriteString(`<p class="rich-code-filename">` + html.EscapeString(c.Filename) + "</p>")
	}
	it, err := lexer.Tokenise(nil, c.Code)
	if err == nil {
		var buf bytes.Buffer
		if err = r.formatter.Format(&buf, codeStyle, it); err == nil {
			b.Write(buf.Bytes())
		}
	}
	if err != nil {
		b.WriteString("<pre><code>" + html.EscapeString(c.Code) + "</code></pre>")
	}
	b.WriteString("</div>")
}

func writeText(b *strings.Builder, t Text) {
	links := make(map[string]string, len(t.MarkDefs))
	for _, def := range t.MarkDefs {
		if def.Type == "link" && def.Href != "" {
			links[def.Key] = def.Href
		}
	}
	for _, span := range t.Spans {
		var closers []string
		for _, mark := range span.Marks {
			open, closeTag, ok := markTags(mark, links)
			if !ok {
				continue
			}
			b.WriteString(open)
			closers = append(closers, closeTag)
		}
		b.WriteString(strings.ReplaceAll(html.EscapeString(span.Text), "\n", "<br>"))
		for i := len(closers) - 1; i >= 0; i-- {
			b.WriteString(closers[i])
		}
	}
}

func markTags(mark string, links map[string]string) (string, string, bool) {
	switch mark {
	case "strong":
		return "<strong>", "</strong>", true
	case "em":
		return "<em>", "</em>", true
	case "code":
		return "<code>", "</code>", true
	case "underline":
		return "<u>", "</u>", true
	case "strike-through":
		return "<s>", "</s>", true
	}
	if href, ok := links[mark]; ok {
		return `<a href="` + html.EscapeString(href) + `">`, "</a>", true
	}
	return "", "", false
}

// listStack tracks open lists while rendering consecutive list items. Each
// open list always has one open li.
type listStack []ListKind

func (s *listStack) push(b *strings.Builder, item ListItem) {
	for len(*s) > item.Level {
		s.pop(b)
	}
	if len(*s) == item.Level && (*s)[len(*s)-1] != item.Kind {
		s.pop(b)
	}
	if len(*s) == item.Level {
		b.WriteString("</li><li>")
		return
	}
	for len(*s) < item.Level {
		b.WriteString("<" + listTag(item.Kind) + "><li>")
		*s = append(*s, item.Kind)
	}
}

func (s *listStack) pop(b *strings.Builder) {
	top := (*s)[len(*s)-1]
	b.WriteString("</li></" + listTag(top) + ">")
	*s = (*s)[:len(*s)-1]
}

func (s *listStack) closeAll(b *strings.Builder) {
	for len(*s) > 0 {
		s.pop(b)
	}
}

func listTag(kind ListKind) string {
	if kind == ListNumber {
		return "ol"
	}
	return "ul"
}
