package richtext

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"sgwebsitebuilder.com/web/internal/imageurl"
)

const sampleContent = `[
  {"_type":"block","_key":"h","style":"h2","children":[{"_type":"span","text":"Why speed matters"}],"markDefs":[]},
  {"_type":"block","_key":"p1","style":"normal","children":[
    {"_type":"span","text":"Fast sites ","marks":[]},
    {"_type":"span","text":"convert","marks":["strong"]},
    {"_type":"span","text":" better. ","marks":[]},
    {"_type":"span","text":"Read more","marks":["lnk"]}
  ],"markDefs":[{"_key":"lnk","_type":"link","href":"https://example.com/speed"}]},
  {"_type":"block","_key":"l1","style":"normal","listItem":"bullet","level":1,"children":[{"_type":"span","text":"Compress images"}]},
  {"_type":"block","_key":"l2","style":"normal","listItem":"bullet","level":2,"children":[{"_type":"span","text":"Use WebP"}]},
  {"_type":"block","_key":"l3","style":"normal","listItem":"bullet","level":1,"children":[{"_type":"span","text":"Cache assets"}]},
  {"_type":"block","_key":"n1","style":"normal","listItem":"number","level":1,"children":[{"_type":"span","text":"Measure"}]},
  {"_type":"block","_key":"q","style":"blockquote","children":[{"_type":"span","text":"Speed is a feature."}]},
  {"_type":"image","_key":"img","asset":{"_ref":"image-abc-1600x900-jpg"},"alt":"Dashboard","caption":"Lighthouse report"},
  {"_type":"code","_key":"c","language":"go","code":"package main\n\nfunc main() {}\n","filename":"main.go"},
  {"_type":"callToAction","_key":"cta","label":"Talk to us"}
]`

func decodeSample(t *testing.T) Blocks {
	t.Helper()
	var blocks Blocks
	require.NoError(t, json.Unmarshal([]byte(sampleContent), &blocks))
	return blocks
}

func TestBlocksUnmarshalVariants(t *testing.T) {
	t.Parallel()

	blocks := decodeSample(t)
	require.Len(t, blocks, 10)

	h, ok := blocks[0].(Heading)
	require.True(t, ok)
	require.Equal(t, 2, h.Level)

	p, ok := blocks[1].(Paragraph)
	require.True(t, ok)
	require.Len(t, p.Spans, 4)
	require.Equal(t, []string{"strong"}, p.Spans[1].Marks)
	require.Equal(t, "https://example.com/speed", p.MarkDefs[0].Href)

	li, ok := blocks[3].(ListItem)
	require.True(t, ok)
	require.Equal(t, ListBullet, li.Kind)
	require.Equal(t, 2, li.Level)

	num, ok := blocks[5].(ListItem)
	require.True(t, ok)
	require.Equal(t, ListNumber, num.Kind)

	_, ok = blocks[6].(Quote)
	require.True(t, ok)

	img, ok := blocks[7].(Image)
	require.True(t, ok)
	require.Equal(t, "image-abc-1600x900-jpg", img.Source.Asset.Ref)
	require.Equal(t, "Dashboard", img.Source.Alt)

	code, ok := blocks[8].(Code)
	require.True(t, ok)
	require.Equal(t, "go", code.Language)

	unknown, ok := blocks[9].(Unknown)
	require.True(t, ok)
	require.Equal(t, "callToAction", unknown.Type)
	require.Contains(t, string(unknown.Raw), "Talk to us")
}

func TestBlocksUnmarshalNull(t *testing.T) {
	t.Parallel()

	var blocks Blocks
	require.NoError(t, json.Unmarshal([]byte(`null`), &blocks))
	require.Nil(t, blocks)
	require.Error(t, json.Unmarshal([]byte(`{"_type":"block"}`), &blocks))
}

func paragraph(text string) Paragraph {
	return Paragraph{Text: Text{Spans: []Span{{Text: text}}}}
}

func TestExcerptExplicitWins(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 300)
	require.Equal(t, long, Excerpt(long, Blocks{paragraph("ignored")}, GridExcerptLength))
	require.Equal(t, "Short", Excerpt("Short", nil, GridExcerptLength))
}

func TestExcerptTruncatesFirstParagraph(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("a", 200)
	blocks := Blocks{
		Heading{Level: 2, Text: Text{Spans: []Span{{Text: "Heading text is skipped"}}}},
		Paragraph{Text: Text{Spans: []Span{{Text: text[:100]}, {Text: text[100:]}}}},
		paragraph("second paragraph"),
	}
	got := Excerpt("", blocks, GridExcerptLength)
	require.Equal(t, strings.Repeat("a", 120)+"...", got)

	featured := Excerpt("", blocks, FeaturedExcerptLength)
	require.Equal(t, strings.Repeat("a", 150)+"...", featured)
}

func TestExcerptAtThresholdIsUnchanged(t *testing.T) {
	t.Parallel()

	exact := strings.Repeat("b", 120)
	require.Equal(t, exact, Excerpt("", Blocks{paragraph(exact)}, GridExcerptLength))
	require.Equal(t, "tiny", Excerpt("", Blocks{paragraph("tiny")}, GridExcerptLength))
}

func TestExcerptWithoutParagraph(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", Excerpt("", nil, GridExcerptLength))
	require.Equal(t, "", Excerpt("", Blocks{}, GridExcerptLength))
	require.Equal(t, "", Excerpt("", Blocks{Code{Code: "x := 1"}, Quote{Text: Text{Spans: []Span{{Text: "q"}}}}}, GridExcerptLength))
	require.Equal(t, "", Excerpt("", Blocks{ListItem{Kind: ListBullet, Level: 1, Text: Text{Spans: []Span{{Text: "item"}}}}}, GridExcerptLength))
}

func TestTruncateCountsCharacters(t *testing.T) {
	t.Parallel()

	require.Equal(t, "héllo...", Truncate("héllo wörld", 5))
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	blocks := decodeSample(t)
	plain := blocks.PlainText()
	require.True(t, strings.HasPrefix(plain, "Why speed matters\n\nFast sites convert better. Read more"))
	require.NotContains(t, plain, "package main")
}

func TestRendererHTML(t *testing.T) {
	t.Parallel()

	r := NewRenderer(imageurl.NewBuilder("m2vcpr15", "production"))
	out := string(r.HTML(decodeSample(t)))

	require.Contains(t, out, "<h2>Why speed matters</h2>")
	require.Contains(t, out, "<strong>convert</strong>")
	require.Contains(t, out, `href="https://example.com/speed"`)
	require.Contains(t, out, "nofollow")
	require.Contains(t, out, "<ul><li>Compress images<ul><li>Use WebP</li></ul></li><li>Cache assets</li></ul>")
	require.Contains(t, out, "<ol><li>Measure</li></ol>")
	require.Contains(t, out, "<blockquote>Speed is a feature.</blockquote>")
	require.Contains(t, out, "https://cdn.sanity.io/images/m2vcpr15/production/abc-1600x900.jpg")
	require.Contains(t, out, "<figcaption>Lighthouse report</figcaption>")
	require.Contains(t, out, `class="chroma"`)
	require.Contains(t, out, "main.go")
	require.NotContains(t, out, "Talk to us")
}

func TestRendererSanitizesSpanText(t *testing.T) {
	t.Parallel()

	r := NewRenderer(nil)
	out := string(r.HTML(Blocks{
		paragraph(`<script>alert(1)</script>`),
		Paragraph{Text: Text{
			Spans:    []Span{{Text: "click", Marks: []string{"bad"}}},
			MarkDefs: []MarkDef{{Key: "bad", Type: "link", Href: "javascript:alert(1)"}},
		}},
	}))
	require.NotContains(t, out, "<script>")
	require.NotContains(t, out, "javascript:")
	require.Contains(t, out, "click")
}

func TestRendererSkipsUnresolvableImages(t *testing.T) {
	t.Parallel()

	r := NewRenderer(nil)
	out := string(r.HTML(Blocks{Image{Source: imageurl.Source{Asset: imageurl.Asset{Ref: "image-abc-10x10-png"}}}}))
	require.Empty(t, out)
}

func TestRendererMarkdown(t *testing.T) {
	t.Parallel()

	r := NewRenderer(nil)
	out := string(r.Markdown("A **fast** storefront.\n\n- Stripe checkout\n- Inventory sync"))
	require.Contains(t, out, "<strong>fast</strong>")
	require.Contains(t, out, "<li>Stripe checkout</li>")
	require.Empty(t, string(r.Markdown("   ")))
}

func TestRendererCodeCSS(t *testing.T) {
	t.Parallel()

	css, err := NewRenderer(nil).CodeCSS()
	require.NoError(t, err)
	require.Contains(t, css, ".chroma")
}
