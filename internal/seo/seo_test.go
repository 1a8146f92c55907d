package seo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMeta(t *testing.T) {
	t.Parallel()

	m := New("SGWebsiteBuilder", "https://sgwebsitebuilder.com/", "/pricing", "Pricing", "")
	require.Equal(t, "Pricing | SGWebsiteBuilder", m.Title)
	require.Equal(t, DefaultDescription, m.Description)
	require.Equal(t, "https://sgwebsitebuilder.com/pricing", m.Canonical)
	require.Equal(t, "website", m.OG.Type)

	home := New("SGWebsiteBuilder", "https://sgwebsitebuilder.com", "/", "", "Custom sites")
	require.Equal(t, "SGWebsiteBuilder", home.Title)
	require.Equal(t, "https://sgwebsitebuilder.com/", home.Canonical)

	article := m.AsArticle().WithImage("https://cdn.example/x.jpg")
	require.Equal(t, "article", article.OG.Type)
	require.Equal(t, "https://cdn.example/x.jpg", article.Twitter.Image)
	require.Equal(t, "website", m.OG.Type)
}

func TestArticleScriptEscapes(t *testing.T) {
	t.Parallel()

	script := string(Script(Article("</script><b>x", "https://s/blog/a", "", "Priya", "2026-01-01")))
	require.NotContains(t, script, "</script>")
	require.True(t, strings.Contains(script, `\u003c/script\u003e`))
	require.Contains(t, script, `"@type":"Person"`)
	require.NotContains(t, JSON(CreativeWork("Shiftly", "", "", "", nil)), "keywords")
}
