package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildActiveState(t *testing.T) {
	t.Parallel()

	items := Build(Main, "/work/lumen-dental")
	require.Len(t, items, len(Main))
	for _, it := range items {
		require.Equal(t, it.Href == "/work", it.Active, it.Href)
	}

	home := Build(FooterPages, "")
	require.True(t, home[0].Active)
	require.False(t, home[1].Active)

	require.False(t, IsActive(Item{Path: "/blog"}, "/blogger"))
	require.True(t, IsActive(ServicesRoot, "/services/seo"))
}

func TestBreadcrumbs(t *testing.T) {
	t.Parallel()

	require.Equal(t, []Crumb{{Href: "/", Label: "Home", Active: true}}, Breadcrumbs("/", ""))

	crumbs := Breadcrumbs("/services/business-web-design", "")
	require.Equal(t, []Crumb{
		{Href: "/", Label: "Home"},
		{Href: "/services", Label: "Services"},
		{Href: "/services/business-web-design", Label: "Business Web Design", Active: true},
	}, crumbs)

	crumbs = Breadcrumbs("/blog/choosing-a-cms", "Choosing a CMS When You Are Not a Developer")
	require.Equal(t, "Blog", crumbs[1].Label)
	require.Equal(t, "Choosing a CMS When You Are Not a Developer", crumbs[2].Label)

	crumbs = Breadcrumbs("/work/studio-mori", "")
	require.Equal(t, "Studio Mori", crumbs[2].Label)
}
