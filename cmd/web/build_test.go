package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"sgwebsitebuilder.com/web/internal/testutil"
)

func TestBuildSiteWritesEveryRoute(t *testing.T) {
	a := newTestApp(t)
	out := filepath.Join(t.TempDir(), "dist")
	// Left over from an earlier build; the output dir is replaced.
	require.NoError(t, os.MkdirAll(out, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(out, "stale.html"), []byte("old"), 0o644))

	routes, err := siteRoutes(context.Background(), a.content)
	require.NoError(t, err)

	n, err := buildSite(context.Background(), a, out, 4)
	require.NoError(t, err)
	require.Equal(t, len(routes)+1, n)

	for _, rel := range []string{
		"index.html",
		"services/index.html",
		"services/seo/index.html",
		"pricing/index.html",
		"contact/index.html",
		"blog/index.html",
		"blog/launching-sgwebsitebuilder-2026/index.html",
		"work/tutorly/index.html",
		"404.html",
		"assets/css/site.css",
		"assets/js/site.js",
	} {
		require.FileExists(t, filepath.Join(out, filepath.FromSlash(rel)))
	}
	require.NoFileExists(t, filepath.Join(out, "stale.html"))

	b, err := os.ReadFile(filepath.Join(out, "work", "tutorly", "index.html"))
	require.NoError(t, err)
	doc := testutil.ParseHTML(t, b)
	require.Equal(t, "Tutorly Learning Platform", testutil.Text(doc, "h1"))

	b, err = os.ReadFile(filepath.Join(out, "404.html"))
	require.NoError(t, err)
	require.True(t, strings.Contains(string(b), "Page Not Found"))
}

func TestBuildSiteFailsWhenContentIsDown(t *testing.T) {
	a := newTestApp(t, withContent(faultyContent{}))
	_, err := buildSite(context.Background(), a, filepath.Join(t.TempDir(), "dist"), 2)
	require.ErrorIs(t, err, errUpstream)
}

func TestPageFile(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"/":                "index.html",
		"":                 "index.html",
		"/pricing":         filepath.Join("pricing", "index.html"),
		"/blog/some-post/": filepath.Join("blog", "some-post", "index.html"),
		"/work/../company": filepath.Join("company", "index.html"),
	}
	for route, want := range cases {
		require.Equal(t, want, pageFile(route), route)
	}
}
