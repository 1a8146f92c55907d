package main

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sgwebsitebuilder.com/web/internal/nav"
	"sgwebsitebuilder.com/web/public"
)

const (
	defaultBuildDir         = "dist"
	defaultBuildConcurrency = 8
	notFoundFile            = "404.html"
)

func newBuildCmd(envFile *string) *cobra.Command {
	var (
		out         string
		concurrency int
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Pre-render every route into a static directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := bootstrap(*envFile)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			a, cleanup, err := newApp(cmd.Context(), cfg, logger)
			defer cleanup()
			if err != nil {
				return err
			}
			n, err := buildSite(cmd.Context(), a, out, concurrency)
			if err != nil {
				return err
			}
			logger.Info("site built", zap.String("out", out), zap.Int("pages", n))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", defaultBuildDir, "output directory, replaced on every build")
	cmd.Flags().IntVar(&concurrency, "concurrency", defaultBuildConcurrency, "pages rendered at once")
	return cmd
}

// buildSite renders every page through the router into outDir, as
// <route>/index.html, plus 404.html and the static assets. It returns the
// number of pages written.
func buildSite(ctx context.Context, a *app, outDir string, concurrency int) (int, error) {
	handler, err := a.routes()
	if err != nil {
		return 0, err
	}
	routes, err := siteRoutes(ctx, a.content)
	if err != nil {
		return 0, err
	}

	if err := os.RemoveAll(outDir); err != nil {
		return 0, fmt.Errorf("clean %s: %w", outDir, err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, fmt.Errorf("create %s: %w", outDir, err)
	}

	if concurrency <= 0 {
		concurrency = defaultBuildConcurrency
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, route := range routes {
		route := route
		g.Go(func() error {
			return writePage(gctx, handler, route, http.StatusOK, filepath.Join(outDir, pageFile(route)))
		})
	}
	g.Go(func() error {
		return writePage(gctx, handler, "/__not-found", http.StatusNotFound, filepath.Join(outDir, notFoundFile))
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	static, err := public.StaticFS()
	if err != nil {
		return 0, err
	}
	if err := copyFS(static, filepath.Join(outDir, "assets")); err != nil {
		return 0, fmt.Errorf("copy assets: %w", err)
	}
	return len(routes) + 1, nil
}

// siteRoutes lists the static pages followed by every post and project.
func siteRoutes(ctx context.Context, content contentSource) ([]string, error) {
	routes := []string{"/", nav.ServicesRoot.Path}
	for _, it := range nav.Services {
		routes = append(routes, it.Path)
	}
	for _, it := range nav.Main {
		routes = append(routes, it.Path)
	}
	routes = append(routes, nav.Contact.Path)

	posts, err := content.ListBlogPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	for _, p := range posts {
		routes = append(routes, "/blog/"+p.Slug.Current)
	}
	projects, err := content.ListWorkProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list work projects: %w", err)
	}
	for _, p := range projects {
		routes = append(routes, "/work/"+p.Slug.Current)
	}
	return routes, nil
}

func writePage(ctx context.Context, h http.Handler, route string, want int, dest string) error {
	req := httptest.NewRequest(http.MethodGet, route, nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != want {
		return fmt.Errorf("render %s: status %d, want %d", route, rec.Code, want)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dest, rec.Body.Bytes(), 0o644)
}

// pageFile maps a route to its file below the output root.
func pageFile(route string) string {
	route = strings.Trim(path.Clean(route), "/")
	if route == "" {
		return "index.html"
	}
	return filepath.Join(filepath.FromSlash(route), "index.html")
}

func copyFS(fsys fs.FS, dest string) error {
	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dest, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}
