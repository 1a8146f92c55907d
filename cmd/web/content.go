package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"sgwebsitebuilder.com/web/internal/cms"
	"sgwebsitebuilder.com/web/internal/handlers"
	"sgwebsitebuilder.com/web/internal/observability"
	"sgwebsitebuilder.com/web/internal/widgets"
)

// metaDescriptionLength bounds the derived description of a post page.
const metaDescriptionLength = 160

var workScheme = widgets.YellowScheme

func (a *app) blogList(w http.ResponseWriter, r *http.Request) {
	state := widgets.ParseGridState(r.URL.Query(), handlers.AllowBlogType)
	opt := handlers.PageOptions{Page: "blog", Title: "Blog", Description: handlers.BlogListing.Tagline}

	posts, err := a.content.ListBlogPosts(r.Context())
	if err != nil {
		a.logFetchFault(r, cms.BlogListQuery.Name, err)
		body := handlers.BlogListView{ListingContent: handlers.BlogListing, Unavailable: true}
		a.renderPage(w, r, http.StatusServiceUnavailable, a.newPage(r, opt, body))
		return
	}
	a.renderPage(w, r, http.StatusOK, a.newPage(r, opt, handlers.BuildBlogList(posts, state, a.media)))
}

func (a *app) blogDetail(w http.ResponseWriter, r *http.Request) {
	post, err := a.content.GetBlogPost(r.Context(), chi.URLParam(r, "slug"))
	switch {
	case errors.Is(err, cms.ErrNotFound):
		a.renderNotFound(w, r, handlers.PostNotFound)
		return
	case err != nil:
		a.logFetchFault(r, cms.BlogDetailQuery.Name, err)
		a.renderUnavailable(w, r, handlers.Link{Href: "/blog", Label: "Back to Blog"})
		return
	}

	view := handlers.BuildBlogDetail(post, a.media)
	data := a.newPage(r, handlers.PageOptions{
		Page:        "blog_detail",
		Title:       post.Title,
		Crumb:       post.Title,
		Description: post.Preview(metaDescriptionLength),
	}, view)
	data.Meta = data.Meta.AsArticle()
	if view.Image != "" {
		data.Meta = data.Meta.WithImage(handlers.AbsoluteURL(a.site.URL, view.Image))
	}
	data.AddJSONLD(handlers.BlogArticleLD(a.site.URL, post, view.Image))
	a.renderPage(w, r, http.StatusOK, data)
}

func (a *app) workList(w http.ResponseWriter, r *http.Request) {
	state := widgets.ParseGridState(r.URL.Query(), nil)
	opt := handlers.PageOptions{Page: "work", Title: "Work", Description: handlers.WorkListing.Tagline, Scheme: &workScheme}

	projects, err := a.content.ListWorkProjects(r.Context())
	if err != nil {
		a.logFetchFault(r, cms.WorkListQuery.Name, err)
		body := handlers.WorkListView{ListingContent: handlers.WorkListing, Unavailable: true}
		a.renderPage(w, r, http.StatusServiceUnavailable, a.newPage(r, opt, body))
		return
	}
	a.renderPage(w, r, http.StatusOK, a.newPage(r, opt, handlers.BuildWorkList(projects, state, a.media)))
}

func (a *app) workDetail(w http.ResponseWriter, r *http.Request) {
	project, err := a.content.GetWorkProject(r.Context(), chi.URLParam(r, "slug"))
	switch {
	case errors.Is(err, cms.ErrNotFound):
		a.renderNotFound(w, r, handlers.ProjectNotFound)
		return
	case err != nil:
		a.logFetchFault(r, cms.WorkDetailQuery.Name, err)
		a.renderUnavailable(w, r, handlers.Link{Href: "/work", Label: "Back to Projects"})
		return
	}

	view := handlers.BuildWorkDetail(project, a.media)
	data := a.newPage(r, handlers.PageOptions{
		Page:        "work_detail",
		Title:       project.Title,
		Crumb:       project.Title,
		Description: project.Description,
		Scheme:      &workScheme,
	}, view)
	if view.Image != "" {
		data.Meta = data.Meta.WithImage(handlers.AbsoluteURL(a.site.URL, view.Image))
	}
	data.AddJSONLD(handlers.WorkCreativeLD(a.site.URL, project, view.Image))
	a.renderPage(w, r, http.StatusOK, data)
}

func (a *app) blogGridFragment(w http.ResponseWriter, r *http.Request) {
	posts, err := a.content.ListBlogPosts(r.Context())
	if err != nil {
		a.logFetchFault(r, cms.BlogListQuery.Name, err)
		serve(w, r, http.StatusServiceUnavailable, a.render.Fragment("unavailable", handlers.Unavailable(handlers.Link{Href: "/blog", Label: "Reload"})))
		return
	}
	if len(posts) > 0 {
		posts = posts[1:]
	}
	state := widgets.ParseGridState(r.URL.Query(), handlers.AllowBlogType)
	serve(w, r, http.StatusOK, a.render.Fragment("blog-grid", handlers.BuildBlogGrid(posts, state, a.media)))
}

func (a *app) workGridFragment(w http.ResponseWriter, r *http.Request) {
	projects, err := a.content.ListWorkProjects(r.Context())
	if err != nil {
		a.logFetchFault(r, cms.WorkListQuery.Name, err)
		serve(w, r, http.StatusServiceUnavailable, a.render.Fragment("unavailable", handlers.Unavailable(handlers.Link{Href: "/work", Label: "Reload"})))
		return
	}
	state := widgets.ParseGridState(r.URL.Query(), nil)
	serve(w, r, http.StatusOK, a.render.Fragment("work-grid", handlers.BuildWorkGrid(projects, state, a.media)))
}

func (a *app) renderUnavailable(w http.ResponseWriter, r *http.Request, back handlers.Link) {
	view := handlers.Unavailable(back)
	a.renderPage(w, r, http.StatusServiceUnavailable, a.newPage(r, handlers.PageOptions{
		Page:  "unavailable",
		Title: view.Title,
	}, view))
}

func (a *app) logFetchFault(r *http.Request, query string, err error) {
	observability.FromContext(r.Context()).Error("content fetch failed",
		zap.String("query", query),
		zap.Error(err),
	)
}
