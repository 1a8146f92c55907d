package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sgwebsitebuilder.com/web/internal/handlers"
	mw "sgwebsitebuilder.com/web/internal/middleware"
	"sgwebsitebuilder.com/web/internal/seo"
	"sgwebsitebuilder.com/web/internal/widgets"
)

// newPage fills the layout fields for the request.
func (a *app) newPage(r *http.Request, opt handlers.PageOptions, body any) handlers.PageData {
	if opt.Path == "" {
		opt.Path = r.URL.Path
	}
	if opt.Now.IsZero() {
		opt.Now = a.now()
	}
	data := handlers.NewPage(a.site, opt, body)
	data.CSRFToken = mw.CSRFTokenFromContext(r.Context())
	return data
}

func (a *app) renderPage(w http.ResponseWriter, r *http.Request, status int, data handlers.PageData) {
	serve(w, r, status, a.render.Page(data.Page, data))
}

func (a *app) home(w http.ResponseWriter, r *http.Request) {
	body := handlers.BuildHomeData(slideParam(r))
	a.renderPage(w, r, http.StatusOK, a.newPage(r, handlers.PageOptions{
		Page:        "home",
		Description: seo.DefaultDescription,
	}, body))
}

func (a *app) services(w http.ResponseWriter, r *http.Request) {
	a.renderPage(w, r, http.StatusOK, a.newPage(r, handlers.PageOptions{
		Page:        "services",
		Title:       "Services",
		Description: handlers.Services.Tagline,
	}, handlers.Services))
}

func (a *app) service(w http.ResponseWriter, r *http.Request) {
	page, ok := handlers.FindService(chi.URLParam(r, "slug"))
	if !ok {
		a.notFound(w, r)
		return
	}
	a.renderPage(w, r, http.StatusOK, a.newPage(r, handlers.PageOptions{
		Page:        "service",
		Title:       page.Title,
		Description: page.Intro,
		Scheme:      &page.Scheme,
	}, page))
}

func (a *app) pricing(w http.ResponseWriter, r *http.Request) {
	body := handlers.BuildPricingData(widgets.ParseIndex(r.URL.Query().Get(handlers.FAQParam)))
	a.renderPage(w, r, http.StatusOK, a.newPage(r, handlers.PageOptions{
		Page:        "pricing",
		Title:       "Pricing",
		Description: handlers.Pricing.Tagline,
	}, body))
}

func (a *app) company(w http.ResponseWriter, r *http.Request) {
	body := handlers.BuildCompanyData(slideParam(r))
	a.renderPage(w, r, http.StatusOK, a.newPage(r, handlers.PageOptions{
		Page:        "company",
		Title:       "Company",
		Description: handlers.Company.Intro,
	}, body))
}

// notFound renders the site-styled 404 page.
func (a *app) notFound(w http.ResponseWriter, r *http.Request) {
	a.renderNotFound(w, r, handlers.PageNotFound)
}

func (a *app) renderNotFound(w http.ResponseWriter, r *http.Request, view handlers.NotFoundView) {
	a.renderPage(w, r, http.StatusNotFound, a.newPage(r, handlers.PageOptions{
		Page:  "not_found",
		Title: view.Title,
		Crumb: view.Title,
	}, view))
}

// serverError is the fallback after a recovered panic.
func (a *app) serverError(w http.ResponseWriter, r *http.Request) {
	a.renderPage(w, r, http.StatusInternalServerError, a.newPage(r, handlers.PageOptions{
		Page:  "error",
		Title: "Something went wrong",
	}, nil))
}

// slideParam reads the no-JS carousel position. Bad values show the first slide.
func slideParam(r *http.Request) int {
	i := widgets.ParseIndex(r.URL.Query().Get(handlers.SlideParam))
	if i == widgets.None {
		return 0
	}
	return i
}
