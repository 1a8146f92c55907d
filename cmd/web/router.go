package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	mw "sgwebsitebuilder.com/web/internal/middleware"
	"sgwebsitebuilder.com/web/internal/observability"
	"sgwebsitebuilder.com/web/public"
)

// routes assembles the middleware stack, pages and htmx fragments.
func (a *app) routes() (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; deploy behind a proxy that sets it.
	r.Use(chimw.RealIP)
	r.Use(observability.InjectLoggerMiddleware(a.logger))
	r.Use(observability.RequestLoggerMiddleware(a.metrics))
	r.Use(observability.RecoveryMiddleware(a.serverError))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(a.cfg.Server.RequestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", a.metrics.Handler())

	static, err := public.StaticFS()
	if err != nil {
		return nil, err
	}
	r.Handle("/assets/*", mw.AssetsWithCache(static, mw.AssetsConfig{
		Prefix:  "/assets",
		NoCache: a.cfg.Server.DevMode,
	}))

	r.Group(func(r chi.Router) {
		r.Use(mw.HTMX())
		r.Use(a.sessions.Middleware())
		r.Use(mw.CSRF(mw.CSRFConfig{}))

		r.Get("/", a.home)
		r.Get("/services", a.services)
		r.Get("/services/{slug}", a.service)
		r.Get("/pricing", a.pricing)
		r.Get("/company", a.company)
		r.Get("/contact", a.contactPage)
		r.Post("/contact", a.submitContact)
		r.Get("/work", a.workList)
		r.Get("/work/{slug}", a.workDetail)
		r.Get("/blog", a.blogList)
		r.Get("/blog/{slug}", a.blogDetail)

		r.Route("/fragments", func(r chi.Router) {
			r.Use(mw.RequireHTMX())
			r.Get("/blog-grid", a.blogGridFragment)
			r.Get("/work-grid", a.workGridFragment)
			r.Get("/faq", a.faqFragment)
			r.Get("/testimonials", a.testimonialsFragment)
			r.Delete("/contact/banner", a.dismissBanner)
		})

		r.NotFound(a.notFound)
	})
	return r, nil
}
