package main

import (
	"net/http"
	"strconv"

	"sgwebsitebuilder.com/web/internal/handlers"
	"sgwebsitebuilder.com/web/internal/widgets"
)

func (a *app) faqFragment(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	open := handlers.ToggleFAQ(len(handlers.FAQs), widgets.ParseIndex(q.Get("open")), widgets.ParseIndex(q.Get("toggle")))
	serve(w, r, http.StatusOK, a.render.Fragment("faq", handlers.BuildFAQ(handlers.FAQs, open, q.Get("page"))))
}

func (a *app) testimonialsFragment(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	index, _ := strconv.Atoi(q.Get("index"))
	to, _ := strconv.Atoi(q.Get("to"))
	slide := handlers.StepCarousel(len(handlers.Testimonials), index, q.Get("action"), to)
	serve(w, r, http.StatusOK, a.render.Fragment("testimonials", handlers.BuildTestimonials(handlers.Testimonials, slide, q.Get("page"))))
}
