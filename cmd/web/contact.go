package main

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"sgwebsitebuilder.com/web/internal/contact"
	"sgwebsitebuilder.com/web/internal/handlers"
	mw "sgwebsitebuilder.com/web/internal/middleware"
	"sgwebsitebuilder.com/web/internal/observability"
)

func (a *app) contactPage(w http.ResponseWriter, r *http.Request) {
	session := mw.SessionFromContext(r.Context()).ID
	a.renderContact(w, r, http.StatusOK, contact.Form{}, a.contact.Submitting(session))
}

// submitContact sends the posted form, or only drops the banner when the
// no-JS dismiss button was pressed.
func (a *app) submitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		a.renderContact(w, r, http.StatusBadRequest, contact.Form{
			Banner: &contact.Banner{Kind: contact.BannerError, Message: contact.GenericErrorMessage},
		}, false)
		return
	}
	fields := contact.FieldsFromForm(r.PostForm)
	session := mw.SessionFromContext(r.Context()).ID

	if r.PostForm.Get(handlers.ContactDismissField) != "" {
		form := contact.Form{Fields: fields}
		form.Dismiss()
		a.renderContact(w, r, http.StatusOK, form, a.contact.Submitting(session))
		return
	}

	form, err := a.contact.Submit(r.Context(), session, fields)
	status := submitStatus(err)
	if err != nil {
		observability.FromContext(r.Context()).Info("contact submission not delivered",
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	a.renderContact(w, r, status, form, errors.Is(err, contact.ErrSubmissionInFlight))
}

// dismissBanner answers the htmx dismiss with nothing, so the outerHTML swap
// removes the banner and leaves the inputs untouched.
func (a *app) dismissBanner(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
}

func (a *app) renderContact(w http.ResponseWriter, r *http.Request, status int, form contact.Form, sending bool) {
	body := handlers.BuildContactData(form, sending)
	if mw.IsHTMX(r.Context()) {
		serve(w, r, status, a.render.Fragment("contact-form", map[string]any{
			"Data":      body,
			"CSRFToken": mw.CSRFTokenFromContext(r.Context()),
		}))
		return
	}
	a.renderPage(w, r, status, a.newPage(r, handlers.PageOptions{
		Page:        "contact",
		Path:        handlers.ContactPath,
		Title:       "Contact",
		Description: handlers.Contact.Intro,
	}, body))
}

func submitStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, contact.ErrMissingFields):
		return http.StatusUnprocessableEntity
	case errors.Is(err, contact.ErrSubmissionInFlight):
		return http.StatusConflict
	case errors.Is(err, contact.ErrNotConfigured):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
