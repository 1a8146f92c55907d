package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"sgwebsitebuilder.com/web/internal/contact"
	"sgwebsitebuilder.com/web/internal/testutil"
)

type stubSender struct {
	mu    sync.Mutex
	err   error
	calls []contact.Fields
}

func (s *stubSender) Send(_ context.Context, f contact.Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, f)
	return s.err
}

func (s *stubSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// blockingSender holds every send until release is closed.
type blockingSender struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func newBlockingSender() *blockingSender {
	return &blockingSender{started: make(chan struct{}), release: make(chan struct{})}
}

func (b *blockingSender) Send(ctx context.Context, _ contact.Fields) error {
	b.once.Do(func() { close(b.started) })
	select {
	case <-b.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// visitor replays the session cookie and CSRF token from a first page view.
type visitor struct {
	t       *testing.T
	h       http.Handler
	cookies []*http.Cookie
	token   string
}

func newVisitor(t *testing.T, h http.Handler) *visitor {
	t.Helper()
	rec, doc := get(t, h, "/contact", false)
	require.Equal(t, http.StatusOK, rec.Code)
	token, ok := doc.Find(`input[name="csrf_token"]`).Attr("value")
	require.True(t, ok)
	require.NotEmpty(t, token)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return &visitor{t: t, h: h, cookies: cookies, token: token}
}

func (v *visitor) do(method, target string, form url.Values, htmx bool) (*httptest.ResponseRecorder, *goquery.Document) {
	v.t.Helper()
	if form == nil {
		form = url.Values{}
	}
	if method == http.MethodPost {
		form.Set("csrf_token", v.token)
	}
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if method != http.MethodPost {
		req.Header.Set("X-CSRF-Token", v.token)
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	for _, c := range v.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	v.h.ServeHTTP(rec, req)
	return rec, testutil.ParseHTML(v.t, rec.Body.Bytes())
}

func validForm() url.Values {
	return url.Values{
		contact.FieldName:               {"Ada Tan"},
		contact.FieldEmail:              {"ada@example.com"},
		contact.FieldCompany:            {"Tan Bakery"},
		contact.FieldBudget:             {string(contact.Budget5kTo10k)},
		contact.FieldProjectType:        {string(contact.ProjectEcommerce)},
		contact.FieldProjectDescription: {"An online store for our cakes."},
	}
}

func requireFieldsKept(t *testing.T, doc *goquery.Document) {
	t.Helper()
	require.Equal(t, "Ada Tan", doc.Find("#name").AttrOr("value", ""))
	require.Equal(t, "ada@example.com", doc.Find("#email").AttrOr("value", ""))
	require.Equal(t, "Tan Bakery", doc.Find("#company").AttrOr("value", ""))
	require.Equal(t, string(contact.Budget5kTo10k), doc.Find("#budget option[selected]").AttrOr("value", ""))
	require.Equal(t, string(contact.ProjectEcommerce), doc.Find("#projectType option[selected]").AttrOr("value", ""))
	require.Equal(t, "An online store for our cakes.", strings.TrimSpace(doc.Find("#projectDescription").Text()))
}

func TestContactSubmitSuccessClearsFields(t *testing.T) {
	t.Parallel()
	sender := &stubSender{}
	v := newVisitor(t, newTestRouter(t, withSender(sender)))

	rec, doc := v.do(http.MethodPost, "/contact", validForm(), false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, sender.count())
	require.Equal(t, "banner banner-success", doc.Find("#contact-banner").AttrOr("class", ""))
	require.Equal(t, contact.SuccessMessage, testutil.Text(doc, "#contact-banner p"))
	require.Empty(t, doc.Find("#name").AttrOr("value", ""))
	require.Empty(t, strings.TrimSpace(doc.Find("#projectDescription").Text()))
	require.Equal(t, 1, doc.Find("header#navbar").Length())
}

func TestContactDeliveryFailureKeepsFields(t *testing.T) {
	t.Parallel()
	sender := &stubSender{err: errors.New("connection reset")}
	v := newVisitor(t, newTestRouter(t, withSender(sender)))

	rec, doc := v.do(http.MethodPost, "/contact", validForm(), false)
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Equal(t, "banner banner-error", doc.Find("#contact-banner").AttrOr("class", ""))
	require.Equal(t, contact.GenericErrorMessage, testutil.Text(doc, "#contact-banner p"))
	requireFieldsKept(t, doc)
}

func TestContactNotConfigured(t *testing.T) {
	t.Parallel()
	v := newVisitor(t, newTestRouter(t))

	rec, doc := v.do(http.MethodPost, "/contact", validForm(), false)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, contact.NotConfiguredMessage, testutil.Text(doc, "#contact-banner p"))
	requireFieldsKept(t, doc)
}

func TestContactMissingFieldsNeverSends(t *testing.T) {
	t.Parallel()
	sender := &stubSender{}
	v := newVisitor(t, newTestRouter(t, withSender(sender)))

	form := validForm()
	form.Set(contact.FieldEmail, "   ")
	rec, doc := v.do(http.MethodPost, "/contact", form, false)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Zero(t, sender.count())
	require.Equal(t, "banner banner-error", doc.Find("#contact-banner").AttrOr("class", ""))
	require.Equal(t, "Ada Tan", doc.Find("#name").AttrOr("value", ""))
}

func TestContactSecondSubmitWhileSending(t *testing.T) {
	t.Parallel()
	sender := newBlockingSender()
	v := newVisitor(t, newTestRouter(t, withSender(sender)))

	done := make(chan int, 1)
	go func() {
		rec, _ := v.do(http.MethodPost, "/contact", validForm(), true)
		done <- rec.Code
	}()
	<-sender.started

	rec, doc := v.do(http.MethodPost, "/contact", validForm(), true)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "banner banner-notice", doc.Find("#contact-banner").AttrOr("class", ""))
	require.Equal(t, contact.InFlightMessage, testutil.Text(doc, "#contact-banner p"))
	_, disabled := doc.Find(`button[type="submit"].button`).Attr("disabled")
	require.True(t, disabled)

	close(sender.release)
	require.Equal(t, http.StatusOK, <-done)
}

func TestContactHTMXReturnsFormFragment(t *testing.T) {
	t.Parallel()
	v := newVisitor(t, newTestRouter(t, withSender(&stubSender{})))

	rec, doc := v.do(http.MethodPost, "/contact", validForm(), true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, doc.Find("form#contact-form").Length())
	require.Equal(t, 0, doc.Find("header#navbar").Length())
	require.Equal(t, v.token, doc.Find(`input[name="csrf_token"]`).AttrOr("value", ""))
}

func TestContactDismissKeepsFields(t *testing.T) {
	t.Parallel()
	sender := &stubSender{}
	v := newVisitor(t, newTestRouter(t, withSender(sender)))

	form := validForm()
	form.Set("dismiss", "1")
	rec, doc := v.do(http.MethodPost, "/contact", form, false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Zero(t, sender.count())
	require.Equal(t, 0, doc.Find("#contact-banner").Length())
	requireFieldsKept(t, doc)
}

func TestContactBannerDeleteIsEmpty(t *testing.T) {
	t.Parallel()
	v := newVisitor(t, newTestRouter(t))

	rec, _ := v.do(http.MethodDelete, "/fragments/contact/banner", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, strings.TrimSpace(rec.Body.String()))
}

func TestContactRejectsMissingToken(t *testing.T) {
	t.Parallel()
	sender := &stubSender{}
	h := newTestRouter(t, withSender(sender))

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(validForm().Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Zero(t, sender.count())
}
