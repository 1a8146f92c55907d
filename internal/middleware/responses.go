package middleware

import (
	"html/template"
	"net/http"
)

var errorBanner = template.Must(template.New("banner").Parse(
	`<div class="banner banner-error" role="alert">{{.}}</div>`,
))

// writeError answers htmx requests with a swappable banner and everything
// else with plain text.
func writeError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	if IsHTMX(r.Context()) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(code)
		_ = errorBanner.Execute(w, msg)
		return
	}
	http.Error(w, msg, code)
}
