package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
)

// CSRFConfig names where unsafe requests carry the token.
type CSRFConfig struct {
	HeaderName string
	FieldName  string
}

// CSRF verifies that unsafe requests echo the session's token in the header
// or form field. It must run after the session middleware.
func CSRF(cfg CSRFConfig) func(http.Handler) http.Handler {
	header := cfg.HeaderName
	if header == "" {
		header = "X-CSRF-Token"
	}
	field := cfg.FieldName
	if field == "" {
		field = "csrf_token"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := SessionFromContext(r.Context()).CSRFToken
			if isUnsafeMethod(r.Method) {
				submitted := r.Header.Get(header)
				if submitted == "" {
					submitted = r.PostFormValue(field)
				}
				if token == "" || subtle.ConstantTimeCompare([]byte(submitted), []byte(token)) != 1 {
					writeError(w, r, http.StatusForbidden, "Your session expired. Please reload the page and try again.")
					return
				}
			}
			ctx := context.WithValue(r.Context(), ctxKeyCSRF, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isUnsafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return false
	default:
		return true
	}
}
