package middleware

import "context"

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeySession ctxKey = "session"
	ctxKeyCSRF    ctxKey = "csrf.token"
	ctxKeyHTMX    ctxKey = "htmx.info"
)

func withSession(ctx context.Context, s *SessionData) context.Context {
	return context.WithValue(ctx, ctxKeySession, s)
}

// SessionFromContext returns the request's session, or an empty one when the
// session middleware did not run.
func SessionFromContext(ctx context.Context) *SessionData {
	if s, ok := ctx.Value(ctxKeySession).(*SessionData); ok && s != nil {
		return s
	}
	return &SessionData{}
}

// CSRFTokenFromContext returns the token to embed in forms.
func CSRFTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(ctxKeyCSRF).(string)
	return token
}

// HTMXInfoFromContext returns htmx request metadata; the zero value if absent.
func HTMXInfoFromContext(ctx context.Context) HTMXInfo {
	info, _ := ctx.Value(ctxKeyHTMX).(HTMXInfo)
	return info
}

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(ctx context.Context) bool {
	return HTMXInfoFromContext(ctx).IsHTMX
}
