package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedRouter(t *testing.T, m *Metrics) (http.Handler, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(InjectLoggerMiddleware(logger))
	r.Use(RequestLoggerMiddleware(m))
	r.Use(RecoveryMiddleware(nil))
	r.Get("/blog/{slug}", func(w http.ResponseWriter, r *http.Request) {
		FromContext(r.Context()).Debug("inside handler")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	})
	r.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	})
	return r, logs
}

func TestRequestLoggerRecordsRouteAndStatus(t *testing.T) {
	t.Parallel()

	m := NewMetrics(prometheus.NewRegistry())
	router, logs := newObservedRouter(t, m)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog/hello", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	entry := entries[0]
	require.Equal(t, zapcore.WarnLevel, entry.Level)
	fields := entry.ContextMap()
	require.Equal(t, "/blog/{slug}", fields["route"])
	require.EqualValues(t, http.StatusNotFound, fields["status"])
	require.NotEmpty(t, fields["request_id"])

	inner := logs.FilterMessage("inside handler").All()
	require.Len(t, inner, 1)
	require.Equal(t, "/blog/hello", inner[0].ContextMap()["path"])

	require.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/blog/{slug}", "GET", "404")))
}

func TestRecoveryMiddlewareLogsPanic(t *testing.T) {
	t.Parallel()

	router, logs := newObservedRouter(t, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Len(t, logs.FilterMessage("panic recovered").All(), 1)
}

func TestRecoveryMiddlewareUsesFallback(t *testing.T) {
	t.Parallel()

	h := RecoveryMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("styled error page"))
	})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "styled error page", rec.Body.String())
}

func TestMetricsHandlerExposesCounters(t *testing.T) {
	t.Parallel()

	m := NewMetrics(nil)
	m.ContentFetch("blogPosts", "hit")
	m.ContactSubmission("sent")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.True(t, strings.Contains(body, `sgwb_content_fetches_total{outcome="hit",query="blogPosts"} 1`), body)
	require.True(t, strings.Contains(body, `sgwb_contact_submissions_total{outcome="sent"} 1`), body)
}

func TestNilMetricsIsSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.ContentFetch("blogPosts", "hit")
	m.ContactSubmission("sent")
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFromContextDefaultsToNoop(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Same(t, noopLogger, FromContext(req.Context()))
}

func TestNewLoggerFallsBackOnInvalidLevel(t *testing.T) {
	t.Parallel()

	logger, err := newLogger("chatty")
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	require.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}
