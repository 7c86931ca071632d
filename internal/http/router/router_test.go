package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"mdelivery-zones/internal/geo"
	"mdelivery-zones/internal/http/handlers"
	"mdelivery-zones/internal/http/middleware/ratelimit"
	"mdelivery-zones/internal/http/router"
	"mdelivery-zones/internal/logx"
	"mdelivery-zones/internal/metrics"
)

type denyAll struct{}

func (denyAll) Allow(string) bool { return false }

func newRouter(t *testing.T, rl *ratelimit.Middleware) http.Handler {
	t.Helper()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	log := logx.Nop()

	return router.New(router.Deps{
		Base:      handlers.New(log),
		Zones:     handlers.NewZoneHandler(log, nil, geo.DefaultViewportOptions),
		Radii:     handlers.NewRadiusHandler(log, nil),
		Sessions:  handlers.NewSessionHandler(log, nil),
		Logger:    log,
		Metrics:   m,
		Gatherer:  reg,
		RateLimit: rl,
	})
}

func TestNew_Routes(t *testing.T) {
	t.Parallel()

	h := newRouter(t, nil)

	tests := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/ping", http.StatusOK},
		{http.MethodHead, "/healthcheck", http.StatusNoContent},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/zones/abc", http.StatusBadRequest},
		{http.MethodGet, "/zones/abc/viewport", http.StatusBadRequest},
		{http.MethodGet, "/zones/abc/quote", http.StatusBadRequest},
		{http.MethodPost, "/zones/abc/sessions", http.StatusBadRequest},
		{http.MethodGet, "/accounts/+5561999990000/zones/abc/radii", http.StatusBadRequest},
		{http.MethodDelete, "/accounts/+5561999990000/zones/7/radii/abc", http.StatusBadRequest},
		{http.MethodDelete, "/sessions/s-1/vertices/abc", http.StatusBadRequest},
		{http.MethodGet, "/does-not-exist", http.StatusNotFound},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		require.Equal(t, tc.want, rr.Code, "%s %s", tc.method, tc.path)
	}
}

func TestNew_MetricsExposeRequestCounter(t *testing.T) {
	t.Parallel()

	h := newRouter(t, nil)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, strings.Contains(rr.Body.String(), `http_requests_total{method="GET",path="/ping",status="200"} 1`))
}

func TestNew_RateLimited(t *testing.T) {
	t.Parallel()

	h := newRouter(t, ratelimit.New(logx.Nop(), nil, denyAll{}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusTooManyRequests, rr.Code)
}
