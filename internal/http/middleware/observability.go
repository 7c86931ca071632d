package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"mdelivery-zones/internal/logx"
	"mdelivery-zones/internal/metrics"
)

// Observability records request counters and latency and logs every request.
func Observability(logger logx.Logger, m *metrics.Registry) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logx.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			path := pathPattern(r) // route pattern keeps label cardinality bounded
			tm := time.Since(start)
			status := strconv.Itoa(ww.Status())

			if m != nil {
				m.HTTPRequests.WithLabelValues(r.Method, path, status).Inc()
				m.HTTPDuration.WithLabelValues(r.Method, path, status).Observe(tm.Seconds())
			}

			logger.Info("http request",
				logx.String("method", r.Method),
				logx.String("path", path),
				logx.Int("status", ww.Status()),
				logx.Duration("duration", tm),
				logx.String("request_id", chimw.GetReqID(r.Context())),
			)
		})
	}
}

func pathPattern(r *http.Request) string {
	rc := chi.RouteContext(r.Context())
	if rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
