// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry groups every collector so tests can use a private prometheus.Registry.
type Registry struct {
	HTTPRequests   *prometheus.CounterVec
	HTTPDuration   *prometheus.HistogramVec
	RateLimited    prometheus.Counter
	SyncWrites     *prometheus.CounterVec
	SkippedTicks   prometheus.Counter
	ActiveSessions prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Registry {
	r := &Registry{
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Requests rejected by the rate limiter.",
		}),
		SyncWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zone_sync_writes_total",
				Help: "Zone writes issued by edit sessions.",
			},
			[]string{"trigger", "result"},
		),
		SkippedTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "zone_sync_skipped_ticks_total",
			Help: "Poll ticks that found no change.",
		}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "zone_edit_sessions_active",
			Help: "Open edit sessions.",
		}),
	}
	reg.MustRegister(
		r.HTTPRequests,
		r.HTTPDuration,
		r.RateLimited,
		r.SyncWrites,
		r.SkippedTicks,
		r.ActiveSessions,
	)
	return r
}

// SyncWrite counts one edit-session write.
func (r *Registry) SyncWrite(trigger string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.SyncWrites.WithLabelValues(trigger, result).Inc()
}

// SkippedTick counts a poll that found nothing to write.
func (r *Registry) SkippedTick() { r.SkippedTicks.Inc() }

// SessionsActive sets the open-session gauge.
func (r *Registry) SessionsActive(n int) { r.ActiveSessions.Set(float64(n)) }
