package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mdelivery-zones/internal/http/handlers"
	mw "mdelivery-zones/internal/http/middleware"
	"mdelivery-zones/internal/http/middleware/ratelimit"
	"mdelivery-zones/internal/logx"
	"mdelivery-zones/internal/metrics"
)

// Deps are the handlers and middleware the router mounts. Nil middleware is skipped.
type Deps struct {
	Base     *handlers.Handlers
	Zones    *handlers.ZoneHandler
	Radii    *handlers.RadiusHandler
	Sessions *handlers.SessionHandler

	Logger    logx.Logger
	Metrics   *metrics.Registry
	Gatherer  prometheus.Gatherer
	RateLimit *ratelimit.Middleware
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Observability(d.Logger, d.Metrics))
	r.Use(middleware.Recoverer)
	if d.RateLimit != nil {
		r.Use(d.RateLimit.Handler())
	}

	// the live channel outlives the request timeout
	r.Get("/sessions/{sid}/live", d.Sessions.Live)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(5 * time.Second))

		r.Get("/ping", d.Base.Ping)
		r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
		if d.Gatherer != nil {
			r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
		}

		r.Route("/accounts/{phone}", func(r chi.Router) {
			r.Get("/zones", d.Zones.List)
			r.Post("/zones", d.Zones.Create)
			r.Get("/zones.geojson", d.Zones.GeoJSON)
			r.Get("/viewport", d.Zones.AccountViewport)

			r.Get("/zones/{id}/radii", d.Radii.Board)
			r.Post("/zones/{id}/radii", d.Radii.Create)
			r.Delete("/zones/{id}/radii/{radiusID}", d.Radii.Delete)
		})

		r.Route("/zones/{id}", func(r chi.Router) {
			r.Get("/", d.Zones.GetByID)
			r.Delete("/", d.Zones.Delete)
			r.Put("/points", d.Zones.UpdatePoints)
			r.Put("/name", d.Zones.Rename)
			r.Get("/viewport", d.Zones.Viewport)
			r.Put("/delivery-point", d.Radii.SetDeliveryPoint)
			r.Get("/quote", d.Radii.Quote)
			r.Post("/sessions", d.Sessions.Open)
		})

		r.Route("/sessions/{sid}", func(r chi.Router) {
			r.Get("/", d.Sessions.Get)
			r.Delete("/", d.Sessions.Cancel)
			r.Put("/path", d.Sessions.PushPath)
			r.Put("/vertices/{index}", d.Sessions.MoveVertex)
			r.Delete("/vertices/{index}", d.Sessions.RemoveVertex)
			r.Put("/name", d.Sessions.Rename)
			r.Post("/save", d.Sessions.Save)
		})
	})

	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	return r
}
