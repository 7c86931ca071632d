package handlers

import (
	"context"
	"net/http"

	"mdelivery-zones/internal/logx"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Handlers serves the service-level routes: ping, healthcheck and the JSON 404.
type Handlers struct {
	Logger logx.Logger
	db     pinger
}

// New creates a Handlers instance with the given logger.
func New(logger logx.Logger) *Handlers {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Handlers{Logger: logger}
}

// WithDB makes the healthcheck report the database as well.
func (h *Handlers) WithDB(db pinger) *Handlers {
	h.db = db
	return h
}

// Ping handles GET /ping.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, map[string]string{"message": "pong"})
}

// HealthcheckHead answers 204, or 503 when the database does not respond.
func (h *Handlers) HealthcheckHead(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			h.Logger.Warn("healthcheck failed",
				logx.String("request_id", reqID(r.Context())),
				logx.Err(err),
			)
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// NotFound returns a JSON 404 error for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusNotFound, "route not found")
}
