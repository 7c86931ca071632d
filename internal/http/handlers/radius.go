package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"mdelivery-zones/internal/domain"
	"mdelivery-zones/internal/logx"
)

// RadiusHandler serves the radius editor and fee quotes.
type RadiusHandler struct {
	uc     radiusUsecase
	logger logx.Logger
	now    func() time.Time
}

// NewRadiusHandler wires a radius usecase into HTTP handlers.
func NewRadiusHandler(logger logx.Logger, uc radiusUsecase) *RadiusHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &RadiusHandler{uc: uc, logger: logger, now: time.Now}
}

// Board handles GET /accounts/{phone}/zones/{id}/radii.
func (h *RadiusHandler) Board(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	b, err := h.uc.Board(r.Context(), chi.URLParam(r, "phone"), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, boardToResponse(*b))
}

// Create handles POST /accounts/{phone}/zones/{id}/radii.
func (h *RadiusHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req createRadiusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	res, err := h.uc.Create(r.Context(), chi.URLParam(r, "phone"), id, req.toInput())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, createdRadiusDTO{
		Radius: radiusToResponse(res.Radius),
		Radii:  radiiToResponse(res.Radii),
	})
}

// Delete handles DELETE /accounts/{phone}/zones/{id}/radii/{radiusID} and
// answers with the reloaded board.
func (h *RadiusHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	radiusID, err := idFromURL(r, "radiusID")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid radius id")
		return
	}
	b, err := h.uc.Delete(r.Context(), chi.URLParam(r, "phone"), id, radiusID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, boardToResponse(*b))
}

// SetDeliveryPoint handles PUT /zones/{id}/delivery-point.
func (h *RadiusHandler) SetDeliveryPoint(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req pointRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	p, ok := req.toModel()
	if !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "lat and lng are required")
		return
	}
	z, err := h.uc.SetDeliveryPoint(r.Context(), id, p)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, zoneToResponse(*z))
}

// Quote handles GET /zones/{id}/quote?lat=&lng=&at=. at is RFC 3339 and defaults to now.
func (h *RadiusHandler) Quote(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
	if errLat != nil || errLng != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid lat/lng")
		return
	}
	at := h.now()
	if s := q.Get("at"); s != "" {
		at, err = time.Parse(time.RFC3339, s)
		if err != nil {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid at")
			return
		}
	}
	res, err := h.uc.Quote(r.Context(), id, domain.Point{Lat: lat, Lng: lng}, at)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, quoteToResponse(*res))
}
