package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mdelivery-zones/internal/domain"
	"mdelivery-zones/internal/geo"
	"mdelivery-zones/internal/logx"
)

// ZoneHandler serves HTTP endpoints for delivery zones.
type ZoneHandler struct {
	uc       zoneUsecase
	viewport geo.ViewportOptions
	logger   logx.Logger
}

// NewZoneHandler wires a zone usecase into HTTP handlers.
func NewZoneHandler(logger logx.Logger, uc zoneUsecase, viewport geo.ViewportOptions) *ZoneHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &ZoneHandler{uc: uc, viewport: viewport, logger: logger}
}

// List handles GET /accounts/{phone}/zones.
func (h *ZoneHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.List(r.Context(), chi.URLParam(r, "phone"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, zonesToResponse(list))
}

// Create handles POST /accounts/{phone}/zones.
func (h *ZoneHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createZoneRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	z, err := h.uc.Create(r.Context(), domain.NewZone{
		Name:         req.Name,
		Points:       req.Points,
		AccountPhone: chi.URLParam(r, "phone"),
	})
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/zones/"+strconv.FormatInt(z.ID, 10))
	writeJSON(h.logger, w, r, http.StatusCreated, zoneToResponse(*z))
}

// GeoJSON handles GET /accounts/{phone}/zones.geojson.
func (h *ZoneHandler) GeoJSON(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.List(r.Context(), chi.URLParam(r, "phone"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	raw, err := geo.ZonesFeatureCollection(list).MarshalJSON()
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

// AccountViewport handles GET /accounts/{phone}/viewport?width=&height=.
func (h *ZoneHandler) AccountViewport(w http.ResponseWriter, r *http.Request) {
	width, height, ok := h.mapSize(w, r)
	if !ok {
		return
	}
	list, err := h.uc.List(r.Context(), chi.URLParam(r, "phone"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, geo.ViewportForZones(list, width, height, h.viewport))
}

// Viewport handles GET /zones/{id}/viewport?width=&height=.
func (h *ZoneHandler) Viewport(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	width, height, ok := h.mapSize(w, r)
	if !ok {
		return
	}
	z, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, geo.ViewportForZones([]domain.Zone{*z}, width, height, h.viewport))
}

func (h *ZoneHandler) mapSize(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	width, err := intQuery(r, "width")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return 0, 0, false
	}
	height, err := intQuery(r, "height")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return 0, 0, false
	}
	return width, height, true
}

// GetByID handles GET /zones/{id}.
func (h *ZoneHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	z, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, zoneToResponse(*z))
}

// Delete handles DELETE /zones/{id}.
func (h *ZoneHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.uc.Delete(r.Context(), id); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdatePoints handles PUT /zones/{id}/points. Without a version the last write wins.
func (h *ZoneHandler) UpdatePoints(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updatePointsRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	z, err := h.uc.UpdatePoints(r.Context(), domain.PointsUpdate{
		ZoneID:          id,
		Points:          req.Points,
		ExpectedVersion: req.Version,
	})
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, zoneToResponse(*z))
}

// Rename handles PUT /zones/{id}/name.
func (h *ZoneHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req renameRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	z, err := h.uc.Rename(r.Context(), id, req.Name, req.Version)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, zoneToResponse(*z))
}
