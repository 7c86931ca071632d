package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"mdelivery-zones/internal/logx"
)

// SessionHandler serves edit-mode sessions of the zone editor.
type SessionHandler struct {
	uc     sessionUsecase
	logger logx.Logger
}

// NewSessionHandler wires the session manager into HTTP handlers.
func NewSessionHandler(logger logx.Logger, uc sessionUsecase) *SessionHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &SessionHandler{uc: uc, logger: logger}
}

// Open handles POST /zones/{id}/sessions.
func (h *SessionHandler) Open(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	st, err := h.uc.Open(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/sessions/"+st.ID)
	writeJSON(h.logger, w, r, http.StatusCreated, statusToResponse(st))
}

// Get handles GET /sessions/{sid}.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := h.uc.Get(chi.URLParam(r, "sid"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, statusToResponse(st))
}

// PushPath handles PUT /sessions/{sid}/path with the polygon the map widget shows.
func (h *SessionHandler) PushPath(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	st, err := h.uc.PushPath(chi.URLParam(r, "sid"), req.Points)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusAccepted, statusToResponse(st))
}

// MoveVertex handles PUT /sessions/{sid}/vertices/{index} (drag end).
func (h *SessionHandler) MoveVertex(w http.ResponseWriter, r *http.Request) {
	index, err := indexFromURL(r, "index")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
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
	st, err := h.uc.MoveVertex(r.Context(), chi.URLParam(r, "sid"), index, p)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, statusToResponse(st))
}

// RemoveVertex handles DELETE /sessions/{sid}/vertices/{index}.
func (h *SessionHandler) RemoveVertex(w http.ResponseWriter, r *http.Request) {
	index, err := indexFromURL(r, "index")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	st, err := h.uc.RemoveVertex(r.Context(), chi.URLParam(r, "sid"), index)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, statusToResponse(st))
}

// Rename handles PUT /sessions/{sid}/name.
func (h *SessionHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	st, err := h.uc.Rename(r.Context(), chi.URLParam(r, "sid"), req.Name)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, statusToResponse(st))
}

// Save handles POST /sessions/{sid}/save and ends edit mode on success.
func (h *SessionHandler) Save(w http.ResponseWriter, r *http.Request) {
	st, err := h.uc.Save(r.Context(), chi.URLParam(r, "sid"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, statusToResponse(st))
}

// Cancel handles DELETE /sessions/{sid} and answers with the reloaded zone.
func (h *SessionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	z, err := h.uc.Cancel(r.Context(), chi.URLParam(r, "sid"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, zoneToResponse(*z))
}
