package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"mdelivery-zones/internal/apperr"
	"mdelivery-zones/internal/domain"
	"mdelivery-zones/internal/logx"
)

const (
	liveWriteWait  = 10 * time.Second
	livePongWait   = 60 * time.Second
	livePingPeriod = (livePongWait * 9) / 10
	liveReadLimit  = 512 << 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type liveFrame struct {
	Points []domain.Point `json:"points"`
}

type liveMessage struct {
	Status *sessionDTO `json:"status,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// Live handles GET /sessions/{sid}/live. Incoming frames carry the polygon the
// map widget shows; outgoing frames carry the session status after each change.
// The connection ends when the session closes.
func (h *SessionHandler) Live(w http.ResponseWriter, r *http.Request) {
	sid := chi.URLParam(r, "sid")
	updates, stop, err := h.uc.Subscribe(sid)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	defer stop()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", logx.String("session_id", sid), logx.Err(err))
		return
	}
	defer conn.Close()

	log := h.logger.With(logx.String("session_id", sid))
	log.Debug("live channel opened")

	rejected := make(chan string, 1)
	readDone := make(chan struct{})
	go h.readPump(conn, sid, rejected, readDone, log)

	ticker := time.NewTicker(livePingPeriod)
	defer ticker.Stop()

	for {
		select {
		case st, ok := <-updates:
			if !ok {
				_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"))
				log.Debug("live channel closed by session")
				return
			}
			dto := statusToResponse(st)
			if err := writeLive(conn, liveMessage{Status: &dto}); err != nil {
				return
			}
		case msg := <-rejected:
			if err := writeLive(conn, liveMessage{Error: msg}); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-readDone:
			log.Debug("live channel closed by client")
			return
		}
	}
}

func (h *SessionHandler) readPump(conn *websocket.Conn, sid string, rejected chan<- string, done chan<- struct{}, log logx.Logger) {
	defer close(done)

	conn.SetReadLimit(liveReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(livePongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(livePongWait))
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("live channel read failed", logx.Err(err))
			}
			return
		}
		var f liveFrame
		if err := json.Unmarshal(raw, &f); err != nil {
			reject(rejected, "invalid json")
			continue
		}
		if _, err := h.uc.PushPath(sid, f.Points); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return
			}
			reject(rejected, err.Error())
		}
	}
}

func reject(ch chan<- string, msg string) {
	select {
	case ch <- msg:
	default:
	}
}

func writeLive(conn *websocket.Conn, m liveMessage) error {
	_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
	return conn.WriteJSON(m)
}
