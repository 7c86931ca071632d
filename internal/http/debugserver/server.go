package debugserver

import (
	"crypto/subtle"
	"encoding/json"
	"net"
	"net/http"
	"net/http/pprof"
	"strings"
	"time"

	"mdelivery-zones/internal/service/editsession"
)

// Config stores debug listener credentials. Loopback callers skip auth.
type Config struct {
	User string
	Pass string
}

// SessionLister is the read-only view of open edit sessions.
type SessionLister interface {
	Sessions() []editsession.Status
}

// Handler returns pprof handlers plus /debug/sessions when sessions is non-nil.
func Handler(cfg Config, sessions SessionLister) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)

	mux.Handle("/debug/pprof/heap", pprof.Handler("heap"))
	mux.Handle("/debug/pprof/goroutine", pprof.Handler("goroutine"))
	mux.Handle("/debug/pprof/allocs", pprof.Handler("allocs"))
	mux.Handle("/debug/pprof/block", pprof.Handler("block"))
	mux.Handle("/debug/pprof/mutex", pprof.Handler("mutex"))

	if sessions != nil {
		mux.Handle("/debug/sessions", sessionsHandler(sessions))
	}
	return authOrLocalOnly(mux, cfg)
}

// New returns a server for addr serving Handler.
func New(addr string, cfg Config, sessions SessionLister) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           Handler(cfg, sessions),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

type sessionView struct {
	ID        string    `json:"id"`
	ZoneID    int64     `json:"zone_id"`
	Name      string    `json:"name"`
	Vertices  int       `json:"vertices"`
	Version   int64     `json:"version"`
	Writes    int       `json:"writes"`
	Stale     bool      `json:"stale"`
	LastError string    `json:"last_error,omitempty"`
	OpenedAt  time.Time `json:"opened_at"`
	TouchedAt time.Time `json:"touched_at"`
}

func sessionsHandler(src SessionLister) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		list := src.Sessions()
		out := make([]sessionView, 0, len(list))
		for _, st := range list {
			out = append(out, sessionView{
				ID:        st.ID,
				ZoneID:    st.ZoneID,
				Name:      st.Name,
				Vertices:  len(st.Points),
				Version:   st.Version,
				Writes:    st.Writes,
				Stale:     st.Stale,
				LastError: st.LastError,
				OpenedAt:  st.OpenedAt,
				TouchedAt: st.TouchedAt,
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	})
}

func authOrLocalOnly(next http.Handler, cfg Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isLoopback(r.RemoteAddr) {
			next.ServeHTTP(w, r)
			return
		}
		if cfg.User == "" || cfg.Pass == "" {
			unauthorized(w)
			return
		}
		u, p, ok := r.BasicAuth()
		if !ok || !secureEq(u, cfg.User) || !secureEq(p, cfg.Pass) {
			unauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="debug"`)
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

func secureEq(u, s string) bool {
	if len(u) != len(s) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(u), []byte(s)) == 1
}

func isLoopback(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	ip := net.ParseIP(strings.TrimSpace(host))
	return ip != nil && ip.IsLoopback()
}
