package editsession

import (
	"context"
	"sync"
	"time"

	"mdelivery-zones/internal/domain"
	"mdelivery-zones/internal/logx"
)

// Write triggers, reported to metrics and logs.
const (
	TriggerPoll   = "poll"
	TriggerMove   = "move"
	TriggerRemove = "remove"
	TriggerRename = "rename"
	TriggerSave   = "save"
)

// Status is a snapshot of an edit session.
type Status struct {
	ID        string
	ZoneID    int64
	Name      string
	Points    []domain.Point
	Version   int64
	Writes    int
	LastError string
	Stale     bool
	Closed    bool
	OpenedAt  time.Time
	TouchedAt time.Time
}

// Session is one zone in edit mode.
//
// live is the path the map widget currently shows, buffer is the last path
// the session accepted for writing and stored is the last path known to be
// persisted. baseline is the fingerprint of buffer.
type Session struct {
	id     string
	zoneID int64
	logger logx.Logger

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	// writeMu serializes storage writes of the poll loop and gestures.
	writeMu sync.Mutex

	mu        sync.Mutex
	name      string
	live      []domain.Point
	buffer    []domain.Point
	stored    []domain.Point
	baseline  string
	version   int64
	writes    int
	lastErr   string
	stale     bool
	closed    bool
	openedAt  time.Time
	touchedAt time.Time
	subs      map[chan Status]struct{}
}

// Done is closed when the session ends.
func (s *Session) Done() <-chan struct{} { return s.done }

// ID returns the session id.
func (s *Session) ID() string { return s.id }

func (s *Session) statusLocked() Status {
	return Status{
		ID:        s.id,
		ZoneID:    s.zoneID,
		Name:      s.name,
		Points:    domain.ClonePoints(s.buffer),
		Version:   s.version,
		Writes:    s.writes,
		LastError: s.lastErr,
		Stale:     s.stale,
		Closed:    s.closed,
		OpenedAt:  s.openedAt,
		TouchedAt: s.touchedAt,
	}
}

func (s *Session) status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

// notifyLocked pushes the latest status to subscribers, replacing an unread one.
func (s *Session) notifyLocked() {
	if len(s.subs) == 0 {
		return
	}
	st := s.statusLocked()
	for ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- st:
		default:
		}
	}
}

func (s *Session) notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifyLocked()
}

func (s *Session) subscribe() (<-chan Status, func()) {
	ch := make(chan Status, 1)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	s.subs[ch] = struct{}{}
	ch <- s.statusLocked()
	s.mu.Unlock()

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[ch]; ok {
			delete(s.subs, ch)
			close(ch)
		}
	}
}

// close ends edit mode: stops the poll loop, clears the baseline and
// releases every subscriber. It reports false when already closed.
func (s *Session) close() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.closed = true
	s.baseline = ""
	s.cancel()
	for ch := range s.subs {
		close(ch)
	}
	s.subs = nil
	close(s.done)
	return true
}
