// Package editsession keeps zones in edit mode in sync with storage.
//
// While a session is open its poll loop compares the live path pushed by the
// map front end with the last written path every PollInterval and writes
// only when the rounded path changed. Discrete gestures (vertex move, vertex
// removal, rename) write immediately.
package editsession

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"mdelivery-zones/internal/apperr"
	"mdelivery-zones/internal/domain"
	"mdelivery-zones/internal/geo"
	"mdelivery-zones/internal/logx"
)

// Config tunes the sync loop.
type Config struct {
	PollInterval time.Duration
	Precision    int
	WriteTimeout time.Duration
	IdleTTL      time.Duration
}

// DefaultConfig polls twice a second and rounds vertices to about 0.11 m.
var DefaultConfig = Config{
	PollInterval: 500 * time.Millisecond,
	Precision:    6,
	WriteTimeout: 3 * time.Second,
	IdleTTL:      10 * time.Minute,
}

// Manager owns every open edit session.
type Manager struct {
	zones   zoneStore
	cfg     Config
	logger  logx.Logger
	metrics Metrics
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
	byZone   map[int64]string
	wg       sync.WaitGroup
}

// Option customizes a Manager.
type Option func(*Manager)

// WithMetrics reports sync activity to m.
func WithMetrics(m Metrics) Option {
	return func(mgr *Manager) {
		if m != nil {
			mgr.metrics = m
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(mgr *Manager) { mgr.now = now }
}

// NewManager creates a Manager. Zero config fields take DefaultConfig values.
func NewManager(zones zoneStore, cfg Config, logger logx.Logger, opts ...Option) *Manager {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultConfig.PollInterval
	}
	if cfg.Precision <= 0 {
		cfg.Precision = DefaultConfig.Precision
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultConfig.WriteTimeout
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = DefaultConfig.IdleTTL
	}
	if logger == nil {
		logger = logx.Nop()
	}
	m := &Manager{
		zones:    zones,
		cfg:      cfg,
		logger:   logger,
		metrics:  nopMetrics{},
		now:      time.Now,
		sessions: make(map[string]*Session),
		byZone:   make(map[int64]string),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Config returns the effective configuration.
func (m *Manager) Config() Config { return m.cfg }

// Open puts a zone in edit mode. A session already open for the zone is closed first.
func (m *Manager) Open(ctx context.Context, zoneID int64) (Status, error) {
	z, err := m.zones.Get(ctx, zoneID)
	if err != nil {
		return Status{}, err
	}

	now := m.now()
	sctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		id:        uuid.NewString(),
		zoneID:    z.ID,
		ctx:       sctx,
		cancel:    cancel,
		done:      make(chan struct{}),
		name:      z.Name,
		live:      domain.ClonePoints(z.Points),
		buffer:    domain.ClonePoints(z.Points),
		stored:    domain.ClonePoints(z.Points),
		baseline:  geo.Fingerprint(z.Points, m.cfg.Precision),
		version:   z.Version,
		openedAt:  now,
		touchedAt: now,
		subs:      make(map[chan Status]struct{}),
	}
	s.logger = m.logger.With(logx.String("session_id", s.id), logx.Int64("zone_id", z.ID))

	m.mu.Lock()
	prev := m.sessions[m.byZone[z.ID]]
	m.sessions[s.id] = s
	m.byZone[z.ID] = s.id
	if prev != nil {
		delete(m.sessions, prev.id)
	}
	active := len(m.sessions)
	m.wg.Add(1)
	m.mu.Unlock()

	if prev != nil && prev.close() {
		prev.logger.Info("edit session replaced", logx.String("event", "session_replaced"))
	}
	m.metrics.SessionsActive(active)

	go m.loop(s)

	s.logger.Info("edit session opened",
		logx.String("event", "session_opened"),
		logx.Int("vertices", len(z.Points)),
		logx.Int64("version", z.Version),
	)
	return s.status(), nil
}

func (m *Manager) loop(s *Session) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			m.tick(s)
		}
	}
}

// tick is one poll: write the live path when its fingerprint moved away from the baseline.
func (m *Manager) tick(s *Session) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	if s.closed || s.stale {
		s.mu.Unlock()
		return
	}
	fp := geo.Fingerprint(s.live, m.cfg.Precision)
	if fp == s.baseline {
		s.mu.Unlock()
		m.metrics.SkippedTick()
		return
	}
	s.baseline = fp
	s.buffer = domain.ClonePoints(s.live)
	pts := domain.ClonePoints(s.live)
	s.mu.Unlock()

	_ = m.writePoints(s.ctx, s, TriggerPoll, pts)
}

// writePoints persists pts with the version the session last observed.
// Local state is kept on failure; the error is exposed through Status.
func (m *Manager) writePoints(ctx context.Context, s *Session, trigger string, pts []domain.Point) error {
	s.mu.Lock()
	version := s.version
	s.mu.Unlock()

	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.cfg.WriteTimeout)
	defer cancel()

	z, err := m.zones.UpdatePoints(wctx, domain.PointsUpdate{
		ZoneID:          s.zoneID,
		Points:          pts,
		ExpectedVersion: &version,
	})
	m.record(s, trigger, z, err, func() { s.stored = pts })
	return err
}

func (m *Manager) record(s *Session, trigger string, z *domain.Zone, err error, onSuccess func()) {
	m.metrics.SyncWrite(trigger, err)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err.Error()
		if errors.Is(err, apperr.ErrConflict) {
			s.stale = true
		}
		s.logger.Error("zone sync write failed",
			logx.String("trigger", trigger),
			logx.Int64("version", s.version),
			logx.Bool("stale", s.stale),
			logx.Err(err),
		)
		s.notifyLocked()
		return
	}
	s.version = z.Version
	s.writes++
	s.lastErr = ""
	onSuccess()
	s.logger.Debug("zone synced",
		logx.String("trigger", trigger),
		logx.Int64("version", z.Version),
	)
	s.notifyLocked()
}

func (m *Manager) session(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return s, nil
}

// Get returns the session status.
func (m *Manager) Get(id string) (Status, error) {
	s, err := m.session(id)
	if err != nil {
		return Status{}, err
	}
	return s.status(), nil
}

// Subscribe streams status changes of a session. The channel is closed when
// the session ends or when the returned stop function is called.
func (m *Manager) Subscribe(id string) (<-chan Status, func(), error) {
	s, err := m.session(id)
	if err != nil {
		return nil, nil, err
	}
	ch, stop := s.subscribe()
	return ch, stop, nil
}

// PushPath replaces the path the map widget shows. The next poll decides whether to write.
func (m *Manager) PushPath(id string, pts []domain.Point) (Status, error) {
	if !domain.ValidPath(pts) {
		return Status{}, apperr.ErrInvalid
	}
	s, err := m.session(id)
	if err != nil {
		return Status{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Status{}, apperr.ErrNotFound
	}
	s.live = domain.ClonePoints(pts)
	s.touchedAt = m.now()
	s.notifyLocked()
	return s.statusLocked(), nil
}

// gesture applies edit to the live path and writes the result immediately.
// The baseline follows the written path so the poll loop does not repeat it.
func (m *Manager) gesture(
	ctx context.Context,
	id, trigger string,
	edit func(live []domain.Point) ([]domain.Point, error),
) (Status, error) {
	s, err := m.session(id)
	if err != nil {
		return Status{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return Status{}, apperr.ErrNotFound
	}
	if s.stale {
		s.mu.Unlock()
		return Status{}, apperr.ErrConflict
	}
	pts, err := edit(domain.ClonePoints(s.live))
	if err != nil {
		s.mu.Unlock()
		return Status{}, err
	}
	s.live = pts
	s.buffer = domain.ClonePoints(pts)
	s.baseline = geo.Fingerprint(pts, m.cfg.Precision)
	s.touchedAt = m.now()
	s.mu.Unlock()

	if err := m.writePoints(ctx, s, trigger, domain.ClonePoints(pts)); err != nil {
		return s.status(), err
	}
	return s.status(), nil
}

// MoveVertex is the drag-end gesture.
func (m *Manager) MoveVertex(ctx context.Context, id string, index int, p domain.Point) (Status, error) {
	if !domain.ValidPoint(p) {
		return Status{}, apperr.ErrInvalid
	}
	return m.gesture(ctx, id, TriggerMove, func(live []domain.Point) ([]domain.Point, error) {
		if index < 0 || index >= len(live) {
			return nil, apperr.ErrInvalid
		}
		live[index] = p
		return live, nil
	})
}

// RemoveVertex deletes one vertex. A zone never drops below three vertices.
func (m *Manager) RemoveVertex(ctx context.Context, id string, index int) (Status, error) {
	return m.gesture(ctx, id, TriggerRemove, func(live []domain.Point) ([]domain.Point, error) {
		if len(live) <= domain.MinZoneVertices {
			return nil, apperr.ErrVertexFloor
		}
		if index < 0 || index >= len(live) {
			return nil, apperr.ErrInvalid
		}
		return append(live[:index], live[index+1:]...), nil
	})
}

// Rename writes a new zone name immediately.
func (m *Manager) Rename(ctx context.Context, id, name string) (Status, error) {
	if !domain.ValidName(name) {
		return Status{}, apperr.ErrInvalid
	}
	s, err := m.session(id)
	if err != nil {
		return Status{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return Status{}, apperr.ErrNotFound
	}
	if s.stale {
		s.mu.Unlock()
		return Status{}, apperr.ErrConflict
	}
	version := s.version
	s.touchedAt = m.now()
	s.mu.Unlock()

	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.cfg.WriteTimeout)
	defer cancel()
	z, err := m.zones.Rename(wctx, s.zoneID, name, &version)
	m.record(s, TriggerRename, z, err, func() { s.name = z.Name })
	if err != nil {
		return s.status(), err
	}
	return s.status(), nil
}

// Save writes the live path if it differs from the stored one and ends edit mode.
// On a failed write the session stays open.
func (m *Manager) Save(ctx context.Context, id string) (Status, error) {
	s, err := m.session(id)
	if err != nil {
		return Status{}, err
	}

	s.writeMu.Lock()
	s.mu.Lock()
	if s.stale {
		s.mu.Unlock()
		s.writeMu.Unlock()
		return Status{}, apperr.ErrConflict
	}
	pts := domain.ClonePoints(s.live)
	dirty := geo.Fingerprint(pts, m.cfg.Precision) != geo.Fingerprint(s.stored, m.cfg.Precision)
	s.buffer = domain.ClonePoints(pts)
	s.mu.Unlock()

	if dirty {
		if err := m.writePoints(ctx, s, TriggerSave, pts); err != nil {
			s.writeMu.Unlock()
			return s.status(), err
		}
	}
	s.writeMu.Unlock()

	m.close(s)
	s.logger.Info("edit session saved", logx.String("event", "session_saved"), logx.Bool("written", dirty))
	return s.status(), nil
}

// Cancel ends edit mode without writing and returns the stored zone.
func (m *Manager) Cancel(ctx context.Context, id string) (*domain.Zone, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}
	m.close(s)
	s.logger.Info("edit session cancelled", logx.String("event", "session_cancelled"))
	return m.zones.Get(ctx, s.zoneID)
}

// Close ends a session without writing.
func (m *Manager) Close(id string) error {
	s, err := m.session(id)
	if err != nil {
		return err
	}
	m.close(s)
	return nil
}

func (m *Manager) close(s *Session) {
	m.mu.Lock()
	if cur, ok := m.sessions[s.id]; ok && cur == s {
		delete(m.sessions, s.id)
		if m.byZone[s.zoneID] == s.id {
			delete(m.byZone, s.zoneID)
		}
	}
	active := len(m.sessions)
	m.mu.Unlock()

	if s.close() {
		m.metrics.SessionsActive(active)
		s.logger.Debug("edit session closed")
	}
}

// Reap closes sessions idle for longer than IdleTTL and returns how many it closed.
func (m *Manager) Reap(now time.Time) int {
	m.mu.Lock()
	all := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		all = append(all, s)
	}
	m.mu.Unlock()

	n := 0
	for _, s := range all {
		s.mu.Lock()
		idle := now.Sub(s.touchedAt) > m.cfg.IdleTTL
		s.mu.Unlock()
		if idle {
			m.close(s)
			s.logger.Info("edit session expired", logx.String("event", "session_expired"))
			n++
		}
	}
	return n
}

// Sessions returns a snapshot of every open session, oldest first.
func (m *Manager) Sessions() []Status {
	m.mu.Lock()
	all := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		all = append(all, s)
	}
	m.mu.Unlock()

	out := make([]Status, 0, len(all))
	for _, s := range all {
		out = append(out, s.status())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OpenedAt.Before(out[j].OpenedAt) })
	return out
}

// Active returns the number of open sessions.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Shutdown closes every session and waits for their poll loops to stop.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	all := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		all = append(all, s)
	}
	m.mu.Unlock()

	for _, s := range all {
		m.close(s)
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
