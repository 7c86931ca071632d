package editevents

import (
	"context"
	"errors"
	"fmt"

	"mdelivery-zones/internal/apperr"
	"mdelivery-zones/internal/logx"
)

// Processor dispatches edit events to the session manager.
type Processor struct {
	sessions SessionPort
	factory  *actionFactory
	logger   logx.Logger
}

// NewProcessor creates a Processor.
func NewProcessor(sessions SessionPort, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	p := &Processor{sessions: sessions, logger: logger}
	p.factory = newActionFactory(p)
	return p
}

// Handle processes a single Event. Unknown types are ignored.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	fn, ok := p.factory.get(e.Type)
	if !ok {
		p.logger.Warn("unknown edit event type",
			logx.String("session_id", e.SessionID),
			logx.String("type", e.Type),
		)
		return nil
	}
	return fn(ctx, e)
}

// Permanent reports whether redelivering the event cannot succeed:
// the session is gone, the event is malformed or the session went stale.
func Permanent(err error) bool {
	return errors.Is(err, apperr.ErrNotFound) ||
		errors.Is(err, apperr.ErrInvalid) ||
		errors.Is(err, apperr.ErrConflict)
}

func (p *Processor) onPath(_ context.Context, e Event) error {
	_, err := p.sessions.PushPath(e.SessionID, e.Points)
	return err
}

func (p *Processor) onMove(ctx context.Context, e Event) error {
	if e.Index == nil || e.Point == nil {
		return fmt.Errorf("%w: move needs index and point", apperr.ErrInvalid)
	}
	_, err := p.sessions.MoveVertex(ctx, e.SessionID, *e.Index, *e.Point)
	return err
}

func (p *Processor) onRemove(ctx context.Context, e Event) error {
	if e.Index == nil {
		return fmt.Errorf("%w: remove needs index", apperr.ErrInvalid)
	}
	_, err := p.sessions.RemoveVertex(ctx, e.SessionID, *e.Index)
	if errors.Is(err, apperr.ErrVertexFloor) {
		p.logger.Warn("vertex removal refused",
			logx.String("session_id", e.SessionID),
			logx.Int("index", *e.Index),
		)
	}
	return err
}

func (p *Processor) onRename(ctx context.Context, e Event) error {
	_, err := p.sessions.Rename(ctx, e.SessionID, e.Name)
	return err
}

func (p *Processor) onSave(ctx context.Context, e Event) error {
	_, err := p.sessions.Save(ctx, e.SessionID)
	return err
}

func (p *Processor) onCancel(ctx context.Context, e Event) error {
	_, err := p.sessions.Cancel(ctx, e.SessionID)
	return err
}
