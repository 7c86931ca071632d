package zone

import (
	"context"
	"strings"
	"time"

	"mdelivery-zones/internal/apperr"
	"mdelivery-zones/internal/domain"
	"mdelivery-zones/internal/logx"
	"mdelivery-zones/internal/ports/zonetx"
)

// Service coordinates zone editing and orchestrates repository calls.
type Service struct {
	repo             zoneRepository
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates and configures a zone Service.
func NewService(r zoneRepository, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{repo: r, operationTimeout: timeout, logger: logger}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func normalizePhone(raw string) (string, error) {
	phone := strings.TrimSpace(raw)
	if phone == "" {
		return "", apperr.ErrInvalid
	}
	return phone, nil
}

// List returns the zones of an account.
func (s *Service) List(ctx context.Context, phone string) ([]domain.Zone, error) {
	phone, err := normalizePhone(phone)
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListByAccount(ctx, phone)
}

// Get retrieves a zone by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Zone, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	z, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if z == nil {
		return nil, apperr.ErrNotFound
	}
	return z, nil
}

// Create persists a freshly drawn zone. Name, account and at least three
// vertices are required; nothing is written otherwise.
func (s *Service) Create(ctx context.Context, in domain.NewZone) (*domain.Zone, error) {
	phone, err := normalizePhone(in.AccountPhone)
	if err != nil {
		return nil, err
	}
	if !domain.ValidName(in.Name) || !domain.ValidPath(in.Points) {
		return nil, apperr.ErrInvalid
	}
	in.AccountPhone = phone
	in.Name = strings.TrimSpace(in.Name)
	in.Points = domain.ClonePoints(in.Points)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	z, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.logger.Info("zone created",
		logx.String("event", "zone_created"),
		logx.Int64("zone_id", z.ID),
		logx.String("account_phone", z.AccountPhone),
		logx.Int("vertices", len(z.Points)),
	)
	return z, nil
}

// update locks the zone, checks the expected version and applies write.
func (s *Service) update(
	ctx context.Context,
	id int64,
	expected *int64,
	write func(ctx context.Context, tx zonetx.Repository, z *domain.Zone) (int64, error),
) (*domain.Zone, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var out *domain.Zone
	err := s.repo.WithTx(ctx, func(tx zonetx.Repository) error {
		z, err := tx.LockZone(ctx, id)
		if err != nil {
			return err
		}
		if z == nil {
			return apperr.ErrNotFound
		}
		if expected != nil && *expected != z.Version {
			return apperr.ErrConflict
		}
		version, err := write(ctx, tx, z)
		if err != nil {
			return err
		}
		z.Version = version
		out = z
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdatePoints replaces the vertex path of a zone.
func (s *Service) UpdatePoints(ctx context.Context, u domain.PointsUpdate) (*domain.Zone, error) {
	if !domain.ValidPath(u.Points) {
		return nil, apperr.ErrInvalid
	}
	pts := domain.ClonePoints(u.Points)
	z, err := s.update(ctx, u.ZoneID, u.ExpectedVersion,
		func(ctx context.Context, tx zonetx.Repository, z *domain.Zone) (int64, error) {
			z.Points = pts
			return tx.WritePoints(ctx, z.ID, pts)
		})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("zone points updated",
		logx.Int64("zone_id", z.ID),
		logx.Int64("version", z.Version),
		logx.Int("vertices", len(pts)),
	)
	return z, nil
}

// Rename changes the zone name.
func (s *Service) Rename(ctx context.Context, id int64, name string, expected *int64) (*domain.Zone, error) {
	if !domain.ValidName(name) {
		return nil, apperr.ErrInvalid
	}
	name = strings.TrimSpace(name)
	return s.update(ctx, id, expected,
		func(ctx context.Context, tx zonetx.Repository, z *domain.Zone) (int64, error) {
			z.Name = name
			return tx.WriteName(ctx, z.ID, name)
		})
}

// SetDeliveryPoint stores the center the zone radii are measured from.
func (s *Service) SetDeliveryPoint(ctx context.Context, id int64, p domain.Point, expected *int64) (*domain.Zone, error) {
	if !domain.ValidPoint(p) {
		return nil, apperr.ErrInvalid
	}
	return s.update(ctx, id, expected,
		func(ctx context.Context, tx zonetx.Repository, z *domain.Zone) (int64, error) {
			dp := p
			z.DeliveryPoint = &dp
			return tx.WriteDeliveryPoint(ctx, z.ID, p)
		})
}

// Delete removes a zone together with its radii.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	s.logger.Info("zone deleted", logx.String("event", "zone_deleted"), logx.Int64("zone_id", id))
	return nil
}
