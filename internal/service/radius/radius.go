package radius

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"mdelivery-zones/internal/apperr"
	"mdelivery-zones/internal/domain"
	"mdelivery-zones/internal/geo"
	"mdelivery-zones/internal/logx"
	"mdelivery-zones/internal/money"
)

// Input is the radius form as typed by the operator.
type Input struct {
	Radius   string
	Fee      string
	NightFee string
}

// Created is the result of adding a radius: the new record and the re-sorted list.
type Created struct {
	Radius domain.Radius
	Radii  []domain.Radius
}

// Service manages the delivery center and the fee radii of a zone.
type Service struct {
	radii            radiusRepository
	zones            zoneStore
	night            NightWindow
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates a radius Service.
func NewService(r radiusRepository, zones zoneStore, night NightWindow, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{radii: r, zones: zones, night: night, operationTimeout: timeout, logger: logger}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// ownedZone loads the zone and hides zones of other accounts. An empty phone skips the check.
func (s *Service) ownedZone(ctx context.Context, phone string, zoneID int64) (*domain.Zone, error) {
	z, err := s.zones.Get(ctx, zoneID)
	if err != nil {
		return nil, err
	}
	if phone = strings.TrimSpace(phone); phone != "" && z.AccountPhone != phone {
		return nil, apperr.ErrNotFound
	}
	return z, nil
}

func (s *Service) sortedRadii(ctx context.Context, zoneID int64) ([]domain.Radius, error) {
	list, err := s.radii.ListByZone(ctx, zoneID)
	if err != nil {
		return nil, err
	}
	domain.SortRadii(list)
	return list, nil
}

// Board loads the zone, its delivery center and its radii, smallest first.
func (s *Service) Board(ctx context.Context, phone string, zoneID int64) (*domain.RadiusBoard, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	z, err := s.ownedZone(ctx, phone, zoneID)
	if err != nil {
		return nil, err
	}
	list, err := s.sortedRadii(ctx, z.ID)
	if err != nil {
		return nil, err
	}
	return &domain.RadiusBoard{Zone: *z, Center: geo.DeliveryCenter(*z), Radii: list}, nil
}

func parseInput(in Input) (domain.Radius, error) {
	raw := strings.TrimSpace(in.Radius)
	if raw == "" || strings.TrimSpace(in.Fee) == "" || strings.TrimSpace(in.NightFee) == "" {
		return domain.Radius{}, fmt.Errorf("%w: radius, fee and night fee are required", apperr.ErrInvalid)
	}
	meters, err := strconv.Atoi(raw)
	if err != nil || meters <= 0 {
		return domain.Radius{}, fmt.Errorf("%w: radius %q must be a positive number of meters", apperr.ErrInvalid, in.Radius)
	}
	fee, err := money.Parse(in.Fee)
	if err != nil {
		return domain.Radius{}, err
	}
	night, err := money.Parse(in.NightFee)
	if err != nil {
		return domain.Radius{}, err
	}
	return domain.Radius{Meters: meters, Fee: fee, NightFee: night}, nil
}

// Create adds a radius to the zone and returns the list re-sorted.
func (s *Service) Create(ctx context.Context, phone string, zoneID int64, in Input) (*Created, error) {
	rd, err := parseInput(in)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	z, err := s.ownedZone(ctx, phone, zoneID)
	if err != nil {
		return nil, err
	}
	rd.ZoneID = z.ID
	rd.AccountPhone = z.AccountPhone

	created, err := s.radii.Create(ctx, rd)
	if err != nil {
		return nil, err
	}
	list, err := s.sortedRadii(ctx, z.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("radius created",
		logx.String("event", "radius_created"),
		logx.Int64("zone_id", z.ID),
		logx.Int64("radius_id", created.ID),
		logx.Int("meters", created.Meters),
		logx.String("fee", money.Format(created.Fee)),
		logx.String("night_fee", money.Format(created.NightFee)),
	)
	return &Created{Radius: *created, Radii: list}, nil
}

// Delete removes exactly one radius and reloads the whole board.
func (s *Service) Delete(ctx context.Context, phone string, zoneID, radiusID int64) (*domain.RadiusBoard, error) {
	if radiusID <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	z, err := s.ownedZone(ctx, phone, zoneID)
	if err != nil {
		return nil, err
	}
	ok, err := s.radii.Delete(ctx, z.ID, radiusID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrNotFound
	}
	s.logger.Info("radius deleted",
		logx.String("event", "radius_deleted"),
		logx.Int64("zone_id", z.ID),
		logx.Int64("radius_id", radiusID),
	)
	return s.Board(ctx, phone, zoneID)
}

// SetDeliveryPoint moves the center the radii are drawn around.
func (s *Service) SetDeliveryPoint(ctx context.Context, zoneID int64, p domain.Point) (*domain.Zone, error) {
	return s.zones.SetDeliveryPoint(ctx, zoneID, p, nil)
}

// Quote resolves the fee for delivering to p at the given time: the smallest
// radius that reaches p wins, and its night fee applies inside the night window.
func (s *Service) Quote(ctx context.Context, zoneID int64, p domain.Point, at time.Time) (*domain.Quote, error) {
	if !domain.ValidPoint(p) {
		return nil, apperr.ErrInvalid
	}
	board, err := s.Board(ctx, "", zoneID)
	if err != nil {
		return nil, err
	}

	distance := geo.DistanceMeters(board.Center, p)
	for _, rd := range board.Radii {
		if float64(rd.Meters) < distance {
			continue
		}
		q := &domain.Quote{
			ZoneID:   zoneID,
			Distance: distance,
			Radius:   rd,
			Night:    s.night.Contains(at),
			Fee:      rd.Fee,
			Inside:   geo.PolygonContains(board.Zone.Points, p),
		}
		if q.Night {
			q.Fee = rd.NightFee
		}
		return q, nil
	}
	return nil, fmt.Errorf("%w: no radius reaches %.0f m", apperr.ErrNotFound, distance)
}
