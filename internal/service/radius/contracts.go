//go:generate mockgen -source=contracts.go -destination=radius_mocks_test.go -package=radius_test

package radius

import (
	"context"

	"mdelivery-zones/internal/domain"
)

// radiusRepository defines storage operations for radius records.
type radiusRepository interface {
	ListByZone(ctx context.Context, zoneID int64) ([]domain.Radius, error)
	Create(ctx context.Context, rd domain.Radius) (*domain.Radius, error)
	Delete(ctx context.Context, zoneID, radiusID int64) (bool, error)
}

// zoneStore is the part of the zone editor the radius editor relies on.
type zoneStore interface {
	Get(ctx context.Context, id int64) (*domain.Zone, error)
	SetDeliveryPoint(ctx context.Context, id int64, p domain.Point, expected *int64) (*domain.Zone, error)
}
