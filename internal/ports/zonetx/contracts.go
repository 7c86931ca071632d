package zonetx

import (
	"context"

	"mdelivery-zones/internal/domain"
)

// Repository is the set of zone writes that run inside one transaction.
// Every write bumps the zone version and returns the new value.
type Repository interface {
	LockZone(ctx context.Context, id int64) (*domain.Zone, error)
	WritePoints(ctx context.Context, id int64, points []domain.Point) (int64, error)
	WriteName(ctx context.Context, id int64, name string) (int64, error)
	WriteDeliveryPoint(ctx context.Context, id int64, p domain.Point) (int64, error)
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
