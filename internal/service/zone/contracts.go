//go:generate mockgen -source=contracts.go -destination=zone_mocks_test.go -package=zone_test

package zone

import (
	"context"

	"mdelivery-zones/internal/domain"
	"mdelivery-zones/internal/ports/zonetx"
)

// zoneRepository defines storage operations required by the zone editor.
type zoneRepository interface {
	Get(ctx context.Context, id int64) (*domain.Zone, error)
	ListByAccount(ctx context.Context, phone string) ([]domain.Zone, error)
	Create(ctx context.Context, in domain.NewZone) (*domain.Zone, error)
	Delete(ctx context.Context, id int64) (bool, error)
	WithTx(ctx context.Context, fn func(tx zonetx.Repository) error) error
}
