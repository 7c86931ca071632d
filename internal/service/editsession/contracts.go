//go:generate mockgen -source=contracts.go -destination=editsession_mocks_test.go -package=editsession

package editsession

import (
	"context"

	"mdelivery-zones/internal/domain"
)

// zoneStore is the zone editor as seen by an edit session.
type zoneStore interface {
	Get(ctx context.Context, id int64) (*domain.Zone, error)
	UpdatePoints(ctx context.Context, u domain.PointsUpdate) (*domain.Zone, error)
	Rename(ctx context.Context, id int64, name string, expected *int64) (*domain.Zone, error)
}

// Metrics receives sync loop counters.
type Metrics interface {
	SyncWrite(trigger string, err error)
	SkippedTick()
	SessionsActive(n int)
}

type nopMetrics struct{}

func (nopMetrics) SyncWrite(string, error) {}
func (nopMetrics) SkippedTick()            {}
func (nopMetrics) SessionsActive(int)      {}
