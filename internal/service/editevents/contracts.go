//go:generate mockgen -source=contracts.go -destination=editevents_mocks_test.go -package=editevents_test

package editevents

import (
	"context"

	"mdelivery-zones/internal/domain"
	"mdelivery-zones/internal/service/editsession"
)

// SessionPort is the subset of the edit session manager driven by front-end events.
type SessionPort interface {
	PushPath(id string, pts []domain.Point) (editsession.Status, error)
	MoveVertex(ctx context.Context, id string, index int, p domain.Point) (editsession.Status, error)
	RemoveVertex(ctx context.Context, id string, index int) (editsession.Status, error)
	Rename(ctx context.Context, id, name string) (editsession.Status, error)
	Save(ctx context.Context, id string) (editsession.Status, error)
	Cancel(ctx context.Context, id string) (*domain.Zone, error)
}
