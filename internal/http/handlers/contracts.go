package handlers

import (
	"context"
	"time"

	"mdelivery-zones/internal/domain"
	"mdelivery-zones/internal/service/editsession"
	"mdelivery-zones/internal/service/radius"
)

type zoneUsecase interface {
	List(ctx context.Context, phone string) ([]domain.Zone, error)
	Get(ctx context.Context, id int64) (*domain.Zone, error)
	Create(ctx context.Context, in domain.NewZone) (*domain.Zone, error)
	UpdatePoints(ctx context.Context, u domain.PointsUpdate) (*domain.Zone, error)
	Rename(ctx context.Context, id int64, name string, expected *int64) (*domain.Zone, error)
	Delete(ctx context.Context, id int64) error
}

type radiusUsecase interface {
	Board(ctx context.Context, phone string, zoneID int64) (*domain.RadiusBoard, error)
	Create(ctx context.Context, phone string, zoneID int64, in radius.Input) (*radius.Created, error)
	Delete(ctx context.Context, phone string, zoneID, radiusID int64) (*domain.RadiusBoard, error)
	SetDeliveryPoint(ctx context.Context, zoneID int64, p domain.Point) (*domain.Zone, error)
	Quote(ctx context.Context, zoneID int64, p domain.Point, at time.Time) (*domain.Quote, error)
}

type sessionUsecase interface {
	Open(ctx context.Context, zoneID int64) (editsession.Status, error)
	Get(id string) (editsession.Status, error)
	Subscribe(id string) (<-chan editsession.Status, func(), error)
	PushPath(id string, pts []domain.Point) (editsession.Status, error)
	MoveVertex(ctx context.Context, id string, index int, p domain.Point) (editsession.Status, error)
	RemoveVertex(ctx context.Context, id string, index int) (editsession.Status, error)
	Rename(ctx context.Context, id, name string) (editsession.Status, error)
	Save(ctx context.Context, id string) (editsession.Status, error)
	Cancel(ctx context.Context, id string) (*domain.Zone, error)
}
