package handlers_test

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"mdelivery-zones/internal/domain"
	"mdelivery-zones/internal/logx"
	"mdelivery-zones/internal/service/editsession"
	"mdelivery-zones/internal/service/radius"
)

func testLogger() logx.Logger { return logx.Nop() }

func withParams(req *http.Request, kv ...string) *http.Request {
	rc := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rc.URLParams.Add(kv[i], kv[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))
}

type stubZoneUsecase struct {
	listFn         func(ctx context.Context, phone string) ([]domain.Zone, error)
	getFn          func(ctx context.Context, id int64) (*domain.Zone, error)
	createFn       func(ctx context.Context, in domain.NewZone) (*domain.Zone, error)
	updatePointsFn func(ctx context.Context, u domain.PointsUpdate) (*domain.Zone, error)
	renameFn       func(ctx context.Context, id int64, name string, expected *int64) (*domain.Zone, error)
	deleteFn       func(ctx context.Context, id int64) error
}

func (s *stubZoneUsecase) List(ctx context.Context, phone string) ([]domain.Zone, error) {
	return s.listFn(ctx, phone)
}

func (s *stubZoneUsecase) Get(ctx context.Context, id int64) (*domain.Zone, error) {
	return s.getFn(ctx, id)
}

func (s *stubZoneUsecase) Create(ctx context.Context, in domain.NewZone) (*domain.Zone, error) {
	return s.createFn(ctx, in)
}

func (s *stubZoneUsecase) UpdatePoints(ctx context.Context, u domain.PointsUpdate) (*domain.Zone, error) {
	return s.updatePointsFn(ctx, u)
}

func (s *stubZoneUsecase) Rename(ctx context.Context, id int64, name string, expected *int64) (*domain.Zone, error) {
	return s.renameFn(ctx, id, name, expected)
}

func (s *stubZoneUsecase) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubRadiusUsecase struct {
	boardFn    func(ctx context.Context, phone string, zoneID int64) (*domain.RadiusBoard, error)
	createFn   func(ctx context.Context, phone string, zoneID int64, in radius.Input) (*radius.Created, error)
	deleteFn   func(ctx context.Context, phone string, zoneID, radiusID int64) (*domain.RadiusBoard, error)
	setPointFn func(ctx context.Context, zoneID int64, p domain.Point) (*domain.Zone, error)
	quoteFn    func(ctx context.Context, zoneID int64, p domain.Point, at time.Time) (*domain.Quote, error)
}

func (s *stubRadiusUsecase) Board(ctx context.Context, phone string, zoneID int64) (*domain.RadiusBoard, error) {
	return s.boardFn(ctx, phone, zoneID)
}

func (s *stubRadiusUsecase) Create(ctx context.Context, phone string, zoneID int64, in radius.Input) (*radius.Created, error) {
	return s.createFn(ctx, phone, zoneID, in)
}

func (s *stubRadiusUsecase) Delete(ctx context.Context, phone string, zoneID, radiusID int64) (*domain.RadiusBoard, error) {
	return s.deleteFn(ctx, phone, zoneID, radiusID)
}

func (s *stubRadiusUsecase) SetDeliveryPoint(ctx context.Context, zoneID int64, p domain.Point) (*domain.Zone, error) {
	return s.setPointFn(ctx, zoneID, p)
}

func (s *stubRadiusUsecase) Quote(ctx context.Context, zoneID int64, p domain.Point, at time.Time) (*domain.Quote, error) {
	return s.quoteFn(ctx, zoneID, p, at)
}

type stubSessionUsecase struct {
	openFn      func(ctx context.Context, zoneID int64) (editsession.Status, error)
	getFn       func(id string) (editsession.Status, error)
	subscribeFn func(id string) (<-chan editsession.Status, func(), error)
	pushPathFn  func(id string, pts []domain.Point) (editsession.Status, error)
	moveFn      func(ctx context.Context, id string, index int, p domain.Point) (editsession.Status, error)
	removeFn    func(ctx context.Context, id string, index int) (editsession.Status, error)
	renameFn    func(ctx context.Context, id, name string) (editsession.Status, error)
	saveFn      func(ctx context.Context, id string) (editsession.Status, error)
	cancelFn    func(ctx context.Context, id string) (*domain.Zone, error)
}

func (s *stubSessionUsecase) Open(ctx context.Context, zoneID int64) (editsession.Status, error) {
	return s.openFn(ctx, zoneID)
}

func (s *stubSessionUsecase) Get(id string) (editsession.Status, error) { return s.getFn(id) }

func (s *stubSessionUsecase) Subscribe(id string) (<-chan editsession.Status, func(), error) {
	return s.subscribeFn(id)
}

func (s *stubSessionUsecase) PushPath(id string, pts []domain.Point) (editsession.Status, error) {
	return s.pushPathFn(id, pts)
}

func (s *stubSessionUsecase) MoveVertex(ctx context.Context, id string, index int, p domain.Point) (editsession.Status, error) {
	return s.moveFn(ctx, id, index, p)
}

func (s *stubSessionUsecase) RemoveVertex(ctx context.Context, id string, index int) (editsession.Status, error) {
	return s.removeFn(ctx, id, index)
}

func (s *stubSessionUsecase) Rename(ctx context.Context, id, name string) (editsession.Status, error) {
	return s.renameFn(ctx, id, name)
}

func (s *stubSessionUsecase) Save(ctx context.Context, id string) (editsession.Status, error) {
	return s.saveFn(ctx, id)
}

func (s *stubSessionUsecase) Cancel(ctx context.Context, id string) (*domain.Zone, error) {
	return s.cancelFn(ctx, id)
}
