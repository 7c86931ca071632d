package zone_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"mdelivery-zones/internal/apperr"
	"mdelivery-zones/internal/domain"
	"mdelivery-zones/internal/logx"
	"mdelivery-zones/internal/ports/zonetx"
	"mdelivery-zones/internal/service/zone"
	testlog "mdelivery-zones/internal/testutil"
)

func newCtrl(t *testing.T) *gomock.Controller {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return ctrl
}

var centro = []domain.Point{
	{Lat: -15.0, Lng: -47.0},
	{Lat: -15.1, Lng: -47.0},
	{Lat: -15.1, Lng: -47.1},
}

type stubTx struct {
	lockFn  func(context.Context, int64) (*domain.Zone, error)
	ptsFn   func(context.Context, int64, []domain.Point) (int64, error)
	nameFn  func(context.Context, int64, string) (int64, error)
	pointFn func(context.Context, int64, domain.Point) (int64, error)
}

func (s *stubTx) LockZone(ctx context.Context, id int64) (*domain.Zone, error) {
	if s.lockFn == nil {
		return nil, nil
	}
	return s.lockFn(ctx, id)
}

func (s *stubTx) WritePoints(ctx context.Context, id int64, pts []domain.Point) (int64, error) {
	if s.ptsFn == nil {
		return 0, errors.New("stubTx: unexpected WritePoints")
	}
	return s.ptsFn(ctx, id, pts)
}

func (s *stubTx) WriteName(ctx context.Context, id int64, name string) (int64, error) {
	if s.nameFn == nil {
		return 0, errors.New("stubTx: unexpected WriteName")
	}
	return s.nameFn(ctx, id, name)
}

func (s *stubTx) WriteDeliveryPoint(ctx context.Context, id int64, p domain.Point) (int64, error) {
	if s.pointFn == nil {
		return 0, errors.New("stubTx: unexpected WriteDeliveryPoint")
	}
	return s.pointFn(ctx, id, p)
}

func withTx(tx *stubTx) func(context.Context, func(zonetx.Repository) error) error {
	return func(_ context.Context, fn func(zonetx.Repository) error) error {
		return fn(tx)
	}
}

func newTestService(repo *MockzoneRepository) *zone.Service {
	return zone.NewService(repo, 3*time.Second, logx.Nop())
}

func TestService_Create_Centro(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	repo := NewMockzoneRepository(ctrl)
	rec := testlog.New()
	svc := zone.NewService(repo, time.Second, rec.Logger())

	repo.EXPECT().
		Create(gomock.Any(), domain.NewZone{Name: "Centro", Points: centro, AccountPhone: "+5561999990000"}).
		Return(&domain.Zone{ID: 1, Name: "Centro", Points: centro, AccountPhone: "+5561999990000", Version: 1}, nil).
		Times(1)

	z, err := svc.Create(context.Background(), domain.NewZone{
		Name:         "  Centro ",
		Points:       centro,
		AccountPhone: " +5561999990000 ",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), z.ID)
	require.Len(t, z.Points, 3)
	require.True(t, rec.Has("info", "zone created"))
}

func TestService_Create_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   domain.NewZone
	}{
		{name: "empty name", in: domain.NewZone{Name: " ", Points: centro, AccountPhone: "+55"}},
		{name: "two points", in: domain.NewZone{Name: "Centro", Points: centro[:2], AccountPhone: "+55"}},
		{name: "no phone", in: domain.NewZone{Name: "Centro", Points: centro}},
		{name: "bad latitude", in: domain.NewZone{Name: "Centro", AccountPhone: "+55",
			Points: []domain.Point{{Lat: 91}, {Lat: 0}, {Lat: 1}}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := newCtrl(t)
			repo := NewMockzoneRepository(ctrl)

			_, err := newTestService(repo).Create(context.Background(), tc.in)
			require.ErrorIs(t, err, apperr.ErrInvalid)
		})
	}
}

func TestService_Get(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	repo := NewMockzoneRepository(ctrl)
	svc := newTestService(repo)

	repo.EXPECT().Get(gomock.Any(), int64(5)).Return(&domain.Zone{ID: 5}, nil)
	repo.EXPECT().Get(gomock.Any(), int64(6)).Return(nil, nil)

	z, err := svc.Get(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, int64(5), z.ID)

	_, err = svc.Get(context.Background(), 6)
	require.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Get(context.Background(), 0)
	require.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestService_List(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	repo := NewMockzoneRepository(ctrl)
	svc := newTestService(repo)

	repo.EXPECT().ListByAccount(gomock.Any(), "+55").Return([]domain.Zone{{ID: 1}, {ID: 2}}, nil)

	list, err := svc.List(context.Background(), " +55")
	require.NoError(t, err)
	require.Len(t, list, 2)

	_, err = svc.List(context.Background(), "")
	require.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestService_UpdatePoints_MovesFirstVertex(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	repo := NewMockzoneRepository(ctrl)
	svc := newTestService(repo)

	moved := domain.ClonePoints(centro)
	moved[0] = domain.Point{Lat: -15.05, Lng: -47.0}

	var written []domain.Point
	tx := &stubTx{
		lockFn: func(_ context.Context, id int64) (*domain.Zone, error) {
			return &domain.Zone{ID: id, Name: "Centro", Points: domain.ClonePoints(centro), Version: 1}, nil
		},
		ptsFn: func(_ context.Context, id int64, pts []domain.Point) (int64, error) {
			require.Equal(t, int64(1), id)
			written = pts
			return 2, nil
		},
	}
	repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(withTx(tx)).Times(1)

	v := int64(1)
	z, err := svc.UpdatePoints(context.Background(), domain.PointsUpdate{ZoneID: 1, Points: moved, ExpectedVersion: &v})
	require.NoError(t, err)
	require.Equal(t, int64(2), z.Version)
	require.Equal(t, moved, z.Points)
	require.Equal(t, domain.Point{Lat: -15.05, Lng: -47.0}, written[0])

	moved[1] = domain.Point{}
	require.NotEqual(t, moved[1], z.Points[1], "service must not alias the caller slice")
}

func TestService_UpdatePoints_VersionConflict(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	repo := NewMockzoneRepository(ctrl)
	svc := newTestService(repo)

	tx := &stubTx{
		lockFn: func(_ context.Context, id int64) (*domain.Zone, error) {
			return &domain.Zone{ID: id, Version: 4}, nil
		},
	}
	repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(withTx(tx))

	v := int64(3)
	_, err := svc.UpdatePoints(context.Background(), domain.PointsUpdate{ZoneID: 1, Points: centro, ExpectedVersion: &v})
	require.ErrorIs(t, err, apperr.ErrConflict)
}

func TestService_UpdatePoints_LastWriteWinsWithoutVersion(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	repo := NewMockzoneRepository(ctrl)
	svc := newTestService(repo)

	tx := &stubTx{
		lockFn: func(_ context.Context, id int64) (*domain.Zone, error) {
			return &domain.Zone{ID: id, Version: 9}, nil
		},
		ptsFn: func(context.Context, int64, []domain.Point) (int64, error) { return 10, nil },
	}
	repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(withTx(tx))

	z, err := svc.UpdatePoints(context.Background(), domain.PointsUpdate{ZoneID: 1, Points: centro})
	require.NoError(t, err)
	require.Equal(t, int64(10), z.Version)
}

func TestService_UpdatePoints_Errors(t *testing.T) {
	t.Parallel()

	t.Run("too few points never reaches storage", func(t *testing.T) {
		t.Parallel()
		repo := NewMockzoneRepository(newCtrl(t))
		_, err := newTestService(repo).UpdatePoints(context.Background(), domain.PointsUpdate{ZoneID: 1, Points: centro[:2]})
		require.ErrorIs(t, err, apperr.ErrInvalid)
	})

	t.Run("missing zone", func(t *testing.T) {
		t.Parallel()
		repo := NewMockzoneRepository(newCtrl(t))
		repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(withTx(&stubTx{}))
		_, err := newTestService(repo).UpdatePoints(context.Background(), domain.PointsUpdate{ZoneID: 1, Points: centro})
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("write failure", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("db down")
		repo := NewMockzoneRepository(newCtrl(t))
		repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(withTx(&stubTx{
			lockFn: func(_ context.Context, id int64) (*domain.Zone, error) { return &domain.Zone{ID: id}, nil },
			ptsFn:  func(context.Context, int64, []domain.Point) (int64, error) { return 0, boom },
		}))
		_, err := newTestService(repo).UpdatePoints(context.Background(), domain.PointsUpdate{ZoneID: 1, Points: centro})
		require.ErrorIs(t, err, boom)
	})
}

func TestService_Rename(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	repo := NewMockzoneRepository(ctrl)
	svc := newTestService(repo)

	_, err := svc.Rename(context.Background(), 1, "   ", nil)
	require.ErrorIs(t, err, apperr.ErrInvalid)

	repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(withTx(&stubTx{
		lockFn: func(_ context.Context, id int64) (*domain.Zone, error) {
			return &domain.Zone{ID: id, Name: "Centro", Version: 1}, nil
		},
		nameFn: func(_ context.Context, _ int64, name string) (int64, error) {
			require.Equal(t, "Centro Sul", name)
			return 2, nil
		},
	}))

	z, err := svc.Rename(context.Background(), 1, " Centro Sul ", nil)
	require.NoError(t, err)
	require.Equal(t, "Centro Sul", z.Name)
	require.Equal(t, int64(2), z.Version)
}

func TestService_SetDeliveryPoint(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	repo := NewMockzoneRepository(ctrl)
	svc := newTestService(repo)

	_, err := svc.SetDeliveryPoint(context.Background(), 1, domain.Point{Lat: 100}, nil)
	require.ErrorIs(t, err, apperr.ErrInvalid)

	p := domain.Point{Lat: -15.05, Lng: -47.05}
	repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(withTx(&stubTx{
		lockFn:  func(_ context.Context, id int64) (*domain.Zone, error) { return &domain.Zone{ID: id, Version: 1}, nil },
		pointFn: func(context.Context, int64, domain.Point) (int64, error) { return 2, nil },
	}))

	z, err := svc.SetDeliveryPoint(context.Background(), 1, p, nil)
	require.NoError(t, err)
	require.NotNil(t, z.DeliveryPoint)
	require.Equal(t, p, *z.DeliveryPoint)
}

func TestService_Delete(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	repo := NewMockzoneRepository(ctrl)
	svc := newTestService(repo)

	repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(true, nil)
	repo.EXPECT().Delete(gomock.Any(), int64(2)).Return(false, nil)

	require.NoError(t, svc.Delete(context.Background(), 1))
	require.ErrorIs(t, svc.Delete(context.Background(), 2), apperr.ErrNotFound)
	require.ErrorIs(t, svc.Delete(context.Background(), -1), apperr.ErrInvalid)
}
