//go:build integration

package app_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"mdelivery-zones/internal/app"
	"mdelivery-zones/internal/config"
	"mdelivery-zones/internal/domain"
	"mdelivery-zones/internal/service/editsession"
	"mdelivery-zones/internal/service/zone"
)

func startPostgres(t *testing.T, ctx context.Context) {
	t.Helper()

	pg, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("zones_app"),
		postgres.WithUsername("app_user"),
		postgres.WithPassword("app_pass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(context.Background()) })

	host, err := pg.Host(ctx)
	require.NoError(t, err)
	port, err := pg.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	t.Setenv("POSTGRES_HOST", host)
	t.Setenv("POSTGRES_PORT", port.Port())
	t.Setenv("POSTGRES_USER", "app_user")
	t.Setenv("POSTGRES_PASSWORD", "app_pass")
	t.Setenv("POSTGRES_DB", "zones_app")
	t.Setenv("KAFKA_BROKERS", "")

	oldArgs := os.Args
	os.Args = []string{"service-zones"}
	t.Cleanup(func() { os.Args = oldArgs })
}

func TestMustBuildContainer_EditSessionRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	startPostgres(t, ctx)

	c := app.MustBuildContainer(ctx)
	require.NotNil(t, c)

	err := c.Invoke(func(cfg *config.Config, pool *pgxpool.Pool, zones *zone.Service, sessions *editsession.Manager) {
		require.NotNil(t, cfg)
		require.NoError(t, pool.Ping(ctx))
		defer pool.Close()
		defer func() { _ = sessions.Shutdown(context.Background()) }()

		created, err := zones.Create(ctx, domain.NewZone{
			Name:         "Centro",
			AccountPhone: "+5561999990000",
			Points: []domain.Point{
				{Lat: -15.79, Lng: -47.89},
				{Lat: -15.79, Lng: -47.87},
				{Lat: -15.81, Lng: -47.88},
			},
		})
		require.NoError(t, err)

		st, err := sessions.Open(ctx, created.ID)
		require.NoError(t, err)

		_, err = sessions.MoveVertex(ctx, st.ID, 2, domain.Point{Lat: -15.82, Lng: -47.88})
		require.NoError(t, err)

		_, err = sessions.Save(ctx, st.ID)
		require.NoError(t, err)

		stored, err := zones.Get(ctx, created.ID)
		require.NoError(t, err)
		require.Greater(t, stored.Version, created.Version)
		require.InDelta(t, -15.82, stored.Points[2].Lat, 1e-9)
		require.Zero(t, sessions.Active())
	})
	require.NoError(t, err)
}
