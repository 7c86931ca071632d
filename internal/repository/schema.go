package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []struct {
	name string
	ddl  string
}{
	{"delivery_zones", `
		CREATE TABLE IF NOT EXISTS delivery_zones (
			id            BIGSERIAL PRIMARY KEY,
			name          TEXT NOT NULL,
			points        TEXT NOT NULL,
			account_phone TEXT NOT NULL,
			delivery_lat  DOUBLE PRECISION NULL,
			delivery_lng  DOUBLE PRECISION NULL,
			version       BIGINT NOT NULL DEFAULT 1,
			created_at    TIMESTAMP WITHOUT TIME ZONE DEFAULT now() NOT NULL,
			updated_at    TIMESTAMP WITHOUT TIME ZONE DEFAULT now() NOT NULL
		)`},
	{"delivery_zones_account_idx", `
		CREATE INDEX IF NOT EXISTS delivery_zones_account_idx ON delivery_zones (account_phone)`},
	{"delivery_radii", `
		CREATE TABLE IF NOT EXISTS delivery_radii (
			id            BIGSERIAL PRIMARY KEY,
			zone_id       BIGINT NOT NULL REFERENCES delivery_zones(id) ON DELETE CASCADE,
			account_phone TEXT NOT NULL,
			radius_m      INTEGER NOT NULL CHECK (radius_m > 0),
			fee           NUMERIC(12,2) NOT NULL,
			night_fee     NUMERIC(12,2) NOT NULL,
			created_at    TIMESTAMP WITHOUT TIME ZONE DEFAULT now() NOT NULL
		)`},
	{"delivery_radii_zone_idx", `
		CREATE INDEX IF NOT EXISTS delivery_radii_zone_idx ON delivery_radii (zone_id)`},
}

// Migrate creates the tables if they do not exist yet.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	for _, s := range schema {
		if _, err := db.Exec(ctx, s.ddl); err != nil {
			return fmt.Errorf("migrate %s: %w", s.name, err)
		}
	}
	return nil
}
