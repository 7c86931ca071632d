package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"mdelivery-zones/internal/apperr"
	"mdelivery-zones/internal/domain"
)

// RadiusRepo represents delivery radius repository.
type RadiusRepo struct{ db *pgxpool.Pool }

// NewRadiusRepo creates a new RadiusRepo.
func NewRadiusRepo(db *pgxpool.Pool) *RadiusRepo { return &RadiusRepo{db: db} }

// Fees travel as text so NUMERIC keeps its exact value.
func scanRadius(row pgx.Row) (*domain.Radius, error) {
	var (
		rd            domain.Radius
		fee, nightFee string
	)
	if err := row.Scan(&rd.ID, &rd.ZoneID, &rd.AccountPhone, &rd.Meters, &fee, &nightFee); err != nil {
		return nil, err
	}
	var err error
	if rd.Fee, err = decimal.NewFromString(fee); err != nil {
		return nil, fmt.Errorf("radius %d fee: %w", rd.ID, err)
	}
	if rd.NightFee, err = decimal.NewFromString(nightFee); err != nil {
		return nil, fmt.Errorf("radius %d night fee: %w", rd.ID, err)
	}
	return &rd, nil
}

// ListByZone returns the radii of a zone, smallest first.
func (r *RadiusRepo) ListByZone(ctx context.Context, zoneID int64) ([]domain.Radius, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, zone_id, account_phone, radius_m, fee::text, night_fee::text
		FROM delivery_radii
		WHERE zone_id = $1
		ORDER BY radius_m, id`, zoneID)
	if err != nil {
		return nil, fmt.Errorf("list radii of zone %d: %w", zoneID, err)
	}
	defer rows.Close()

	out := make([]domain.Radius, 0)
	for rows.Next() {
		rd, err := scanRadius(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rd)
	}
	return out, rows.Err()
}

// Create - inserts a radius record.
func (r *RadiusRepo) Create(ctx context.Context, rd domain.Radius) (*domain.Radius, error) {
	out, err := scanRadius(r.db.QueryRow(ctx, `
		INSERT INTO delivery_radii (zone_id, account_phone, radius_m, fee, night_fee)
		VALUES ($1, $2, $3, $4::numeric, $5::numeric)
		RETURNING id, zone_id, account_phone, radius_m, fee::text, night_fee::text`,
		rd.ZoneID, rd.AccountPhone, rd.Meters, rd.Fee.String(), rd.NightFee.String()))
	if err != nil {
		if IsMissingParent(err) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("create radius: %w", err)
	}
	return out, nil
}

// Delete removes one radius of a zone and reports whether it existed.
func (r *RadiusRepo) Delete(ctx context.Context, zoneID, radiusID int64) (bool, error) {
	ct, err := r.db.Exec(ctx,
		`DELETE FROM delivery_radii WHERE id = $1 AND zone_id = $2`, radiusID, zoneID)
	if err != nil {
		return false, fmt.Errorf("delete radius %d: %w", radiusID, err)
	}
	return ct.RowsAffected() > 0, nil
}
