package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mdelivery-zones/internal/domain"
	"mdelivery-zones/internal/ports/zonetx"
)

const zoneColumns = `id, name, points, account_phone, delivery_lat, delivery_lng, version, created_at, updated_at`

// ZoneRepo represents delivery zone repository.
type ZoneRepo struct{ db *pgxpool.Pool }

// NewZoneRepo creates a new ZoneRepo.
func NewZoneRepo(db *pgxpool.Pool) *ZoneRepo { return &ZoneRepo{db: db} }

func scanZone(row pgx.Row) (*domain.Zone, error) {
	var (
		z        domain.Zone
		points   string
		lat, lng *float64
	)
	if err := row.Scan(&z.ID, &z.Name, &points, &z.AccountPhone, &lat, &lng, &z.Version, &z.CreatedAt, &z.UpdatedAt); err != nil {
		return nil, err
	}
	pts, err := DecodePoints([]byte(points))
	if err != nil {
		return nil, fmt.Errorf("zone %d: %w", z.ID, err)
	}
	z.Points = pts
	if lat != nil && lng != nil {
		z.DeliveryPoint = &domain.Point{Lat: *lat, Lng: *lng}
	}
	return &z, nil
}

// Get - returns zone by its ID.
func (r *ZoneRepo) Get(ctx context.Context, id int64) (*domain.Zone, error) {
	z, err := scanZone(r.db.QueryRow(ctx,
		`SELECT `+zoneColumns+` FROM delivery_zones WHERE id=$1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get zone %d: %w", id, err)
	}
	return z, nil
}

// ListByAccount returns the zones of one account ordered by id.
func (r *ZoneRepo) ListByAccount(ctx context.Context, phone string) ([]domain.Zone, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+zoneColumns+` FROM delivery_zones WHERE account_phone=$1 ORDER BY id`, phone)
	if err != nil {
		return nil, fmt.Errorf("list zones of %q: %w", phone, err)
	}
	defer rows.Close()

	out := make([]domain.Zone, 0)
	for rows.Next() {
		z, err := scanZone(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *z)
	}
	return out, rows.Err()
}

// Create - creates a new zone and returns it with the generated fields.
func (r *ZoneRepo) Create(ctx context.Context, in domain.NewZone) (*domain.Zone, error) {
	points, err := EncodePoints(in.Points)
	if err != nil {
		return nil, err
	}
	z, err := scanZone(r.db.QueryRow(ctx, `
		INSERT INTO delivery_zones (name, points, account_phone)
		VALUES ($1, $2, $3)
		RETURNING `+zoneColumns,
		in.Name, points, in.AccountPhone))
	if err != nil {
		return nil, fmt.Errorf("create zone: %w", err)
	}
	return z, nil
}

// Delete removes a zone and, through the foreign key, its radii.
func (r *ZoneRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM delivery_zones WHERE id=$1`, id)
	if err != nil {
		return false, fmt.Errorf("delete zone %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// WithTx opens a transaction and executes fn within it.
func (r *ZoneRepo) WithTx(ctx context.Context, fn func(tx zonetx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&ZoneTx{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// ZoneTx is the transactional side of ZoneRepo.
type ZoneTx struct {
	tx pgx.Tx
}

// LockZone reads the zone and holds a row lock until the transaction ends.
func (r *ZoneTx) LockZone(ctx context.Context, id int64) (*domain.Zone, error) {
	z, err := scanZone(r.tx.QueryRow(ctx,
		`SELECT `+zoneColumns+` FROM delivery_zones WHERE id=$1 FOR UPDATE`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock zone %d: %w", id, err)
	}
	return z, nil
}

func (r *ZoneTx) bump(ctx context.Context, id int64, set string, args ...any) (int64, error) {
	var version int64
	err := r.tx.QueryRow(ctx, `
		UPDATE delivery_zones
		SET `+set+`, version = version + 1, updated_at = now()
		WHERE id = $1
		RETURNING version`, append([]any{id}, args...)...).Scan(&version)
	if err != nil {
		if IsNotFound(err) {
			return 0, fmt.Errorf("zone %d vanished during update", id)
		}
		return 0, fmt.Errorf("update zone %d: %w", id, err)
	}
	return version, nil
}

// WritePoints replaces the vertex list.
func (r *ZoneTx) WritePoints(ctx context.Context, id int64, points []domain.Point) (int64, error) {
	raw, err := EncodePoints(points)
	if err != nil {
		return 0, err
	}
	return r.bump(ctx, id, `points = $2`, raw)
}

// WriteName renames the zone.
func (r *ZoneTx) WriteName(ctx context.Context, id int64, name string) (int64, error) {
	return r.bump(ctx, id, `name = $2`, name)
}

// WriteDeliveryPoint stores the center radii are measured from.
func (r *ZoneTx) WriteDeliveryPoint(ctx context.Context, id int64, p domain.Point) (int64, error) {
	return r.bump(ctx, id, `delivery_lat = $2, delivery_lng = $3`, p.Lat, p.Lng)
}
