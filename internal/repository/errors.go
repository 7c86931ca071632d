package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const codeForeignKeyViolation = "23503"

func pgCode(err error) string {
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return ""
}

// IsMissingParent - signals that a referenced row (e.g. the zone of a radius) does not exist.
func IsMissingParent(err error) bool { return pgCode(err) == codeForeignKeyViolation }

// IsNotFound - signals that the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
