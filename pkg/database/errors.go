package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes for constraint violations. The schema enforces
// seat uniqueness with a unique constraint and showtime non-overlap with
// an exclusion constraint, so an insert that loses a race fails with one
// of these codes instead of corrupting the invariant.
const (
	uniqueViolationCode    = "23505"
	exclusionViolationCode = "23P01"
)

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsExclusionViolation reports whether err is an exclusion constraint
// violation (overlapping tstzrange on showtimes).
func IsExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == exclusionViolationCode
}
