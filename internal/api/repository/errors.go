package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicate reports that an insert hit a unique constraint. Services map
// it to their own conflict errors (duplicate favorite, duplicate ISBN, ...).
var ErrDuplicate = errors.New("duplicate record")

const uniqueViolationCode = "23505"

// isUniqueViolation unwraps the driver error behind gorm and checks for a
// Postgres unique-constraint violation. Relying on the constraint instead of
// a prior existence check keeps concurrent inserts race-free.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
