package postgres

import (
	"context"

	"prestadores/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes, used when TranslateError did not map the error.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgQueryCanceled       = "57014"
)

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || hasSQLState(err, pgUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || hasSQLState(err, pgForeignKeyViolation)
}

func isNotNullConstraintViolation(err error) bool {
	return hasSQLState(err, pgNotNullViolation)
}

// isTimeout reports whether the statement was cut short by the request deadline.
func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || hasSQLState(err, pgQueryCanceled)
}

func hasSQLState(err error, code string) bool {
	pgErr, ok := errors.AsType[*pgconn.PgError](err)

	return ok && pgErr.Code == code
}
