package repositories

import (
	"errors"

	apperrors "reship/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrPackageNotFound = apperrors.ErrPackageNotFound
	ErrPackageState    = apperrors.ErrPackageState
	ErrWriteConflict   = errors.New("write conflict")
)

// Postgres SQLSTATEs that mean the statement may succeed if retried.
const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
)

// IsWriteConflict reports whether err is a Postgres serialization failure or deadlock.
func IsWriteConflict(err error) bool {
	if errors.Is(err, ErrWriteConflict) {
		return true
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == sqlStateSerializationFailure || pgErr.Code == sqlStateDeadlockDetected
}

// classifyWrite maps driver conflicts onto ErrWriteConflict and leaves other errors alone.
func classifyWrite(err error) error {
	if err == nil || errors.Is(err, ErrWriteConflict) {
		return err
	}
	if IsWriteConflict(err) {
		return errors.Join(ErrWriteConflict, err)
	}
	return err
}
