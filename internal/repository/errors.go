package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateKey is returned when an insert or update violates a
	// business-key uniqueness constraint. The pre-write Exists check is a
	// UX advisory only; this error, raised from the store constraint, is
	// the correctness guarantee for concurrent submissions.
	ErrDuplicateKey = errors.New("duplicate business key")

	// ErrNotFound is returned when an update or delete target is absent,
	// e.g. concurrently deleted by another session.
	ErrNotFound = errors.New("record not found")
)

// isDuplicateKey recognizes uniqueness violations across the supported
// drivers: pgx surfaces SQLSTATE 23505, the modernc sqlite driver only a
// message.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
