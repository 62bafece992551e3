package repositories

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq" // For pq.Error
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrDatabaseError is returned for unexpected database errors.
	// It can be used to wrap more specific driver errors.
	ErrDatabaseError = errors.New("database error")

	// ErrDuplicateKey is returned when an insert/update violates a unique constraint.
	ErrDuplicateKey = errors.New("duplicate key value violates unique constraint")

	// ErrUnknownColumn is returned when a column-scoped operation names a column the table does not declare.
	ErrUnknownColumn = errors.New("unknown column")
)

// SQLExecutor is satisfied by *sqlx.DB and *sqlx.Tx, so write methods can run
// inside a transaction or directly on the connection.
type SQLExecutor interface {
	sqlx.ExtContext
}

// Scanner is satisfied by *sqlx.Row and *sqlx.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// classifyError maps driver errors onto the repository sentinels.
func classifyError(err error, action string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: %s: %s (constraint: %s)", ErrDuplicateKey, action, pqErr.Message, pqErr.Constraint)
		}
		return fmt.Errorf("%w: %s: %v", ErrDatabaseError, action, err)
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %s: %v", ErrDuplicateKey, action, err)
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrDatabaseError, action, err)
}
