package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"fieldtrip/internal/repository"
)

// Querier is an interface satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Ensure interfaces are satisfied.
var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)

// foreignKeyViolation is the PostgreSQL error code raised when a delete
// is blocked by a RESTRICT foreign key.
const foreignKeyViolation = "23503"

// mapDeleteError converts postgres referential errors to repository
// sentinels. A blocked delete becomes ErrProtected.
func mapDeleteError(result sql.Result, err error) error {
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return repository.ErrProtected
		}
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
