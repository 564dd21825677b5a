package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager opens and finishes database transactions for services that
// need several repository calls to commit or roll back together.
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction. Rolling back a finished transaction is a no-op.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
