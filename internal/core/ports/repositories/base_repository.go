package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager lets a caller span several ledger writes with one pgx transaction.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	// Rollback is safe to call after Commit.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
