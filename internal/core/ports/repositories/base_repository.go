package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager is implemented by repositories whose writes can join a caller-owned transaction.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)

	// BeginReadCommitted starts a READ COMMITTED transaction. Fund movements use it
	// under a wallet lock so the balance they read includes every earlier movement.
	BeginReadCommitted(ctx context.Context) (pgx.Tx, error)

	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback is a no-op on an already committed transaction.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
