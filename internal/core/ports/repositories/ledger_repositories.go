package repositories

import (
	"context"

	"github.com/SscSPs/cashclaim/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// LedgerReader defines read operations over ledger entries.
type LedgerReader interface {
	// FindEntryByID retrieves a single entry.
	FindEntryByID(ctx context.Context, entryID int64) (*domain.LedgerEntry, error)

	// SumTotals sums income and expense over entries matching the filter.
	SumTotals(ctx context.Context, filter domain.LedgerFilter) (domain.Totals, error)

	// ListEntries returns entries newest first using token-based pagination.
	// It returns the entries, a token for the next page, and an error.
	ListEntries(ctx context.Context, filter domain.LedgerFilter, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}

// LedgerWriter defines write operations over ledger entries. There is no update.
type LedgerWriter interface {
	// SaveEntry inserts an entry and returns its assigned id.
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) (int64, error)

	// DeleteEntry removes an entry. Returns ErrNotFound when nothing was deleted.
	DeleteEntry(ctx context.Context, entryID int64) error
}

// LedgerTransactionSupport defines operations that run inside a caller-owned transaction.
type LedgerTransactionSupport interface {
	// LockWalletInTx takes a transaction-scoped lock serialising balance-changing work for a user.
	LockWalletInTx(ctx context.Context, tx pgx.Tx, userName string) error

	// SumTotalsInTx is SumTotals evaluated inside tx.
	SumTotalsInTx(ctx context.Context, tx pgx.Tx, filter domain.LedgerFilter) (domain.Totals, error)

	// SaveEntryInTx is SaveEntry executed inside tx.
	SaveEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) (int64, error)
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
	LedgerTransactionSupport
}

// LedgerRepositoryWithTx extends LedgerRepositoryFacade with transaction capabilities
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	TransactionManager
}
