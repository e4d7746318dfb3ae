package services

import (
	"context"

	"github.com/SscSPs/cashclaim/internal/core/domain"
	"github.com/SscSPs/cashclaim/internal/dto"
)

// BalanceSvc computes balances fresh from the ledger on every call.
type BalanceSvc interface {
	// Balance returns income minus expense for userName, optionally narrowed to a project and a month.
	Balance(ctx context.Context, principal domain.Principal, userName string, projectName *string, month *domain.Month) (int64, error)

	// Summary returns a month's flows plus the all-time balance. A nil userName
	// means the caller's own ledger, or every ledger for an admin.
	Summary(ctx context.Context, principal domain.Principal, userName *string, month domain.Month) (*domain.LedgerSummary, error)
}

// TransactionReaderSvc defines read operations for ledger entries
type TransactionReaderSvc interface {
	// ListEntries retrieves a paginated list of entries, newest first.
	ListEntries(ctx context.Context, principal domain.Principal, params dto.ListEntriesParams) ([]domain.LedgerEntry, *string, error)
}

// TransactionWriterSvc defines write operations for ledger entries
type TransactionWriterSvc interface {
	// RecordEntry validates and stores a single income or expense.
	RecordEntry(ctx context.Context, principal domain.Principal, req dto.RecordEntryRequest) (int64, error)

	// DeleteEntry removes an entry owned by the principal (or any entry for an admin).
	DeleteEntry(ctx context.Context, principal domain.Principal, entryID int64) error
}

// TransactionRecorderSvc combines ledger entry reads and writes
type TransactionRecorderSvc interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

// TransferSvc writes paired debit/credit entries atomically.
type TransferSvc interface {
	// TransferBetweenUsers moves funds from the principal to the recipient's Main project.
	TransferBetweenUsers(ctx context.Context, principal domain.Principal, req dto.TransferRequest) (*domain.TransferResult, error)

	// MoveBetweenProjects moves funds between two of the principal's projects.
	MoveBetweenProjects(ctx context.Context, principal domain.Principal, req dto.MoveRequest) (*domain.TransferResult, error)
}

// ReportSvc builds administrative reports.
type ReportSvc interface {
	// MonthlyReport returns every user's flows for month plus their all-time balance.
	MonthlyReport(ctx context.Context, principal domain.Principal, month domain.Month) (*domain.MonthlyReport, error)
}
