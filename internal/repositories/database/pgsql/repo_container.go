package pgsql

import (
	portsrepo "github.com/SscSPs/cashclaim/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:        newPgxLedgerRepository(dbPool),
		ProjectRepo:       newPgxProjectRepository(dbPool),
		UserRepo:          newPgxUserRepository(dbPool),
		ReimbursementRepo: newPgxReimbursementRepository(dbPool),
	}
}
