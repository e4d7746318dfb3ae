package repositories

import (
	"context"

	"github.com/SscSPs/cashclaim/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ProjectReader defines read operations for projects
type ProjectReader interface {
	// FindProjectByName looks a project up by owner name and project name.
	FindProjectByName(ctx context.Context, userName, name string) (*domain.Project, error)

	// ListProjectsByUser returns all projects of a user ordered by id.
	ListProjectsByUser(ctx context.Context, userName string) ([]domain.Project, error)
}

// ProjectWriter defines write operations for projects
type ProjectWriter interface {
	// SaveProject inserts a project. Returns ErrDuplicate if the user already has one with that name.
	SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error)

	// EnsureProject returns the named project, creating it if missing.
	EnsureProject(ctx context.Context, userName, name, description string) (*domain.Project, error)
}

// ProjectTransactionSupport defines project operations inside a caller-owned transaction.
type ProjectTransactionSupport interface {
	FindProjectByNameInTx(ctx context.Context, tx pgx.Tx, userName, name string) (*domain.Project, error)
	EnsureProjectInTx(ctx context.Context, tx pgx.Tx, userName, name, description string) (*domain.Project, error)
}

// ProjectRepositoryFacade combines all project-related repository interfaces
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
	ProjectTransactionSupport
}
