package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/cashclaim/internal/apperrors"
	"github.com/SscSPs/cashclaim/internal/core/domain"
	portsrepo "github.com/SscSPs/cashclaim/internal/core/ports/repositories"
	"github.com/SscSPs/cashclaim/internal/models"
	"github.com/SscSPs/cashclaim/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const projectColumns = `id, user_id, name, description, created_at`

type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

func scanProject(row pgx.Row) (models.Project, error) {
	var m models.Project
	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Description, &m.CreatedAt)
	return m, err
}

func findProjectByName(ctx context.Context, q querier, userName, name string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1 AND name = $2;`
	m, err := scanProject(q.QueryRow(ctx, query, userName, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find project "+name+" of "+userName, err)
	}
	project := mapping.ToDomainProject(m)
	return &project, nil
}

// ensureProject inserts the project unless it exists and returns the stored row either way.
func ensureProject(ctx context.Context, q querier, userName, name, description string) (*domain.Project, error) {
	query := `
		INSERT INTO projects (user_id, name, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, name) DO NOTHING;
	`
	if _, err := q.Exec(ctx, query, userName, name, description); err != nil {
		return nil, apperrors.NewAppError(500, "failed to ensure project "+name+" of "+userName, err)
	}
	return findProjectByName(ctx, q, userName, name)
}

func (r *PgxProjectRepository) FindProjectByName(ctx context.Context, userName, name string) (*domain.Project, error) {
	return findProjectByName(ctx, r.Pool, userName, name)
}

func (r *PgxProjectRepository) FindProjectByNameInTx(ctx context.Context, tx pgx.Tx, userName, name string) (*domain.Project, error) {
	return findProjectByName(ctx, tx, userName, name)
}

func (r *PgxProjectRepository) EnsureProject(ctx context.Context, userName, name, description string) (*domain.Project, error) {
	return ensureProject(ctx, r.Pool, userName, name, description)
}

func (r *PgxProjectRepository) EnsureProjectInTx(ctx context.Context, tx pgx.Tx, userName, name, description string) (*domain.Project, error) {
	return ensureProject(ctx, tx, userName, name, description)
}

func (r *PgxProjectRepository) ListProjectsByUser(ctx context.Context, userName string) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1 ORDER BY id;`
	rows, err := r.Pool.Query(ctx, query, userName)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query projects of "+userName, err)
	}
	defer rows.Close()

	var results []models.Project
	for rows.Next() {
		m, err := scanProject(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan project row", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating project rows", err)
	}
	return mapping.ToDomainProjectSlice(results), nil
}

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	m := mapping.ToModelProject(project)
	query := `
		INSERT INTO projects (user_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING ` + projectColumns + `;
	`
	saved, err := scanProject(r.Pool.QueryRow(ctx, query, m.UserID, m.Name, m.Description))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, apperrors.NewAppError(500, "failed to save project "+m.Name, err)
	}
	d := mapping.ToDomainProject(saved)
	return &d, nil
}
