package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/cashclaim/internal/apperrors"
	"github.com/SscSPs/cashclaim/internal/core/domain"
	portsrepo "github.com/SscSPs/cashclaim/internal/core/ports/repositories"
	"github.com/SscSPs/cashclaim/internal/models"
	"github.com/SscSPs/cashclaim/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, name, access_code, created_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryWithTx {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryWithTx
var _ portsrepo.UserRepositoryWithTx = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(&m.ID, &m.Name, &m.AccessCode, &m.CreatedAt)
	return m, err
}

func findUser(ctx context.Context, q querier, where string, arg any) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where + `;`
	m, err := scanUser(q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find user %v", arg), err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return findUser(ctx, r.Pool, `id = $1`, userID)
}

func (r *PgxUserRepository) FindUserByName(ctx context.Context, name string) (*domain.User, error) {
	return findUser(ctx, r.Pool, `name = $1`, name)
}

func (r *PgxUserRepository) FindUserByNameInTx(ctx context.Context, tx pgx.Tx, name string) (*domain.User, error) {
	return findUser(ctx, tx, `name = $1`, name)
}

func (r *PgxUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY name;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users", err)
	}
	defer rows.Close()

	var results []models.User
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan user row", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating user rows", err)
	}
	return mapping.ToDomainUserSlice(results), nil
}

func (r *PgxUserRepository) SaveUserInTx(ctx context.Context, tx pgx.Tx, user domain.User) (*domain.User, error) {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (name, access_code)
		VALUES ($1, $2)
		RETURNING ` + userColumns + `;
	`
	saved, err := scanUser(tx.QueryRow(ctx, query, m.Name, m.AccessCode))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, apperrors.NewAppError(500, "failed to save user "+m.Name, err)
	}
	d := mapping.ToDomainUser(saved)
	return &d, nil
}

func (r *PgxUserRepository) UpdateAccessCode(ctx context.Context, userID int64, accessCodeHash string) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE users SET access_code = $1 WHERE id = $2;`, accessCodeHash, userID)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update access code of user %d", userID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteUser removes the login only; entries, projects and claims stay for reporting.
func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1;`, userID)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to delete user %d", userID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
