package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/cashclaim/internal/apperrors"
	"github.com/SscSPs/cashclaim/internal/core/domain"
	portsrepo "github.com/SscSPs/cashclaim/internal/core/ports/repositories"
	"github.com/SscSPs/cashclaim/internal/models"
	"github.com/SscSPs/cashclaim/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reimbursementColumns = `id, "user", date, category, description, amount, status, notes, submitted_at, processed_at, processed_by`

type PgxReimbursementRepository struct {
	BaseRepository
}

func newPgxReimbursementRepository(pool *pgxpool.Pool) portsrepo.ReimbursementRepositoryFacade {
	return &PgxReimbursementRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReimbursementRepositoryFacade = (*PgxReimbursementRepository)(nil)

func scanReimbursement(row pgx.Row) (models.Reimbursement, error) {
	var m models.Reimbursement
	err := row.Scan(&m.ID, &m.User, &m.Date, &m.Category, &m.Description, &m.Amount,
		&m.Status, &m.Notes, &m.SubmittedAt, &m.ProcessedAt, &m.ProcessedBy)
	return m, err
}

func (r *PgxReimbursementRepository) FindClaimByID(ctx context.Context, claimID int64) (*domain.ReimbursementClaim, error) {
	query := `SELECT ` + reimbursementColumns + ` FROM reimbursements WHERE id = $1;`
	m, err := scanReimbursement(r.Pool.QueryRow(ctx, query, claimID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find claim %d", claimID), err)
	}
	claim := mapping.ToDomainReimbursement(m)
	return &claim, nil
}

// ListClaims returns claims newest first; a nil userName lists every user's claims.
func (r *PgxReimbursementRepository) ListClaims(ctx context.Context, userName *string) ([]domain.ReimbursementClaim, error) {
	query := `
		SELECT ` + reimbursementColumns + `
		FROM reimbursements
		WHERE ($1::text IS NULL OR "user" = $1)
		ORDER BY submitted_at DESC, id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userName)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query claims", err)
	}
	defer rows.Close()

	var results []models.Reimbursement
	for rows.Next() {
		m, err := scanReimbursement(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan claim row", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating claim rows", err)
	}
	return mapping.ToDomainReimbursementSlice(results), nil
}

func (r *PgxReimbursementRepository) ClaimStats(ctx context.Context, userName *string) (domain.ClaimStats, error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE status = 'pending'),
		       COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0),
		       COUNT(*) FILTER (WHERE status = 'approved'),
		       COALESCE(SUM(amount) FILTER (WHERE status = 'approved'), 0),
		       COUNT(*) FILTER (WHERE status = 'rejected')
		FROM reimbursements
		WHERE ($1::text IS NULL OR "user" = $1);
	`
	var s domain.ClaimStats
	err := r.Pool.QueryRow(ctx, query, userName).Scan(
		&s.PendingCount, &s.PendingTotal, &s.ApprovedCount, &s.ApprovedTotal, &s.RejectedCount)
	if err != nil {
		return domain.ClaimStats{}, apperrors.NewAppError(500, "failed to aggregate claims", err)
	}
	return s, nil
}

func (r *PgxReimbursementRepository) SaveClaim(ctx context.Context, claim domain.ReimbursementClaim) (int64, error) {
	m := mapping.ToModelReimbursement(claim)
	query := `
		INSERT INTO reimbursements ("user", date, category, description, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	var id int64
	if err := r.Pool.QueryRow(ctx, query, m.User, m.Date, m.Category, m.Description, m.Amount, m.Status).Scan(&id); err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert claim", err)
	}
	return id, nil
}

// TransitionClaim applies the change only if the claim is still in t.From.
// Losing that race reports ErrInvalidState.
func (r *PgxReimbursementRepository) TransitionClaim(ctx context.Context, t domain.ClaimTransition) error {
	query := `
		UPDATE reimbursements
		SET status = $1,
		    notes = COALESCE($2::text, notes),
		    processed_at = COALESCE($3::timestamptz, processed_at),
		    processed_by = COALESCE($4::text, processed_by)
		WHERE id = $5 AND status = $6;
	`
	tag, err := r.Pool.Exec(ctx, query, transitionArgs(t)...)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update claim %d", t.ClaimID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInvalidState
	}
	return nil
}

// transitionArgs leaves both stamps NULL for a non-decision transition so COALESCE keeps
// the stored values.
func transitionArgs(t domain.ClaimTransition) []any {
	var processedAt *time.Time
	var processedBy *string
	if t.RecordsDecision() {
		processedAt, processedBy = &t.ProcessedAt, &t.ProcessedBy
	}
	return []any{string(t.To), t.Notes, processedAt, processedBy, t.ClaimID, string(t.From)}
}
