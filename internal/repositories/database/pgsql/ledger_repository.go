package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/cashclaim/internal/apperrors"
	"github.com/SscSPs/cashclaim/internal/core/domain"
	portsrepo "github.com/SscSPs/cashclaim/internal/core/ports/repositories"
	"github.com/SscSPs/cashclaim/internal/models"
	"github.com/SscSPs/cashclaim/internal/utils/mapping"
	"github.com/SscSPs/cashclaim/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const expenseColumns = `id, date, description, category, amount, type, "user", project_id, created_at`

// PgxLedgerRepository stores ledger entries in the expenses table.
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryWithTx {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

// whereBuilder accumulates AND-ed conditions and their positional arguments.
type whereBuilder struct {
	conds []string
	args  []any
}

func (w *whereBuilder) add(cond string, args ...any) {
	for _, a := range args {
		w.args = append(w.args, a)
		cond = strings.Replace(cond, "?", "$"+strconv.Itoa(len(w.args)), 1)
	}
	w.conds = append(w.conds, cond)
}

func (w *whereBuilder) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.conds, " AND ")
}

func ledgerFilterWhere(filter domain.LedgerFilter) *whereBuilder {
	w := &whereBuilder{}
	if filter.UserName != nil {
		w.add(`"user" = ?`, *filter.UserName)
	}
	if filter.ProjectID != nil {
		w.add(`project_id = ?`, *filter.ProjectID)
	}
	if filter.Type != nil {
		w.add(`type = ?`, string(*filter.Type))
	}
	if filter.Month != nil {
		start, end := filter.Month.Range()
		w.add(`date >= ? AND date < ?`, start, end)
	}
	return w
}

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(&m.ID, &m.Date, &m.Description, &m.Category, &m.Amount, &m.Type, &m.User, &m.ProjectID, &m.CreatedAt)
	return m, err
}

func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.LedgerEntry, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1;`
	m, err := scanExpense(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find entry %d", entryID), err)
	}
	entry := mapping.ToDomainLedgerEntry(m)
	return &entry, nil
}

func (r *PgxLedgerRepository) SumTotals(ctx context.Context, filter domain.LedgerFilter) (domain.Totals, error) {
	return sumTotals(ctx, r.Pool, filter)
}

func (r *PgxLedgerRepository) SumTotalsInTx(ctx context.Context, tx pgx.Tx, filter domain.LedgerFilter) (domain.Totals, error) {
	return sumTotals(ctx, tx, filter)
}

// sumTotals computes both sums in one aggregate; an empty scope yields zeros.
func sumTotals(ctx context.Context, q querier, filter domain.LedgerFilter) (domain.Totals, error) {
	w := ledgerFilterWhere(filter)
	query := `
		SELECT COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
		       COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)
		FROM expenses ` + w.clause() + `;`

	var totals domain.Totals
	if err := q.QueryRow(ctx, query, w.args...).Scan(&totals.Income, &totals.Expense); err != nil {
		return domain.Totals{}, apperrors.NewAppError(500, "failed to sum ledger", err)
	}
	return totals, nil
}

// ListEntries returns entries newest first, keyed on (date, id) for token-based pagination.
func (r *PgxLedgerRepository) ListEntries(ctx context.Context, filter domain.LedgerFilter, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells us whether another page exists.
	fetchLimit := limit + 1

	w := ledgerFilterWhere(filter)
	if nextToken != nil && *nextToken != "" {
		lastDate, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		w.add(`(date, id) < (?, ?)`, lastDate, lastID)
	}
	w.args = append(w.args, fetchLimit)
	query := `SELECT ` + expenseColumns + ` FROM expenses ` + w.clause() +
		` ORDER BY date DESC, id DESC LIMIT $` + strconv.Itoa(len(w.args)) + `;`

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query entries", err)
	}
	defer rows.Close()

	results := make([]models.Expense, 0, fetchLimit)
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan entry row", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating entry rows", err)
	}

	var nextTokenVal *string
	if len(results) > limit {
		last := results[limit-1]
		token := pagination.EncodeToken(last.Date, last.ID)
		nextTokenVal = &token
		results = results[:limit]
	}
	return mapping.ToDomainLedgerEntrySlice(results), nextTokenVal, nil
}

func (r *PgxLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) (int64, error) {
	return saveEntry(ctx, r.Pool, entry)
}

func (r *PgxLedgerRepository) SaveEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) (int64, error) {
	return saveEntry(ctx, tx, entry)
}

func saveEntry(ctx context.Context, q querier, entry domain.LedgerEntry) (int64, error) {
	m := mapping.ToModelExpense(entry)
	query := `
		INSERT INTO expenses (date, description, category, amount, type, "user", project_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	var id int64
	err := q.QueryRow(ctx, query, m.Date, m.Description, m.Category, m.Amount, m.Type, m.User, m.ProjectID).Scan(&id)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert entry", err)
	}
	return id, nil
}

func (r *PgxLedgerRepository) DeleteEntry(ctx context.Context, entryID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1;`, entryID)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to delete entry %d", entryID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// LockWalletInTx serialises balance-changing transactions of one user until tx ends.
func (r *PgxLedgerRepository) LockWalletInTx(ctx context.Context, tx pgx.Tx, userName string) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, userName); err != nil {
		return apperrors.NewAppError(500, "failed to lock wallet of "+userName, err)
	}
	return nil
}
