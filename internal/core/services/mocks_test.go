package services_test

import (
	"context"

	"github.com/SscSPs/cashclaim/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// mockTx stands in for a pgx.Tx; services only hand it back to repositories.
type mockTx struct {
	pgx.Tx
}

// --- MockLedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	var entry *domain.LedgerEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.LedgerEntry)
	}
	return entry, args.Error(1)
}

func (m *MockLedgerRepository) SumTotals(ctx context.Context, filter domain.LedgerFilter) (domain.Totals, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(domain.Totals), args.Error(1)
}

func (m *MockLedgerRepository) ListEntries(ctx context.Context, filter domain.LedgerFilter, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var entries []domain.LedgerEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.LedgerEntry)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return entries, token, args.Error(2)
}

func (m *MockLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerRepository) DeleteEntry(ctx context.Context, entryID int64) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockLedgerRepository) LockWalletInTx(ctx context.Context, tx pgx.Tx, userName string) error {
	args := m.Called(ctx, tx, userName)
	return args.Error(0)
}

func (m *MockLedgerRepository) SumTotalsInTx(ctx context.Context, tx pgx.Tx, filter domain.LedgerFilter) (domain.Totals, error) {
	args := m.Called(ctx, tx, filter)
	return args.Get(0).(domain.Totals), args.Error(1)
}

func (m *MockLedgerRepository) SaveEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) (int64, error) {
	args := m.Called(ctx, tx, entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	var tx pgx.Tx
	if args.Get(0) != nil {
		tx = args.Get(0).(pgx.Tx)
	}
	return tx, args.Error(1)
}

func (m *MockLedgerRepository) BeginReadCommitted(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	var tx pgx.Tx
	if args.Get(0) != nil {
		tx = args.Get(0).(pgx.Tx)
	}
	return tx, args.Error(1)
}

func (m *MockLedgerRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockLedgerRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- MockProjectRepository ---
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindProjectByName(ctx context.Context, userName, name string) (*domain.Project, error) {
	args := m.Called(ctx, userName, name)
	var project *domain.Project
	if args.Get(0) != nil {
		project = args.Get(0).(*domain.Project)
	}
	return project, args.Error(1)
}

func (m *MockProjectRepository) ListProjectsByUser(ctx context.Context, userName string) ([]domain.Project, error) {
	args := m.Called(ctx, userName)
	var projects []domain.Project
	if args.Get(0) != nil {
		projects = args.Get(0).([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	args := m.Called(ctx, project)
	var saved *domain.Project
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Project)
	}
	return saved, args.Error(1)
}

func (m *MockProjectRepository) EnsureProject(ctx context.Context, userName, name, description string) (*domain.Project, error) {
	args := m.Called(ctx, userName, name, description)
	var project *domain.Project
	if args.Get(0) != nil {
		project = args.Get(0).(*domain.Project)
	}
	return project, args.Error(1)
}

func (m *MockProjectRepository) FindProjectByNameInTx(ctx context.Context, tx pgx.Tx, userName, name string) (*domain.Project, error) {
	args := m.Called(ctx, tx, userName, name)
	var project *domain.Project
	if args.Get(0) != nil {
		project = args.Get(0).(*domain.Project)
	}
	return project, args.Error(1)
}

func (m *MockProjectRepository) EnsureProjectInTx(ctx context.Context, tx pgx.Tx, userName, name, description string) (*domain.Project, error) {
	args := m.Called(ctx, tx, userName, name, description)
	var project *domain.Project
	if args.Get(0) != nil {
		project = args.Get(0).(*domain.Project)
	}
	return project, args.Error(1)
}

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByName(ctx context.Context, name string) (*domain.User, error) {
	args := m.Called(ctx, name)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) UpdateAccessCode(ctx context.Context, userID int64, accessCodeHash string) error {
	args := m.Called(ctx, userID, accessCodeHash)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) SaveUserInTx(ctx context.Context, tx pgx.Tx, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, tx, user)
	var saved *domain.User
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.User)
	}
	return saved, args.Error(1)
}

func (m *MockUserRepository) FindUserByNameInTx(ctx context.Context, tx pgx.Tx, name string) (*domain.User, error) {
	args := m.Called(ctx, tx, name)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	var tx pgx.Tx
	if args.Get(0) != nil {
		tx = args.Get(0).(pgx.Tx)
	}
	return tx, args.Error(1)
}

func (m *MockUserRepository) BeginReadCommitted(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	var tx pgx.Tx
	if args.Get(0) != nil {
		tx = args.Get(0).(pgx.Tx)
	}
	return tx, args.Error(1)
}

func (m *MockUserRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockUserRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- MockReimbursementRepository ---
type MockReimbursementRepository struct {
	mock.Mock
}

func (m *MockReimbursementRepository) FindClaimByID(ctx context.Context, claimID int64) (*domain.ReimbursementClaim, error) {
	args := m.Called(ctx, claimID)
	var claim *domain.ReimbursementClaim
	if args.Get(0) != nil {
		claim = args.Get(0).(*domain.ReimbursementClaim)
	}
	return claim, args.Error(1)
}

func (m *MockReimbursementRepository) ListClaims(ctx context.Context, userName *string) ([]domain.ReimbursementClaim, error) {
	args := m.Called(ctx, userName)
	var claims []domain.ReimbursementClaim
	if args.Get(0) != nil {
		claims = args.Get(0).([]domain.ReimbursementClaim)
	}
	return claims, args.Error(1)
}

func (m *MockReimbursementRepository) ClaimStats(ctx context.Context, userName *string) (domain.ClaimStats, error) {
	args := m.Called(ctx, userName)
	return args.Get(0).(domain.ClaimStats), args.Error(1)
}

func (m *MockReimbursementRepository) SaveClaim(ctx context.Context, claim domain.ReimbursementClaim) (int64, error) {
	args := m.Called(ctx, claim)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReimbursementRepository) TransitionClaim(ctx context.Context, t domain.ClaimTransition) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

// --- MockClaimNotifier ---
type MockClaimNotifier struct {
	mock.Mock
}

func (m *MockClaimNotifier) PublishClaimEvent(ctx context.Context, event domain.ClaimEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }
