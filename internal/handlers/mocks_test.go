package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/cashclaim/internal/core/domain"
	portssvc "github.com/SscSPs/cashclaim/internal/core/ports/services"
	"github.com/SscSPs/cashclaim/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- MockTokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) ParseAccessToken(ctx context.Context, token string) (*domain.Principal, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Principal), args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- MockUserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context, principal domain.Principal) ([]domain.User, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateAccessCode(ctx context.Context, principal domain.Principal, userID int64, accessCode string) error {
	return m.Called(ctx, principal, userID, accessCode).Error(0)
}

func (m *MockUserService) EnsureDefaultAdmin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUserService) DeleteUser(ctx context.Context, principal domain.Principal, userID int64) error {
	return m.Called(ctx, principal, userID).Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, name, accessCode string) (*domain.User, error) {
	args := m.Called(ctx, name, accessCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) PrincipalFor(userName string) domain.Principal {
	return m.Called(userName).Get(0).(domain.Principal)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- MockBalanceService ---
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) Balance(ctx context.Context, principal domain.Principal, userName string, projectName *string, month *domain.Month) (int64, error) {
	args := m.Called(ctx, principal, userName, projectName, month)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBalanceService) Summary(ctx context.Context, principal domain.Principal, userName *string, month domain.Month) (*domain.LedgerSummary, error) {
	args := m.Called(ctx, principal, userName, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerSummary), args.Error(1)
}

var _ portssvc.BalanceSvc = (*MockBalanceService)(nil)

// --- MockTransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListEntries(ctx context.Context, principal domain.Principal, params dto.ListEntriesParams) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, principal, params)
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

func (m *MockTransactionService) RecordEntry(ctx context.Context, principal domain.Principal, req dto.RecordEntryRequest) (int64, error) {
	args := m.Called(ctx, principal, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionService) DeleteEntry(ctx context.Context, principal domain.Principal, entryID int64) error {
	return m.Called(ctx, principal, entryID).Error(0)
}

var _ portssvc.TransactionRecorderSvc = (*MockTransactionService)(nil)

// --- MockTransferService ---
type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) TransferBetweenUsers(ctx context.Context, principal domain.Principal, req dto.TransferRequest) (*domain.TransferResult, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferResult), args.Error(1)
}

func (m *MockTransferService) MoveBetweenProjects(ctx context.Context, principal domain.Principal, req dto.MoveRequest) (*domain.TransferResult, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferResult), args.Error(1)
}

var _ portssvc.TransferSvc = (*MockTransferService)(nil)

// --- MockReimbursementService ---
type MockReimbursementService struct {
	mock.Mock
}

func (m *MockReimbursementService) ListClaims(ctx context.Context, principal domain.Principal, userFilter *string) ([]domain.ReimbursementClaim, error) {
	args := m.Called(ctx, principal, userFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReimbursementClaim), args.Error(1)
}

func (m *MockReimbursementService) Stats(ctx context.Context, principal domain.Principal, userFilter *string) (*domain.ClaimStats, error) {
	args := m.Called(ctx, principal, userFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClaimStats), args.Error(1)
}

func (m *MockReimbursementService) Submit(ctx context.Context, principal domain.Principal, req dto.SubmitClaimRequest) (int64, error) {
	args := m.Called(ctx, principal, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReimbursementService) Approve(ctx context.Context, principal domain.Principal, claimID int64, notes *string) error {
	return m.Called(ctx, principal, claimID, notes).Error(0)
}

func (m *MockReimbursementService) Reject(ctx context.Context, principal domain.Principal, claimID int64, notes string) error {
	return m.Called(ctx, principal, claimID, notes).Error(0)
}

func (m *MockReimbursementService) MarkPaid(ctx context.Context, principal domain.Principal, claimID int64) error {
	return m.Called(ctx, principal, claimID).Error(0)
}

var _ portssvc.ReimbursementSvcFacade = (*MockReimbursementService)(nil)

// --- MockProjectService ---
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) EnsureDefaultProject(ctx context.Context, userName string) (*domain.Project, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) CreateProject(ctx context.Context, principal domain.Principal, req dto.CreateProjectRequest) (*domain.Project, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) ListProjects(ctx context.Context, principal domain.Principal, userName string) ([]domain.ProjectBalance, error) {
	args := m.Called(ctx, principal, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectBalance), args.Error(1)
}

var _ portssvc.ProjectSvcFacade = (*MockProjectService)(nil)

// --- MockReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) MonthlyReport(ctx context.Context, principal domain.Principal, month domain.Month) (*domain.MonthlyReport, error) {
	args := m.Called(ctx, principal, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyReport), args.Error(1)
}

var _ portssvc.ReportSvc = (*MockReportService)(nil)
