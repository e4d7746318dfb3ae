package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/cashclaim/internal/apperrors"
	"github.com/SscSPs/cashclaim/internal/core/domain"
	"github.com/SscSPs/cashclaim/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMonthlyReport(t *testing.T) {
	store := newMemStore()
	store.seedUser("Ani")
	store.seedUser("Budi")
	store.seedEntry("Ani", "Main", domain.Income, 100000)
	store.seedEntry("Ani", "Main", domain.Expense, 40000)
	store.seedEntry("Budi", "Main", domain.Income, 30000)
	svc := services.NewReportService(store, store, 2)

	report, err := svc.MonthlyReport(context.Background(), domain.Principal{UserName: "Admin", IsAdmin: true}, domain.Month{Year: 2025, Month: 1})

	require.NoError(t, err)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, domain.UserReportRow{UserName: "Ani", MonthlyIncome: 100000, MonthlyExpense: 40000, Balance: 60000}, report.Rows[0])
	assert.Equal(t, domain.UserReportRow{UserName: "Budi", MonthlyIncome: 30000, Balance: 30000}, report.Rows[1])
	assert.Equal(t, int64(130000), report.GrandTotalIncome)
	assert.Equal(t, int64(40000), report.GrandTotalExpense)
	assert.Equal(t, int64(90000), report.GrandBalance)
}

func TestMonthlyReport_OtherMonthKeepsBalance(t *testing.T) {
	store := newMemStore()
	store.seedUser("Ani")
	store.seedEntry("Ani", "Main", domain.Income, 100000)
	svc := services.NewReportService(store, store, 0)

	report, err := svc.MonthlyReport(context.Background(), domain.Principal{UserName: "Admin", IsAdmin: true}, domain.Month{Year: 2025, Month: 2})

	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Zero(t, report.Rows[0].MonthlyIncome)
	assert.Equal(t, int64(100000), report.Rows[0].Balance)
}

func TestMonthlyReport_AdminOnly(t *testing.T) {
	store := newMemStore()
	svc := services.NewReportService(store, store, 4)

	_, err := svc.MonthlyReport(context.Background(), domain.Principal{UserName: "Budi"}, domain.Month{Year: 2025, Month: 1})

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestMonthlyReport_AggregateFailure(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserRepository)
	ledger := new(MockLedgerRepository)
	users.On("ListUsers", ctx).Return([]domain.User{{Name: "Ani"}}, nil).Once()
	ledger.On("SumTotals", mock.Anything, mock.Anything).Return(domain.Totals{}, apperrors.NewAppError(500, "failed to sum ledger", assert.AnError))
	svc := services.NewReportService(users, ledger, 1)

	_, err := svc.MonthlyReport(ctx, domain.Principal{UserName: "Admin", IsAdmin: true}, domain.Month{Year: 2025, Month: 1})

	assert.ErrorIs(t, err, apperrors.ErrPersistence)
}
