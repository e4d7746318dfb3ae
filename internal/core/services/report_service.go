package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cashclaim/internal/core/domain"
	portsrepo "github.com/SscSPs/cashclaim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashclaim/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// reportService implements the ReportSvc interface
type reportService struct {
	BaseService
	userRepo    portsrepo.UserReader
	ledgerRepo  portsrepo.LedgerReader
	concurrency int
}

// NewReportService creates a report service running at most concurrency per-user aggregates at once.
func NewReportService(userRepo portsrepo.UserReader, ledgerRepo portsrepo.LedgerReader, concurrency int) portssvc.ReportSvc {
	if concurrency < 1 {
		concurrency = 1
	}
	return &reportService{
		userRepo:    userRepo,
		ledgerRepo:  ledgerRepo,
		concurrency: concurrency,
	}
}

var _ portssvc.ReportSvc = (*reportService)(nil)

// MonthlyReport lists every user's income and expense for month alongside their all-time balance.
func (s *reportService) MonthlyReport(ctx context.Context, principal domain.Principal, month domain.Month) (*domain.MonthlyReport, error) {
	if err := s.RequireAdmin(ctx, principal, "monthly report"); err != nil {
		return nil, err
	}

	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users for report")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	rows := make([]domain.UserReportRow, len(users))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range users {
		name := users[i].Name
		g.Go(func() error {
			monthly, err := s.ledgerRepo.SumTotals(gctx, domain.LedgerFilter{UserName: &name, Month: &month})
			if err != nil {
				return fmt.Errorf("monthly totals for %s: %w", name, err)
			}
			allTime, err := s.ledgerRepo.SumTotals(gctx, domain.LedgerFilter{UserName: &name})
			if err != nil {
				return fmt.Errorf("balance for %s: %w", name, err)
			}
			rows[i] = domain.UserReportRow{
				UserName:       name,
				MonthlyIncome:  monthly.Income,
				MonthlyExpense: monthly.Expense,
				Balance:        allTime.Net(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build monthly report", slog.String("month", month.String()))
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	report := &domain.MonthlyReport{Month: month, Rows: rows}
	for _, row := range rows {
		report.GrandTotalIncome += row.MonthlyIncome
		report.GrandTotalExpense += row.MonthlyExpense
		report.GrandBalance += row.Balance
	}
	return report, nil
}
