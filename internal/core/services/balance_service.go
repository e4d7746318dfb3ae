package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/cashclaim/internal/apperrors"
	"github.com/SscSPs/cashclaim/internal/core/domain"
	portsrepo "github.com/SscSPs/cashclaim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashclaim/internal/core/ports/services"
)

// balanceService computes balances with a single aggregate query per call.
// Nothing is cached and no running balance is stored anywhere.
type balanceService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerReader
	projectRepo portsrepo.ProjectReader
}

// NewBalanceService creates a new balance service.
func NewBalanceService(ledgerRepo portsrepo.LedgerReader, projectRepo portsrepo.ProjectReader) portssvc.BalanceSvc {
	return &balanceService{
		ledgerRepo:  ledgerRepo,
		projectRepo: projectRepo,
	}
}

var _ portssvc.BalanceSvc = (*balanceService)(nil)

func (s *balanceService) Balance(ctx context.Context, principal domain.Principal, userName string, projectName *string, month *domain.Month) (int64, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return 0, fmt.Errorf("%w: user is required", apperrors.ErrValidation)
	}
	if err := s.RequireAccess(ctx, principal, userName); err != nil {
		return 0, err
	}

	filter := domain.LedgerFilter{UserName: &userName, Month: month}
	if projectName != nil && strings.TrimSpace(*projectName) != "" {
		projectID, err := s.lookupProjectID(ctx, userName, strings.TrimSpace(*projectName))
		if err != nil {
			return 0, err
		}
		filter.ProjectID = &projectID
	}

	totals, err := s.ledgerRepo.SumTotals(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum ledger totals", slog.String("user", userName))
		return 0, fmt.Errorf("failed to compute balance: %w", err)
	}
	return totals.Net(), nil
}

func (s *balanceService) Summary(ctx context.Context, principal domain.Principal, userName *string, month domain.Month) (*domain.LedgerSummary, error) {
	var filter domain.LedgerFilter
	switch {
	case userName != nil && strings.TrimSpace(*userName) != "":
		name := strings.TrimSpace(*userName)
		if err := s.RequireAccess(ctx, principal, name); err != nil {
			return nil, err
		}
		filter.UserName = &name
	case !principal.IsAdmin:
		name := principal.UserName
		filter.UserName = &name
	}
	// An admin without a user filter gets the global view: UserName stays nil.

	monthly := filter
	monthly.Month = &month
	monthlyTotals, err := s.ledgerRepo.SumTotals(ctx, monthly)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum monthly totals", slog.String("month", month.String()))
		return nil, fmt.Errorf("failed to compute monthly totals: %w", err)
	}

	allTime, err := s.ledgerRepo.SumTotals(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum all-time totals")
		return nil, fmt.Errorf("failed to compute balance: %w", err)
	}

	return &domain.LedgerSummary{
		Month:   month,
		Monthly: monthlyTotals,
		Balance: allTime.Net(),
	}, nil
}

func (s *balanceService) lookupProjectID(ctx context.Context, userName, projectName string) (int64, error) {
	project, err := s.projectRepo.FindProjectByName(ctx, userName, projectName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, fmt.Errorf("%w: project %q of %s", apperrors.ErrNotFound, projectName, userName)
		}
		return 0, fmt.Errorf("failed to look up project: %w", err)
	}
	return project.ProjectID, nil
}
