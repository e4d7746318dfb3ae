package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/cashclaim/internal/apperrors"
	"github.com/SscSPs/cashclaim/internal/core/domain"
	portsrepo "github.com/SscSPs/cashclaim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashclaim/internal/core/ports/services"
	"github.com/SscSPs/cashclaim/internal/dto"
	"github.com/SscSPs/cashclaim/internal/utils/money"
	"github.com/SscSPs/cashclaim/internal/utils/pagination"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// transactionService records and removes individual ledger entries.
type transactionService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	projectRepo portsrepo.ProjectReader
}

// NewTransactionService creates a new transaction recorder.
func NewTransactionService(ledgerRepo portsrepo.LedgerRepositoryFacade, projectRepo portsrepo.ProjectReader) portssvc.TransactionRecorderSvc {
	return &transactionService{
		ledgerRepo:  ledgerRepo,
		projectRepo: projectRepo,
	}
}

var _ portssvc.TransactionRecorderSvc = (*transactionService)(nil)

func (s *transactionService) RecordEntry(ctx context.Context, principal domain.Principal, req dto.RecordEntryRequest) (int64, error) {
	userName, err := s.resolveUser(ctx, principal, req.TargetUser)
	if err != nil {
		return 0, err
	}

	date, amount, err := parseDateAndAmount(req.Date, req.Amount)
	if err != nil {
		return 0, err
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return 0, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	entryType, err := domain.ParseEntryType(strings.TrimSpace(req.Type))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	projectName := domain.DefaultProjectName
	if req.Project != nil && strings.TrimSpace(*req.Project) != "" {
		projectName = strings.TrimSpace(*req.Project)
	}
	project, err := s.projectRepo.FindProjectByName(ctx, userName, projectName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, fmt.Errorf("%w: project %q of %s", apperrors.ErrNotFound, projectName, userName)
		}
		return 0, fmt.Errorf("failed to look up project: %w", err)
	}

	entry := domain.LedgerEntry{
		Date:        date,
		Description: description,
		Category:    strings.TrimSpace(req.Category),
		Amount:      amount,
		Type:        entryType,
		UserName:    userName,
		ProjectID:   project.ProjectID,
	}
	entryID, err := s.ledgerRepo.SaveEntry(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to save ledger entry", slog.String("user", userName))
		return 0, fmt.Errorf("failed to record entry: %w", err)
	}

	s.LogInfo(ctx, "Ledger entry recorded",
		slog.Int64("entry_id", entryID),
		slog.String("user", userName),
		slog.String("type", string(entryType)),
		slog.Int64("amount", amount))
	return entryID, nil
}

func (s *transactionService) DeleteEntry(ctx context.Context, principal domain.Principal, entryID int64) error {
	entry, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: entry %d", apperrors.ErrNotFound, entryID)
		}
		return fmt.Errorf("failed to look up entry: %w", err)
	}
	if err := s.RequireAccess(ctx, principal, entry.UserName); err != nil {
		return err
	}

	if err := s.ledgerRepo.DeleteEntry(ctx, entryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Removed concurrently.
			return fmt.Errorf("%w: entry %d", apperrors.ErrNotFound, entryID)
		}
		s.LogError(ctx, err, "Failed to delete ledger entry", slog.Int64("entry_id", entryID))
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	s.LogInfo(ctx, "Ledger entry deleted", slog.Int64("entry_id", entryID), slog.String("owner", entry.UserName))
	return nil
}

func (s *transactionService) ListEntries(ctx context.Context, principal domain.Principal, params dto.ListEntriesParams) ([]domain.LedgerEntry, *string, error) {
	var filter domain.LedgerFilter

	// An admin without a user filter lists every ledger.
	if params.User != "" || !principal.IsAdmin {
		userName, err := s.resolveUser(ctx, principal, &params.User)
		if err != nil {
			return nil, nil, err
		}
		filter.UserName = &userName
	}

	if project := strings.TrimSpace(params.Project); project != "" {
		if filter.UserName == nil {
			return nil, nil, fmt.Errorf("%w: project filter requires a user", apperrors.ErrValidation)
		}
		p, err := s.projectRepo.FindProjectByName(ctx, *filter.UserName, project)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, nil, fmt.Errorf("%w: project %q of %s", apperrors.ErrNotFound, project, *filter.UserName)
			}
			return nil, nil, fmt.Errorf("failed to look up project: %w", err)
		}
		filter.ProjectID = &p.ProjectID
	}

	if params.Month != "" {
		month, err := domain.ParseMonth(params.Month)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		filter.Month = &month
	}

	if params.Type != "" {
		entryType, err := domain.ParseEntryType(params.Type)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		filter.Type = &entryType
	}

	if params.NextToken != nil && *params.NextToken != "" {
		if _, _, err := pagination.DecodeToken(*params.NextToken); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	} else {
		params.NextToken = nil
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	entries, nextToken, err := s.ledgerRepo.ListEntries(ctx, filter, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries")
		return nil, nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nextToken, nil
}

// parseDateAndAmount validates the two fields shared by entries, transfers and claims.
func parseDateAndAmount(rawDate, rawAmount string) (time.Time, int64, error) {
	date, err := domain.ParseDate(strings.TrimSpace(rawDate))
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	amount, err := money.ParseAmount(rawAmount)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if amount <= 0 {
		return time.Time{}, 0, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	return date, amount, nil
}
