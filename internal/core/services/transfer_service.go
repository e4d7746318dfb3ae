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
	"github.com/SscSPs/cashclaim/internal/dto"
	"github.com/jackc/pgx/v5"
)

const (
	defaultTransferDescription = "Transfer"
	defaultMoveDescription     = "Pindah Dana"
)

// transferService writes the debit and credit halves of a transfer in one transaction under a wallet lock.
type transferService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepositoryWithTx
	projectRepo portsrepo.ProjectTransactionSupport
	userRepo    portsrepo.UserTransactionSupport
}

// NewTransferService creates a new transfer engine.
func NewTransferService(
	ledgerRepo portsrepo.LedgerRepositoryWithTx,
	projectRepo portsrepo.ProjectTransactionSupport,
	userRepo portsrepo.UserTransactionSupport,
) portssvc.TransferSvc {
	return &transferService{
		ledgerRepo:  ledgerRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

var _ portssvc.TransferSvc = (*transferService)(nil)

func (s *transferService) TransferBetweenUsers(ctx context.Context, principal domain.Principal, req dto.TransferRequest) (*domain.TransferResult, error) {
	recipient := strings.TrimSpace(req.Recipient)
	if recipient == "" {
		return nil, fmt.Errorf("%w: recipient is required", apperrors.ErrValidation)
	}
	if recipient == principal.UserName {
		return nil, fmt.Errorf("%w: cannot transfer to yourself", apperrors.ErrValidation)
	}
	date, amount, err := parseDateAndAmount(req.Date, req.Amount)
	if err != nil {
		return nil, err
	}

	sourceProject := domain.DefaultProjectName
	if req.Project != nil && strings.TrimSpace(*req.Project) != "" {
		sourceProject = strings.TrimSpace(*req.Project)
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = defaultTransferDescription
	}

	plan := domain.TransferPlan{
		Date:   date,
		Amount: amount,
		Source: domain.TransferLeg{
			UserName:    principal.UserName,
			ProjectName: sourceProject,
			Category:    domain.CategoryTransferOut,
			Description: fmt.Sprintf("Transfer ke %s: %s", recipient, description),
		},
		Target: domain.TransferLeg{
			UserName:    recipient,
			ProjectName: domain.DefaultProjectName,
			Category:    domain.CategoryTransferIn,
			Description: fmt.Sprintf("Transfer dari %s: %s", principal.UserName, description),
		},
	}
	return s.execute(ctx, plan)
}

func (s *transferService) MoveBetweenProjects(ctx context.Context, principal domain.Principal, req dto.MoveRequest) (*domain.TransferResult, error) {
	source := strings.TrimSpace(req.SourceProject)
	target := strings.TrimSpace(req.TargetProject)
	if source == "" || target == "" {
		return nil, fmt.Errorf("%w: source and target projects are required", apperrors.ErrValidation)
	}
	if source == target {
		return nil, fmt.Errorf("%w: source and target project must differ", apperrors.ErrValidation)
	}
	date, amount, err := parseDateAndAmount(req.Date, req.Amount)
	if err != nil {
		return nil, err
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = defaultMoveDescription
	}

	plan := domain.TransferPlan{
		Date:   date,
		Amount: amount,
		Source: domain.TransferLeg{
			UserName:    principal.UserName,
			ProjectName: source,
			Category:    domain.CategoryMoveOut,
			Description: fmt.Sprintf("Pindah Dana ke %s: %s", target, description),
		},
		Target: domain.TransferLeg{
			UserName:    principal.UserName,
			ProjectName: target,
			Category:    domain.CategoryMoveIn,
			Description: fmt.Sprintf("Pindah Dana dari %s: %s", source, description),
		},
	}
	return s.execute(ctx, plan)
}

// execute runs a validated plan. Either both entries are committed or neither is.
func (s *transferService) execute(ctx context.Context, plan domain.TransferPlan) (*domain.TransferResult, error) {
	logger := s.GetLogger(ctx).With(
		slog.String("from_user", plan.Source.UserName),
		slog.String("from_project", plan.Source.ProjectName),
		slog.String("to_user", plan.Target.UserName),
		slog.String("to_project", plan.Target.ProjectName),
		slog.Int64("amount", plan.Amount),
	)

	tx, err := s.ledgerRepo.BeginReadCommitted(ctx)
	if err != nil {
		logger.Error("Failed to begin transfer transaction", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to begin transfer: %w", err)
	}
	defer func() { _ = s.ledgerRepo.Rollback(ctx, tx) }() // no-op after a successful commit

	result, err := s.writeLegs(ctx, tx, plan)
	if err != nil {
		logger.Warn("Transfer aborted", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.ledgerRepo.Commit(ctx, tx); err != nil {
		logger.Error("Failed to commit transfer", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to commit transfer: %w", err)
	}

	logger.Info("Transfer committed",
		slog.Int64("debit_entry_id", result.DebitEntryID),
		slog.Int64("credit_entry_id", result.CreditEntryID))
	return result, nil
}

func (s *transferService) writeLegs(ctx context.Context, tx pgx.Tx, plan domain.TransferPlan) (*domain.TransferResult, error) {
	// Concurrent movements out of the same wallet wait here. The transaction is READ COMMITTED,
	// so the balance read below already includes whatever the previous holder committed.
	if err := s.ledgerRepo.LockWalletInTx(ctx, tx, plan.Source.UserName); err != nil {
		return nil, fmt.Errorf("failed to lock wallet: %w", err)
	}

	if plan.Target.UserName != plan.Source.UserName {
		if _, err := s.userRepo.FindUserByNameInTx(ctx, tx, plan.Target.UserName); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: recipient %q", apperrors.ErrNotFound, plan.Target.UserName)
			}
			return nil, fmt.Errorf("failed to look up recipient: %w", err)
		}
	}

	sourceProject, err := s.projectRepo.FindProjectByNameInTx(ctx, tx, plan.Source.UserName, plan.Source.ProjectName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: project %q of %s", apperrors.ErrNotFound, plan.Source.ProjectName, plan.Source.UserName)
		}
		return nil, fmt.Errorf("failed to look up source project: %w", err)
	}

	totals, err := s.ledgerRepo.SumTotalsInTx(ctx, tx, domain.LedgerFilter{
		UserName:  &plan.Source.UserName,
		ProjectID: &sourceProject.ProjectID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute source balance: %w", err)
	}
	if balance := totals.Net(); balance < plan.Amount {
		return nil, fmt.Errorf("%w: %s/%s holds %d, needs %d", apperrors.ErrInsufficientBalance,
			plan.Source.UserName, plan.Source.ProjectName, balance, plan.Amount)
	}

	targetProject, err := s.resolveTargetProject(ctx, tx, plan)
	if err != nil {
		return nil, err
	}

	debitID, err := s.ledgerRepo.SaveEntryInTx(ctx, tx, domain.LedgerEntry{
		Date:        plan.Date,
		Description: plan.Source.Description,
		Category:    plan.Source.Category,
		Amount:      plan.Amount,
		Type:        domain.Expense,
		UserName:    plan.Source.UserName,
		ProjectID:   sourceProject.ProjectID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to write debit entry: %w", err)
	}

	creditID, err := s.ledgerRepo.SaveEntryInTx(ctx, tx, domain.LedgerEntry{
		Date:        plan.Date,
		Description: plan.Target.Description,
		Category:    plan.Target.Category,
		Amount:      plan.Amount,
		Type:        domain.Income,
		UserName:    plan.Target.UserName,
		ProjectID:   targetProject.ProjectID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to write credit entry: %w", err)
	}

	return &domain.TransferResult{DebitEntryID: debitID, CreditEntryID: creditID}, nil
}

// resolveTargetProject finds the credited project. A recipient without a Main project
// (rows older than the default-project rule) gets one inside the same transaction; a move
// names an existing project of the caller and never creates one.
func (s *transferService) resolveTargetProject(ctx context.Context, tx pgx.Tx, plan domain.TransferPlan) (*domain.Project, error) {
	if plan.Target.UserName != plan.Source.UserName && plan.Target.ProjectName == domain.DefaultProjectName {
		project, err := s.projectRepo.EnsureProjectInTx(ctx, tx, plan.Target.UserName, domain.DefaultProjectName, domain.DefaultProjectDescription)
		if err != nil {
			return nil, fmt.Errorf("failed to ensure recipient project: %w", err)
		}
		return project, nil
	}

	project, err := s.projectRepo.FindProjectByNameInTx(ctx, tx, plan.Target.UserName, plan.Target.ProjectName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: project %q of %s", apperrors.ErrNotFound, plan.Target.ProjectName, plan.Target.UserName)
		}
		return nil, fmt.Errorf("failed to resolve target project: %w", err)
	}
	return project, nil
}
