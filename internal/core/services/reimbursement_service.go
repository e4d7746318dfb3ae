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
)

// reimbursementService drives claims through pending -> approved|rejected, approved -> paid.
type reimbursementService struct {
	BaseService
	claimRepo portsrepo.ReimbursementRepositoryFacade
	notifier  portssvc.ClaimNotifier
	now       func() time.Time
}

// ReimbursementServiceOption is a functional option for configuring the reimbursement service
type ReimbursementServiceOption func(*reimbursementService)

// WithClaimNotifier publishes an event after every successful status change.
func WithClaimNotifier(notifier portssvc.ClaimNotifier) ReimbursementServiceOption {
	return func(s *reimbursementService) {
		s.notifier = notifier
	}
}

// WithReimbursementClock overrides the time source for processed_at stamps.
func WithReimbursementClock(now func() time.Time) ReimbursementServiceOption {
	return func(s *reimbursementService) {
		s.now = now
	}
}

// NewReimbursementService creates a new reimbursement workflow with the provided options
func NewReimbursementService(repo portsrepo.ReimbursementRepositoryFacade, options ...ReimbursementServiceOption) portssvc.ReimbursementSvcFacade {
	svc := &reimbursementService{
		claimRepo: repo,
		now:       time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReimbursementSvcFacade = (*reimbursementService)(nil)

func (s *reimbursementService) Submit(ctx context.Context, principal domain.Principal, req dto.SubmitClaimRequest) (int64, error) {
	date, err := domain.ParseDate(strings.TrimSpace(req.Date))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	category := strings.TrimSpace(req.Category)
	description := strings.TrimSpace(req.Description)
	if category == "" || description == "" {
		return 0, fmt.Errorf("%w: category and description are required", apperrors.ErrValidation)
	}
	amount, err := money.ParseAmount(req.Amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}

	claimID, err := s.claimRepo.SaveClaim(ctx, domain.ReimbursementClaim{
		UserName:    principal.UserName,
		Date:        date,
		Category:    category,
		Description: description,
		Amount:      amount,
		Status:      domain.ClaimPending,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save claim", slog.String("user", principal.UserName))
		return 0, fmt.Errorf("failed to submit claim: %w", err)
	}

	s.LogInfo(ctx, "Claim submitted", slog.Int64("claim_id", claimID), slog.Int64("amount", amount))
	return claimID, nil
}

func (s *reimbursementService) Approve(ctx context.Context, principal domain.Principal, claimID int64, notes *string) error {
	var trimmed *string
	if notes != nil {
		n := strings.TrimSpace(*notes)
		trimmed = &n
	}
	return s.transition(ctx, principal, claimID, domain.ClaimApproved, trimmed)
}

func (s *reimbursementService) Reject(ctx context.Context, principal domain.Principal, claimID int64, notes string) error {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return fmt.Errorf("%w: a rejection reason is required", apperrors.ErrValidation)
	}
	return s.transition(ctx, principal, claimID, domain.ClaimRejected, &notes)
}

func (s *reimbursementService) MarkPaid(ctx context.Context, principal domain.Principal, claimID int64) error {
	return s.transition(ctx, principal, claimID, domain.ClaimPaid, nil)
}

func (s *reimbursementService) transition(ctx context.Context, principal domain.Principal, claimID int64, to domain.ClaimStatus, notes *string) error {
	if err := s.RequireAdmin(ctx, principal, "claim "+string(to)); err != nil {
		return err
	}

	claim, err := s.claimRepo.FindClaimByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: claim %d", apperrors.ErrNotFound, claimID)
		}
		return fmt.Errorf("failed to look up claim: %w", err)
	}
	if !claim.Status.CanTransitionTo(to) {
		return fmt.Errorf("%w: claim %d is %s, cannot become %s", apperrors.ErrInvalidState, claimID, claim.Status, to)
	}

	processedAt := s.now().UTC()
	err = s.claimRepo.TransitionClaim(ctx, domain.ClaimTransition{
		ClaimID:     claimID,
		From:        claim.Status,
		To:          to,
		Notes:       notes,
		ProcessedBy: principal.UserName,
		ProcessedAt: processedAt,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) {
			// Someone else moved the claim between our read and the update.
			return fmt.Errorf("%w: claim %d is no longer %s", apperrors.ErrInvalidState, claimID, claim.Status)
		}
		s.LogError(ctx, err, "Failed to update claim status", slog.Int64("claim_id", claimID))
		return fmt.Errorf("failed to update claim: %w", err)
	}

	s.LogInfo(ctx, "Claim status changed",
		slog.Int64("claim_id", claimID),
		slog.String("from", string(claim.Status)),
		slog.String("to", string(to)))

	s.publish(ctx, domain.ClaimEvent{
		ClaimID:     claimID,
		UserName:    claim.UserName,
		Amount:      claim.Amount,
		Status:      to,
		ProcessedBy: principal.UserName,
		OccurredAt:  processedAt,
	})
	return nil
}

// publish never fails the caller: the status change is already committed.
func (s *reimbursementService) publish(ctx context.Context, event domain.ClaimEvent) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.PublishClaimEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish claim event",
			slog.Int64("claim_id", event.ClaimID),
			slog.String("status", string(event.Status)))
	}
}

func (s *reimbursementService) ListClaims(ctx context.Context, principal domain.Principal, userFilter *string) ([]domain.ReimbursementClaim, error) {
	scope, err := s.claimScope(ctx, principal, userFilter)
	if err != nil {
		return nil, err
	}
	claims, err := s.claimRepo.ListClaims(ctx, scope)
	if err != nil {
		s.LogError(ctx, err, "Failed to list claims")
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}
	return claims, nil
}

func (s *reimbursementService) Stats(ctx context.Context, principal domain.Principal, userFilter *string) (*domain.ClaimStats, error) {
	scope, err := s.claimScope(ctx, principal, userFilter)
	if err != nil {
		return nil, err
	}
	stats, err := s.claimRepo.ClaimStats(ctx, scope)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate claim stats")
		return nil, fmt.Errorf("failed to compute claim stats: %w", err)
	}
	return &stats, nil
}

// claimScope returns the user filter to apply: nil means every user (admins only).
func (s *reimbursementService) claimScope(ctx context.Context, principal domain.Principal, userFilter *string) (*string, error) {
	filter := (*string)(nil)
	if userFilter != nil {
		filter = optionalString(*userFilter)
	}
	if filter == nil {
		if principal.IsAdmin {
			return nil, nil
		}
		own := principal.UserName
		return &own, nil
	}
	if err := s.RequireAccess(ctx, principal, *filter); err != nil {
		return nil, err
	}
	return filter, nil
}
