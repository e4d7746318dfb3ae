package repositories

import (
	"context"

	"github.com/SscSPs/cashclaim/internal/core/domain"
)

// ReimbursementReader defines read operations for reimbursement claims
type ReimbursementReader interface {
	FindClaimByID(ctx context.Context, claimID int64) (*domain.ReimbursementClaim, error)

	// ListClaims returns claims newest first; a nil userName lists everyone's claims.
	ListClaims(ctx context.Context, userName *string) ([]domain.ReimbursementClaim, error)

	// ClaimStats aggregates counts and totals per status.
	ClaimStats(ctx context.Context, userName *string) (domain.ClaimStats, error)
}

// ReimbursementWriter defines write operations for reimbursement claims
type ReimbursementWriter interface {
	// SaveClaim inserts a pending claim and returns its id.
	SaveClaim(ctx context.Context, claim domain.ReimbursementClaim) (int64, error)

	// TransitionClaim applies t only if the stored status still equals t.From.
	// Returns ErrInvalidState when no row matched.
	TransitionClaim(ctx context.Context, t domain.ClaimTransition) error
}

// ReimbursementRepositoryFacade combines all reimbursement-related repository interfaces
type ReimbursementRepositoryFacade interface {
	ReimbursementReader
	ReimbursementWriter
}
