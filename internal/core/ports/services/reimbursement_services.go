package services

import (
	"context"

	"github.com/SscSPs/cashclaim/internal/core/domain"
	"github.com/SscSPs/cashclaim/internal/dto"
)

// ReimbursementReaderSvc defines read operations for claims
type ReimbursementReaderSvc interface {
	// ListClaims returns the principal's claims, or all (optionally filtered) claims for an admin.
	ListClaims(ctx context.Context, principal domain.Principal, userFilter *string) ([]domain.ReimbursementClaim, error)

	// Stats aggregates claim counts and totals over the same scope as ListClaims.
	Stats(ctx context.Context, principal domain.Principal, userFilter *string) (*domain.ClaimStats, error)
}

// ReimbursementWriterSvc defines the claim workflow
type ReimbursementWriterSvc interface {
	Submit(ctx context.Context, principal domain.Principal, req dto.SubmitClaimRequest) (int64, error)
	Approve(ctx context.Context, principal domain.Principal, claimID int64, notes *string) error
	Reject(ctx context.Context, principal domain.Principal, claimID int64, notes string) error
	MarkPaid(ctx context.Context, principal domain.Principal, claimID int64) error
}

// ReimbursementSvcFacade combines all reimbursement-related service interfaces
type ReimbursementSvcFacade interface {
	ReimbursementReaderSvc
	ReimbursementWriterSvc
}
