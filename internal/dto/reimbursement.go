package dto

import (
	"time"

	"github.com/SscSPs/cashclaim/internal/core/domain"
	"github.com/SscSPs/cashclaim/internal/utils/money"
)

// SubmitClaimRequest is the payload for a new reimbursement claim.
type SubmitClaimRequest struct {
	Date        string `json:"date" binding:"required,isodate"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
}

// SubmitClaimResponse is returned after a claim is filed.
type SubmitClaimResponse struct {
	ClaimID int64 `json:"claimID"`
}

// ProcessClaimRequest carries the administrator's notes for approve/reject.
type ProcessClaimRequest struct {
	Notes *string `json:"notes"`
}

// ListClaimsParams defines query parameters for listing claims. User is honoured for admins only.
type ListClaimsParams struct {
	User string `form:"user"`
}

// ClaimResponse defines the data returned for a claim.
type ClaimResponse struct {
	ClaimID     int64      `json:"claimID"`
	UserName    string     `json:"userName"`
	Date        string     `json:"date"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Amount      int64      `json:"amount"`
	Formatted   string     `json:"formatted"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes"`
	SubmittedAt time.Time  `json:"submittedAt"`
	ProcessedAt *time.Time `json:"processedAt,omitempty"`
	ProcessedBy *string    `json:"processedBy,omitempty"`
}

// ListClaimsResponse wraps a list of claims.
type ListClaimsResponse struct {
	Claims []ClaimResponse `json:"claims"`
}

// ToClaimResponse converts a domain.ReimbursementClaim to ClaimResponse DTO.
func ToClaimResponse(c *domain.ReimbursementClaim) ClaimResponse {
	return ClaimResponse{
		ClaimID:     c.ClaimID,
		UserName:    c.UserName,
		Date:        c.Date.Format(domain.DateLayout),
		Category:    c.Category,
		Description: c.Description,
		Amount:      c.Amount,
		Formatted:   money.FormatRupiah(c.Amount),
		Status:      string(c.Status),
		Notes:       c.Notes,
		SubmittedAt: c.SubmittedAt,
		ProcessedAt: c.ProcessedAt,
		ProcessedBy: c.ProcessedBy,
	}
}

func ToListClaimsResponse(claims []domain.ReimbursementClaim) ListClaimsResponse {
	resp := ListClaimsResponse{Claims: make([]ClaimResponse, len(claims))}
	for i := range claims {
		resp.Claims[i] = ToClaimResponse(&claims[i])
	}
	return resp
}
