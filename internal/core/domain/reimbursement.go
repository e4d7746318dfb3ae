package domain

import (
	"fmt"
	"time"
)

// ClaimStatus is the state of a reimbursement claim.
type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "pending"
	ClaimApproved ClaimStatus = "approved"
	ClaimRejected ClaimStatus = "rejected"
	ClaimPaid     ClaimStatus = "paid"
)

// allowedTransitions lists every legal forward move. rejected and paid are terminal.
var allowedTransitions = map[ClaimStatus][]ClaimStatus{
	ClaimPending:  {ClaimApproved, ClaimRejected},
	ClaimApproved: {ClaimPaid},
}

// CanTransitionTo reports whether a claim in status s may move to next.
func (s ClaimStatus) CanTransitionTo(next ClaimStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s ClaimStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// ParseClaimStatus validates a raw status string.
func ParseClaimStatus(s string) (ClaimStatus, error) {
	switch ClaimStatus(s) {
	case ClaimPending, ClaimApproved, ClaimRejected, ClaimPaid:
		return ClaimStatus(s), nil
	}
	return "", fmt.Errorf("invalid claim status %q", s)
}

// ReimbursementClaim is a user's request to be paid back for an out-of-pocket expense.
type ReimbursementClaim struct {
	ClaimID     int64       `json:"claimID"`
	UserName    string      `json:"userName"`
	Date        time.Time   `json:"date"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Amount      int64       `json:"amount"`
	Status      ClaimStatus `json:"status"`
	Notes       string      `json:"notes"`
	SubmittedAt time.Time   `json:"submittedAt"`
	ProcessedAt *time.Time  `json:"processedAt,omitempty"`
	ProcessedBy *string     `json:"processedBy,omitempty"`
}

// ClaimTransition describes a status change applied by an administrator.
type ClaimTransition struct {
	ClaimID     int64
	From        ClaimStatus
	To          ClaimStatus
	Notes       *string // nil keeps the stored notes
	ProcessedBy string
	ProcessedAt time.Time
}

// RecordsDecision reports whether the transition is the approve or reject decision. Only
// decisions stamp processed_at/processed_by; paying keeps the approver's stamp.
func (t ClaimTransition) RecordsDecision() bool {
	return t.From == ClaimPending
}

// ClaimStats summarises claims per status.
type ClaimStats struct {
	PendingCount  int64 `json:"pendingCount"`
	PendingTotal  int64 `json:"pendingTotal"`
	ApprovedCount int64 `json:"approvedCount"`
	ApprovedTotal int64 `json:"approvedTotal"`
	RejectedCount int64 `json:"rejectedCount"`
}

// ClaimEvent is published after a claim changes status.
type ClaimEvent struct {
	ClaimID     int64       `json:"claimID"`
	UserName    string      `json:"userName"`
	Amount      int64       `json:"amount"`
	Status      ClaimStatus `json:"status"`
	ProcessedBy string      `json:"processedBy"`
	OccurredAt  time.Time   `json:"occurredAt"`
}
