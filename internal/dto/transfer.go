package dto

import "github.com/SscSPs/cashclaim/internal/core/domain"

// TransferRequest moves funds from the caller to another user's Main project.
type TransferRequest struct {
	Recipient   string  `json:"recipient" binding:"required"`
	Project     *string `json:"project"` // source project, defaults to Main
	Date        string  `json:"date" binding:"required,isodate"`
	Amount      string  `json:"amount" binding:"required"`
	Description string  `json:"description"`
}

// MoveRequest moves funds between two of the caller's own projects.
type MoveRequest struct {
	SourceProject string `json:"sourceProject" binding:"required"`
	TargetProject string `json:"targetProject" binding:"required"`
	Date          string `json:"date" binding:"required,isodate"`
	Amount        string `json:"amount" binding:"required"`
	Description   string `json:"description"`
}

// TransferResponse identifies the debit and credit entries that were written.
type TransferResponse struct {
	DebitEntryID  int64 `json:"debitEntryID"`
	CreditEntryID int64 `json:"creditEntryID"`
}

func ToTransferResponse(r *domain.TransferResult) TransferResponse {
	return TransferResponse{DebitEntryID: r.DebitEntryID, CreditEntryID: r.CreditEntryID}
}
