package dto

import (
	"time"

	"github.com/SscSPs/cashclaim/internal/core/domain"
	"github.com/SscSPs/cashclaim/internal/utils/money"
)

// RecordEntryRequest is the payload for recording a single income or expense.
// Amount is the raw user-typed figure, e.g. "1.250.000" or "Rp 50.000".
type RecordEntryRequest struct {
	TargetUser  *string `json:"targetUser"` // admin only
	Project     *string `json:"project"`    // defaults to Main
	Date        string  `json:"date" binding:"required,isodate"`
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category"`
	Amount      string  `json:"amount" binding:"required"`
	Type        string  `json:"type" binding:"required,entrytype"`
}

// RecordEntryResponse is returned after an entry has been stored.
type RecordEntryResponse struct {
	EntryID int64 `json:"entryID"`
}

// BalanceParams defines query parameters for the balance endpoint.
type BalanceParams struct {
	User    string `form:"user"`
	Project string `form:"project"`
	Month   string `form:"month" binding:"omitempty,yearmonth"`
}

// BalanceResponse carries a balance in whole Rupiah plus its display form.
type BalanceResponse struct {
	User      string `json:"user"`
	Project   string `json:"project,omitempty"`
	Month     string `json:"month,omitempty"`
	Balance   int64  `json:"balance"`
	Formatted string `json:"formatted"`
}

// SummaryParams defines query parameters for the dashboard summary.
type SummaryParams struct {
	User  string `form:"user"`
	Month string `form:"month" binding:"omitempty,yearmonth"`
}

// SummaryResponse is the dashboard view of a month.
type SummaryResponse struct {
	Month   string `json:"month"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
	Balance int64  `json:"balance"`
}

// ToSummaryResponse converts a domain summary.
func ToSummaryResponse(s *domain.LedgerSummary) SummaryResponse {
	return SummaryResponse{
		Month:   s.Month.String(),
		Income:  s.Monthly.Income,
		Expense: s.Monthly.Expense,
		Balance: s.Balance,
	}
}

// ListEntriesParams defines query parameters for listing entries.
type ListEntriesParams struct {
	User      string  `form:"user"`
	Project   string  `form:"project"`
	Month     string  `form:"month" binding:"omitempty,yearmonth"`
	Type      string  `form:"type" binding:"omitempty,entrytype"`
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// EntryResponse defines the data returned for a ledger entry.
type EntryResponse struct {
	EntryID     int64     `json:"entryID"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Amount      int64     `json:"amount"`
	Formatted   string    `json:"formatted"`
	Type        string    `json:"type"`
	UserName    string    `json:"userName"`
	ProjectID   int64     `json:"projectID"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListEntriesResponse wraps a page of entries.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToEntryResponse converts a domain.LedgerEntry to EntryResponse DTO.
func ToEntryResponse(e *domain.LedgerEntry) EntryResponse {
	return EntryResponse{
		EntryID:     e.EntryID,
		Date:        e.Date.Format(domain.DateLayout),
		Description: e.Description,
		Category:    e.Category,
		Amount:      e.Amount,
		Formatted:   money.FormatRupiah(e.SignedAmount()),
		Type:        string(e.Type),
		UserName:    e.UserName,
		ProjectID:   e.ProjectID,
		CreatedAt:   e.CreatedAt,
	}
}

// ToListEntriesResponse converts a page of entries.
func ToListEntriesResponse(entries []domain.LedgerEntry, nextToken *string) ListEntriesResponse {
	resp := ListEntriesResponse{
		Entries:   make([]EntryResponse, len(entries)),
		NextToken: nextToken,
	}
	for i := range entries {
		resp.Entries[i] = ToEntryResponse(&entries[i])
	}
	return resp
}
