package domain

import (
	"fmt"
	"time"
)

// EntryType tags a ledger entry as money in or money out.
type EntryType string

const (
	Income  EntryType = "income"
	Expense EntryType = "expense"
)

// Categories written by the transfer engine.
const (
	CategoryTransferOut = "Transfer Keluar"
	CategoryTransferIn  = "Transfer Masuk"
	CategoryMoveOut     = "Pindah Dana Keluar"
	CategoryMoveIn      = "Pindah Dana Masuk"
)

// ParseEntryType validates a raw type tag.
func ParseEntryType(s string) (EntryType, error) {
	switch EntryType(s) {
	case Income, Expense:
		return EntryType(s), nil
	}
	return "", fmt.Errorf("invalid entry type %q: expected income or expense", s)
}

// LedgerEntry is a single dated income or expense record. Entries are never updated.
type LedgerEntry struct {
	EntryID     int64     `json:"entryID"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Amount      int64     `json:"amount"` // whole Rupiah, always positive
	Type        EntryType `json:"type"`
	UserName    string    `json:"userName"`
	ProjectID   int64     `json:"projectID"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SignedAmount is the entry's contribution to a balance.
func (e LedgerEntry) SignedAmount() int64 {
	if e.Type == Expense {
		return -e.Amount
	}
	return e.Amount
}

// LedgerFilter scopes balance and listing queries. Nil/zero fields do not filter.
type LedgerFilter struct {
	UserName  *string
	ProjectID *int64
	Month     *Month
	Type      *EntryType
}
