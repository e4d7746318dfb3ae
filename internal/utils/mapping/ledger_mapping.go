package mapping

import (
	"github.com/SscSPs/cashclaim/internal/core/domain"
	"github.com/SscSPs/cashclaim/internal/models"
)

// ToModelExpense converts a domain LedgerEntry to an expenses row.
func ToModelExpense(d domain.LedgerEntry) models.Expense {
	return models.Expense{
		ID:          d.EntryID,
		Date:        d.Date,
		Description: d.Description,
		Category:    d.Category,
		Amount:      d.Amount,
		Type:        string(d.Type),
		User:        d.UserName,
		ProjectID:   d.ProjectID,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainLedgerEntry converts an expenses row to a domain LedgerEntry.
func ToDomainLedgerEntry(m models.Expense) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:     m.ID,
		Date:        m.Date,
		Description: m.Description,
		Category:    m.Category,
		Amount:      m.Amount,
		Type:        domain.EntryType(m.Type),
		UserName:    m.User,
		ProjectID:   m.ProjectID,
		CreatedAt:   m.CreatedAt,
	}
}

func ToDomainLedgerEntrySlice(ms []models.Expense) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
