package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/cashclaim/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestReimbursementMapping_NullableFields(t *testing.T) {
	pending := ToModelReimbursement(domain.ReimbursementClaim{ClaimID: 1, Status: domain.ClaimPending})
	assert.False(t, pending.ProcessedAt.Valid)
	assert.False(t, pending.ProcessedBy.Valid)
	assert.Nil(t, ToDomainReimbursement(pending).ProcessedAt)
	assert.Nil(t, ToDomainReimbursement(pending).ProcessedBy)

	at := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	by := "Admin"
	paid := ToModelReimbursement(domain.ReimbursementClaim{ClaimID: 1, Status: domain.ClaimPaid, ProcessedAt: &at, ProcessedBy: &by})
	back := ToDomainReimbursement(paid)
	assert.Equal(t, at, *back.ProcessedAt)
	assert.Equal(t, "Admin", *back.ProcessedBy)
	assert.Equal(t, domain.ClaimPaid, back.Status)
}

func TestLedgerMapping_KeepsType(t *testing.T) {
	entry := domain.LedgerEntry{EntryID: 3, Type: domain.Expense, Amount: 500, UserName: "Budi", ProjectID: 9}
	assert.Equal(t, "expense", ToModelExpense(entry).Type)
	assert.Equal(t, entry, ToDomainLedgerEntry(ToModelExpense(entry)))
}
