package mapping

import (
	"github.com/SscSPs/cashclaim/internal/core/domain"
	"github.com/SscSPs/cashclaim/internal/models"
)

// ToModelReimbursement converts a domain claim to a reimbursements row.
func ToModelReimbursement(d domain.ReimbursementClaim) models.Reimbursement {
	m := models.Reimbursement{
		ID:          d.ClaimID,
		User:        d.UserName,
		Date:        d.Date,
		Category:    d.Category,
		Description: d.Description,
		Amount:      d.Amount,
		Status:      string(d.Status),
		Notes:       d.Notes,
		SubmittedAt: d.SubmittedAt,
	}
	if d.ProcessedAt != nil {
		m.ProcessedAt.Time = *d.ProcessedAt
		m.ProcessedAt.Valid = true
	}
	if d.ProcessedBy != nil {
		m.ProcessedBy.String = *d.ProcessedBy
		m.ProcessedBy.Valid = true
	}
	return m
}

// ToDomainReimbursement converts a reimbursements row to a domain claim.
func ToDomainReimbursement(m models.Reimbursement) domain.ReimbursementClaim {
	d := domain.ReimbursementClaim{
		ClaimID:     m.ID,
		UserName:    m.User,
		Date:        m.Date,
		Category:    m.Category,
		Description: m.Description,
		Amount:      m.Amount,
		Status:      domain.ClaimStatus(m.Status),
		Notes:       m.Notes,
		SubmittedAt: m.SubmittedAt,
	}
	if m.ProcessedAt.Valid {
		t := m.ProcessedAt.Time
		d.ProcessedAt = &t
	}
	if m.ProcessedBy.Valid {
		by := m.ProcessedBy.String
		d.ProcessedBy = &by
	}
	return d
}

func ToDomainReimbursementSlice(ms []models.Reimbursement) []domain.ReimbursementClaim {
	ds := make([]domain.ReimbursementClaim, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReimbursement(m)
	}
	return ds
}
