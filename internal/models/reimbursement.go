package models

import (
	"database/sql"
	"time"
)

// Reimbursement is a row of the reimbursements table.
type Reimbursement struct {
	ID          int64          `db:"id"`
	User        string         `db:"user"`
	Date        time.Time      `db:"date"`
	Category    string         `db:"category"`
	Description string         `db:"description"`
	Amount      int64          `db:"amount"`
	Status      string         `db:"status"`
	Notes       string         `db:"notes"`
	SubmittedAt time.Time      `db:"submitted_at"`
	ProcessedAt sql.NullTime   `db:"processed_at"`
	ProcessedBy sql.NullString `db:"processed_by"`
}
