package models

import "time"

// Expense is a row of the expenses table: one income or expense line.
type Expense struct {
	ID          int64     `db:"id"`
	Date        time.Time `db:"date"`
	Description string    `db:"description"`
	Category    string    `db:"category"`
	Amount      int64     `db:"amount"`
	Type        string    `db:"type"`
	User        string    `db:"user"`
	ProjectID   int64     `db:"project_id"`
	CreatedAt   time.Time `db:"created_at"`
}
