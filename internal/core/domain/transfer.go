package domain

import "time"

// TransferLeg is one side of a paired debit/credit written by the transfer engine.
type TransferLeg struct {
	UserName    string
	ProjectName string
	Category    string
	Description string
}

// TransferPlan is a validated, not yet executed movement of funds.
type TransferPlan struct {
	Date   time.Time
	Amount int64
	Source TransferLeg // written as an expense
	Target TransferLeg // written as an income
}

// TransferResult identifies the two entries written for a transfer or move.
type TransferResult struct {
	DebitEntryID  int64 `json:"debitEntryID"`
	CreditEntryID int64 `json:"creditEntryID"`
}
