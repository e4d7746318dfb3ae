package domain

// Totals holds income and expense sums over some ledger scope.
type Totals struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
}

// Net returns income minus expense.
func (t Totals) Net() int64 {
	return t.Income - t.Expense
}

// LedgerSummary is the dashboard view: flows for one month and the all-time balance.
type LedgerSummary struct {
	Month   Month  `json:"-"`
	Monthly Totals `json:"monthly"`
	Balance int64  `json:"balance"`
}

// UserReportRow is one user's line in the monthly report.
type UserReportRow struct {
	UserName       string `json:"userName"`
	MonthlyIncome  int64  `json:"monthlyIncome"`
	MonthlyExpense int64  `json:"monthlyExpense"`
	Balance        int64  `json:"balance"`
}

// MonthlyReport aggregates every user's flows for a month.
type MonthlyReport struct {
	Month             Month           `json:"-"`
	Rows              []UserReportRow `json:"rows"`
	GrandTotalIncome  int64           `json:"grandTotalIncome"`
	GrandTotalExpense int64           `json:"grandTotalExpense"`
	GrandBalance      int64           `json:"grandBalance"`
}
