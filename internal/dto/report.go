package dto

import (
	"github.com/SscSPs/cashclaim/internal/core/domain"
	"github.com/SscSPs/cashclaim/internal/utils/money"
)

// MonthlyReportParams selects the report month; empty means the current month.
type MonthlyReportParams struct {
	Month string `form:"month" binding:"omitempty,yearmonth"`
}

// ReportRowResponse represents a row in the monthly report response
type ReportRowResponse struct {
	UserName       string `json:"userName"`
	MonthlyIncome  int64  `json:"monthlyIncome"`
	MonthlyExpense int64  `json:"monthlyExpense"`
	Balance        int64  `json:"balance"`
	Formatted      string `json:"formatted"`
}

// MonthlyReportResponse represents the monthly report response
type MonthlyReportResponse struct {
	Month  string              `json:"month"`
	Rows   []ReportRowResponse `json:"rows"`
	Totals struct {
		Income  int64  `json:"income"`
		Expense int64  `json:"expense"`
		Balance int64  `json:"balance"`
		Display string `json:"formatted"`
	} `json:"totals"`
}

// ToMonthlyReportResponse converts a domain report to a DTO response
func ToMonthlyReportResponse(r *domain.MonthlyReport) MonthlyReportResponse {
	response := MonthlyReportResponse{
		Month: r.Month.String(),
		Rows:  make([]ReportRowResponse, len(r.Rows)),
	}
	for i, row := range r.Rows {
		response.Rows[i] = ReportRowResponse{
			UserName:       row.UserName,
			MonthlyIncome:  row.MonthlyIncome,
			MonthlyExpense: row.MonthlyExpense,
			Balance:        row.Balance,
			Formatted:      money.FormatRupiah(row.Balance),
		}
	}
	response.Totals.Income = r.GrandTotalIncome
	response.Totals.Expense = r.GrandTotalExpense
	response.Totals.Balance = r.GrandBalance
	response.Totals.Display = money.FormatRupiah(r.GrandBalance)
	return response
}
