package dto

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// ReportParams defines the query parameters accepted by the report endpoints.
type ReportParams struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Type      string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Status    string `form:"status" binding:"omitempty,oneof=PENDING CONFIRMED"`
}

// TransactionReportResponse is the JSON form of the transaction report.
// Totals only include confirmed rows.
type TransactionReportResponse struct {
	Transactions []domain.TransactionDetail `json:"transactions"`
	Totals       domain.IncomeExpense       `json:"totals"`
}

func ToTransactionReportResponse(rows []domain.TransactionDetail) TransactionReportResponse {
	resp := TransactionReportResponse{Transactions: rows}
	if resp.Transactions == nil {
		resp.Transactions = []domain.TransactionDetail{}
	}
	for _, r := range rows {
		if r.Status != domain.StatusConfirmed {
			continue
		}
		switch r.Type {
		case domain.Income:
			resp.Totals.Income = resp.Totals.Income.Add(r.Amount)
		case domain.Expense:
			resp.Totals.Expense = resp.Totals.Expense.Add(r.Amount)
		}
	}
	return resp
}
