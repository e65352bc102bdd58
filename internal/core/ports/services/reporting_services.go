package services

import (
	"context"
	"io"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// DashboardSvcFacade derives read-side aggregates from confirmed transactions.
type DashboardSvcFacade interface {
	GetSummary(ctx context.Context, tenantID string) (*domain.DashboardSummary, error)
	ListAccountBalances(ctx context.Context, tenantID string) ([]domain.AccountBalance, error)
}

// ReportSvcFacade exposes the read-only transaction projection used by exports.
type ReportSvcFacade interface {
	GetTransactionData(ctx context.Context, tenantID string, filter domain.ReportFilter) ([]domain.TransactionDetail, error)

	// ExportTransactionsXLSX writes the projection as a spreadsheet.
	ExportTransactionsXLSX(ctx context.Context, tenantID string, filter domain.ReportFilter, w io.Writer) error
}
