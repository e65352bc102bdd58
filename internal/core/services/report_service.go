package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/export"
)

type reportServiceImpl struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
}

func NewReportService(repo portsrepo.TransactionReader) portssvc.ReportSvcFacade {
	return &reportServiceImpl{transactionRepo: repo}
}

var _ portssvc.ReportSvcFacade = (*reportServiceImpl)(nil)

func (s *reportServiceImpl) GetTransactionData(ctx context.Context, tenantID string, filter domain.ReportFilter) ([]domain.TransactionDetail, error) {
	listFilter := filter.ToTransactionFilter()
	if err := listFilter.Validate(); err != nil {
		return nil, err
	}
	rows, err := s.transactionRepo.ListTransactions(ctx, tenantID, listFilter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load report data", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to load report data: %w", err)
	}
	if rows == nil {
		rows = []domain.TransactionDetail{}
	}
	return rows, nil
}

func (s *reportServiceImpl) ExportTransactionsXLSX(ctx context.Context, tenantID string, filter domain.ReportFilter, w io.Writer) error {
	rows, err := s.GetTransactionData(ctx, tenantID, filter)
	if err != nil {
		return err
	}
	if err := export.WriteTransactionsXLSX(w, rows); err != nil {
		s.LogError(ctx, err, "Failed to render xlsx report", slog.String("tenant_id", tenantID))
		return fmt.Errorf("failed to render report: %w", err)
	}
	s.LogDebug(ctx, "Report exported", slog.Int("rows", len(rows)))
	return nil
}
