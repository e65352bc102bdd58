package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// TransactionReaderSvc defines read operations for ledger transactions
type TransactionReaderSvc interface {
	// ListTransactions returns the tenant's transactions, newest date first.
	ListTransactions(ctx context.Context, tenantID string, filter domain.TransactionFilter) (*domain.TransactionPage, error)
}

// TransactionWriterSvc defines write operations for ledger transactions
type TransactionWriterSvc interface {
	// CreateTransaction checks that every referenced entity belongs to the tenant and
	// returns the stored row joined with its account and category.
	CreateTransaction(ctx context.Context, tenantID string, req dto.CreateTransactionRequest, userID string) (*domain.TransactionDetail, error)

	// UpdateTransactionStatus reports Affected == 0 for unknown or foreign IDs.
	UpdateTransactionStatus(ctx context.Context, tenantID string, transactionID string, status domain.TransactionStatus, userID string) (domain.MutationResult, error)

	// DeleteTransaction removes a transaction, or both legs of a transfer.
	DeleteTransaction(ctx context.Context, tenantID string, transactionID string) (domain.MutationResult, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

// TransferSvcFacade creates linked withdrawal/deposit pairs atomically.
type TransferSvcFacade interface {
	CreateTransfer(ctx context.Context, tenantID string, req dto.CreateTransferRequest, userID string) (*domain.Transfer, error)
}
