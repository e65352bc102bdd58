package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for ledger transactions
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction scoped by tenant.
	FindTransactionByID(ctx context.Context, tenantID, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns transactions joined with account, category, person and
	// cost center, ordered by date desc, created_at desc, id desc.
	ListTransactions(ctx context.Context, tenantID string, filter domain.TransactionFilter) ([]domain.TransactionDetail, error)
}

// TransactionWriter defines write operations for ledger transactions
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransactionStatus is a tenant-scoped conditional update.
	UpdateTransactionStatus(ctx context.Context, tenantID, transactionID string, status domain.TransactionStatus, userID string, now time.Time) (int64, error)

	// DeleteTransaction deletes the transaction and, if it is a transfer leg, its pair.
	DeleteTransaction(ctx context.Context, tenantID, transactionID string) (int64, error)
}

// TransactionTxSupport defines operations that run inside a caller-owned transaction
type TransactionTxSupport interface {
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error

	// LinkTransactionInTx sets linked_transaction_id on an existing row.
	LinkTransactionInTx(ctx context.Context, tx pgx.Tx, tenantID, transactionID, linkedID string, now time.Time) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionTxSupport
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
