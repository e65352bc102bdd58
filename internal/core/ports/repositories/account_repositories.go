package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves an account by ID regardless of tenant.
	// Callers compare TenantID themselves.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every account of a tenant ordered by name.
	ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error)

	// CountAccountTransactions counts transactions referencing the account.
	CountAccountTransactions(ctx context.Context, tenantID, accountID string) (int64, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates name, bank and type, scoped by tenant.
	UpdateAccount(ctx context.Context, account domain.Account) (int64, error)

	// DeleteAccount hard-deletes an account, scoped by tenant.
	DeleteAccount(ctx context.Context, tenantID, accountID string) (int64, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
