package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves an account of the tenant. Accounts of other tenants read as not found.
	GetAccountByID(ctx context.Context, tenantID string, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the tenant's accounts ordered by name.
	ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
	UpdateAccount(ctx context.Context, tenantID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeleteAccount refuses with ErrConflict while transactions reference the account.
	DeleteAccount(ctx context.Context, tenantID string, accountID string) (domain.MutationResult, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
