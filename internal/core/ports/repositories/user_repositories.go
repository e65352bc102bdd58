package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// UserReader defines read operations for user data
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TenantReader defines read operations for tenants and memberships
type TenantReader interface {
	// ListTenantsByUserID retrieves every tenant the user belongs to.
	ListTenantsByUserID(ctx context.Context, userID string) ([]domain.UserTenant, error)

	// FindMembership returns ErrNotFound when the user is not a member.
	FindMembership(ctx context.Context, userID, tenantID string) (*domain.TenantMembership, error)
}

// IdentityTxSupport writes identity rows inside a caller-owned transaction
type IdentityTxSupport interface {
	SaveTenantInTx(ctx context.Context, tx pgx.Tx, tenant domain.Tenant) error
	SaveUserInTx(ctx context.Context, tx pgx.Tx, user domain.User) error
	SaveMembershipInTx(ctx context.Context, tx pgx.Tx, membership domain.TenantMembership) error
}

// IdentityRepositoryFacade combines user and tenant persistence
type IdentityRepositoryFacade interface {
	UserReader
	TenantReader
	IdentityTxSupport
}

// IdentityRepositoryWithTx extends IdentityRepositoryFacade with transaction capabilities
type IdentityRepositoryWithTx interface {
	IdentityRepositoryFacade
	TransactionManager
}
