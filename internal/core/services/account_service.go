package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/google/uuid"
)

// accountServiceImpl implements the AccountSvcFacade interface
type accountServiceImpl struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountServiceImpl{
		accountRepo: repo,
	}
}

// Ensure accountServiceImpl implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountServiceImpl)(nil)

func (s *accountServiceImpl) CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, req.AccountType)
	}

	account := domain.Account{
		AccountID:   uuid.NewString(),
		TenantID:    tenantID,
		Name:        name,
		BankName:    trimmedOrNil(req.BankName),
		AccountType: req.AccountType,
		AuditFields: domain.NewAuditFields(userID, time.Now()),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("tenant_id", tenantID),
			slog.String("account_name", name))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("tenant_id", tenantID))
	return &account, nil
}

func (s *accountServiceImpl) GetAccountByID(ctx context.Context, tenantID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := ownedOrNotFound(account.TenantID, tenantID); err != nil {
		s.LogDebug(ctx, "Account requested from another tenant",
			slog.String("account_id", accountID),
			slog.String("tenant_id", tenantID))
		return nil, err
	}
	return account, nil
}

func (s *accountServiceImpl) ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

func (s *accountServiceImpl) UpdateAccount(ctx context.Context, tenantID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: account name cannot be empty", apperrors.ErrValidation)
		}
		account.Name = name
	}
	if req.BankName != nil {
		account.BankName = trimmedOrNil(req.BankName)
	}
	if req.AccountType != nil {
		if !req.AccountType.IsValid() {
			return nil, fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, *req.AccountType)
		}
		account.AccountType = *req.AccountType
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	affected, err := s.accountRepo.UpdateAccount(ctx, *account)
	if err != nil {
		s.LogError(ctx, err, "Failed to update account",
			slog.String("account_id", accountID),
			slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	if affected == 0 {
		// Deleted between the read and the write.
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

func (s *accountServiceImpl) DeleteAccount(ctx context.Context, tenantID string, accountID string) (domain.MutationResult, error) {
	count, err := s.accountRepo.CountAccountTransactions(ctx, tenantID, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count account transactions", slog.String("account_id", accountID))
		return domain.MutationResult{}, fmt.Errorf("failed to check account usage: %w", err)
	}
	if count > 0 {
		return domain.MutationResult{}, fmt.Errorf("%w: account has %d transactions", apperrors.ErrConflict, count)
	}

	affected, err := s.accountRepo.DeleteAccount(ctx, tenantID, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return domain.MutationResult{}, fmt.Errorf("failed to delete account: %w", err)
	}
	s.LogInfo(ctx, "Account deleted",
		slog.String("account_id", accountID),
		slog.Int64("affected", affected))
	return domain.MutationResult{Affected: affected}, nil
}

// trimmedOrNil drops blank optional strings.
func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
