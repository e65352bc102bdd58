package dto

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required"`
	BankName    *string            `json:"bankName"` // Optional
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=CHECKING SAVINGS INVESTMENT CASH"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name        *string             `json:"name"`
	BankName    *string             `json:"bankName"`
	AccountType *domain.AccountType `json:"accountType" binding:"omitempty,oneof=CHECKING SAVINGS INVESTMENT CASH"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string             `json:"accountID"`
	Name          string             `json:"name"`
	BankName      string             `json:"bankName"` // Note: Empty string if null in DB
	AccountType   domain.AccountType `json:"accountType"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy string             `json:"lastUpdatedBy"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// AccountBalancesResponse lists derived balances and their sum.
type AccountBalancesResponse struct {
	Balances []domain.AccountBalance `json:"balances"`
	Total    decimal.Decimal         `json:"total"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	resp := AccountResponse{
		AccountID:     acc.AccountID,
		Name:          acc.Name,
		AccountType:   acc.AccountType,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
	if acc.BankName != nil {
		resp.BankName = *acc.BankName
	}
	return resp
}

// ToListAccountResponse converts a slice of domain.Account to the list DTO
func ToListAccountResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: res}
}

func ToAccountBalancesResponse(balances []domain.AccountBalance) AccountBalancesResponse {
	total := decimal.Zero
	for _, b := range balances {
		total = total.Add(b.Balance)
	}
	if balances == nil {
		balances = []domain.AccountBalance{}
	}
	return AccountBalancesResponse{Balances: balances, Total: total}
}
