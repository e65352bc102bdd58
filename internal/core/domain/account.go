package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies where the money of an account is held.
type AccountType string

const (
	Checking   AccountType = "CHECKING"
	Savings    AccountType = "SAVINGS"
	Investment AccountType = "INVESTMENT"
	Cash       AccountType = "CASH"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Checking, Savings, Investment, Cash:
		return true
	}
	return false
}

// Account represents a bank or cash account owned by a tenant.
// It never stores a balance; see AccountBalance.
type Account struct {
	AccountID   string      `json:"accountID"`
	TenantID    string      `json:"tenantID"`
	Name        string      `json:"name"`
	BankName    *string     `json:"bankName,omitempty"`
	AccountType AccountType `json:"accountType"`
	AuditFields
}

// AccountBalance is the derived balance of a single account over its confirmed transactions.
type AccountBalance struct {
	AccountID   string          `json:"accountID"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
}
