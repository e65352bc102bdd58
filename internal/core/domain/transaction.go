package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType indicates whether money enters (INCOME) or leaves (EXPENSE) an account.
// Categories share the same type set.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// TransactionStatus is the settlement state of a transaction.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusConfirmed TransactionStatus = "CONFIRMED"
)

func (s TransactionStatus) IsValid() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Transaction is a single-sided ledger posting. Amount is always positive;
// the sign is implied by Type.
type Transaction struct {
	TransactionID       string            `json:"transactionID"`
	TenantID            string            `json:"tenantID"`
	Description         string            `json:"description"`
	Amount              decimal.Decimal   `json:"amount"`
	Date                time.Time         `json:"date"`
	CompetenceDate      time.Time         `json:"competenceDate"`
	Type                TransactionType   `json:"type"`
	Status              TransactionStatus `json:"status"`
	AccountID           string            `json:"accountID"`
	CategoryID          string            `json:"categoryID"`
	CostCenterID        *string           `json:"costCenterID,omitempty"`
	PersonID            *string           `json:"personID,omitempty"`
	LinkedTransactionID *string           `json:"linkedTransactionID,omitempty"`
	AuditFields
}

// Validate checks required fields and the positive-amount rule.
func (t Transaction) Validate() error {
	var missing []string
	if strings.TrimSpace(t.Description) == "" {
		missing = append(missing, "description")
	}
	if t.Date.IsZero() {
		missing = append(missing, "date")
	}
	if t.AccountID == "" {
		missing = append(missing, "accountID")
	}
	if t.CategoryID == "" {
		missing = append(missing, "categoryID")
	}
	if t.TenantID == "" {
		missing = append(missing, "tenantID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", apperrors.ErrValidation, strings.Join(missing, ", "))
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	if !HasMoneyScale(t.Amount) {
		return fmt.Errorf("%w: amount must have at most %d decimal places", apperrors.ErrValidation, MoneyScale)
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("%w: invalid transaction type %q", apperrors.ErrValidation, t.Type)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: invalid transaction status %q", apperrors.ErrValidation, t.Status)
	}
	return nil
}

// IsTransferLeg reports whether the transaction is one side of a transfer.
func (t Transaction) IsTransferLeg() bool {
	return t.LinkedTransactionID != nil && *t.LinkedTransactionID != ""
}

// SignedAmount returns Amount for income and -Amount for expenses.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// AccountRef, CategoryRef, PersonRef and CostCenterRef are the joined
// projections returned alongside a transaction.
type AccountRef struct {
	AccountID   string      `json:"accountID"`
	Name        string      `json:"name"`
	BankName    *string     `json:"bankName,omitempty"`
	AccountType AccountType `json:"accountType"`
}

type CategoryRef struct {
	CategoryID string          `json:"categoryID"`
	Name       string          `json:"name"`
	Type       TransactionType `json:"type"`
}

type PersonRef struct {
	PersonID string `json:"personID"`
	Name     string `json:"name"`
}

type CostCenterRef struct {
	CostCenterID string `json:"costCenterID"`
	Name         string `json:"name"`
}

// TransactionDetail is a transaction joined with the entities it references.
type TransactionDetail struct {
	Transaction
	Account    AccountRef     `json:"account"`
	Category   CategoryRef    `json:"category"`
	Person     *PersonRef     `json:"person,omitempty"`
	CostCenter *CostCenterRef `json:"costCenter,omitempty"`
}

// TransactionCursor marks the last row of a page in (date desc, created_at desc, id desc) order.
type TransactionCursor struct {
	Date          time.Time
	CreatedAt     time.Time
	TransactionID string
}

// TransactionFilter narrows a tenant's transactions. Dates are inclusive.
// Limit 0 returns every matching row.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      *TransactionType
	Status    *TransactionStatus
	Limit     int
	After     *TransactionCursor
}

// Validate rejects inverted date ranges and unknown enum values.
func (f TransactionFilter) Validate() error {
	if f.StartDate != nil && f.EndDate != nil && f.EndDate.Before(*f.StartDate) {
		return fmt.Errorf("%w: endDate is before startDate", apperrors.ErrValidation)
	}
	if f.Type != nil && !f.Type.IsValid() {
		return fmt.Errorf("%w: invalid transaction type %q", apperrors.ErrValidation, *f.Type)
	}
	if f.Status != nil && !f.Status.IsValid() {
		return fmt.Errorf("%w: invalid transaction status %q", apperrors.ErrValidation, *f.Status)
	}
	if f.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative", apperrors.ErrValidation)
	}
	return nil
}

// TransactionPage is one page of a listing; NextCursor is nil on the last page.
type TransactionPage struct {
	Transactions []TransactionDetail
	NextCursor   *TransactionCursor
}

// ReportFilter is the filter set accepted by the report projection.
type ReportFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      *TransactionType
	Status    *TransactionStatus
}

// ToTransactionFilter converts the report filter to an unpaged listing filter.
func (f ReportFilter) ToTransactionFilter() TransactionFilter {
	return TransactionFilter{
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Type:      f.Type,
		Status:    f.Status,
	}
}
