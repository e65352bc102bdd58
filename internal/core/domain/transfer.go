package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransferDescriptionPrefix marks both legs of a transfer.
const TransferDescriptionPrefix = "Transfer: "

// TransferRequest describes money moving between two accounts of the same tenant.
type TransferRequest struct {
	FromAccountID string
	ToAccountID   string
	CategoryID    string
	Amount        decimal.Decimal
	Date          time.Time
	Description   string

	// Filled in once both accounts are resolved; used when Description is blank.
	FromAccountName string
	ToAccountName   string
}

// Validate enforces the server-side transfer guards.
func (r TransferRequest) Validate() error {
	var missing []string
	if r.FromAccountID == "" {
		missing = append(missing, "fromAccountID")
	}
	if r.ToAccountID == "" {
		missing = append(missing, "toAccountID")
	}
	if r.CategoryID == "" {
		missing = append(missing, "categoryID")
	}
	if r.Date.IsZero() {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", apperrors.ErrValidation, strings.Join(missing, ", "))
	}
	if r.FromAccountID == r.ToAccountID {
		return fmt.Errorf("%w: source and destination accounts must differ", apperrors.ErrTransferInvariant)
	}
	if !r.Amount.IsPositive() {
		return fmt.Errorf("%w: transfer amount must be greater than zero", apperrors.ErrTransferInvariant)
	}
	if !HasMoneyScale(r.Amount) {
		return fmt.Errorf("%w: transfer amount must have at most %d decimal places", apperrors.ErrValidation, MoneyScale)
	}
	return nil
}

// TransferDescription derives the description shared by both legs.
func (r TransferRequest) TransferDescription() string {
	desc := strings.TrimSpace(r.Description)
	if desc == "" {
		desc = accountLabel(r.FromAccountName, r.FromAccountID) + " -> " + accountLabel(r.ToAccountName, r.ToAccountID)
	}
	return TransferDescriptionPrefix + desc
}

func accountLabel(name, id string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return id
}

// Transfer is the linked withdrawal/deposit pair produced by a transfer.
type Transfer struct {
	Withdrawal Transaction `json:"withdrawal"`
	Deposit    Transaction `json:"deposit"`
}

// NewTransferLegs builds the two legs of a transfer before they are persisted.
// The deposit already points at the withdrawal; the withdrawal's link is set
// once the deposit exists.
func NewTransferLegs(tenantID, userID string, req TransferRequest, withdrawalID, depositID string, now time.Time) (Transaction, Transaction) {
	date := NormalizeDate(req.Date)
	desc := req.TransferDescription()
	audit := NewAuditFields(userID, now)

	withdrawal := Transaction{
		TransactionID:  withdrawalID,
		TenantID:       tenantID,
		Description:    desc,
		Amount:         req.Amount,
		Date:           date,
		CompetenceDate: date,
		Type:           Expense,
		Status:         StatusConfirmed,
		AccountID:      req.FromAccountID,
		CategoryID:     req.CategoryID,
		AuditFields:    audit,
	}

	linkedTo := withdrawalID
	deposit := Transaction{
		TransactionID:       depositID,
		TenantID:            tenantID,
		Description:         desc,
		Amount:              req.Amount,
		Date:                date,
		CompetenceDate:      date,
		Type:                Income,
		Status:              StatusConfirmed,
		AccountID:           req.ToAccountID,
		CategoryID:          req.CategoryID,
		LinkedTransactionID: &linkedTo,
		AuditFields:         audit,
	}
	return withdrawal, deposit
}

// Verify checks the pair invariants: mutual links, distinct accounts, equal amounts and dates.
func (t Transfer) Verify() error {
	w, d := t.Withdrawal, t.Deposit
	switch {
	case w.LinkedTransactionID == nil || *w.LinkedTransactionID != d.TransactionID:
		return fmt.Errorf("%w: withdrawal is not linked to deposit", apperrors.ErrTransferInvariant)
	case d.LinkedTransactionID == nil || *d.LinkedTransactionID != w.TransactionID:
		return fmt.Errorf("%w: deposit is not linked to withdrawal", apperrors.ErrTransferInvariant)
	case w.AccountID == d.AccountID:
		return fmt.Errorf("%w: legs share an account", apperrors.ErrTransferInvariant)
	case !w.Amount.Equal(d.Amount):
		return fmt.Errorf("%w: leg amounts differ", apperrors.ErrTransferInvariant)
	case w.Type != Expense || d.Type != Income:
		return fmt.Errorf("%w: legs have the wrong types", apperrors.ErrTransferInvariant)
	case !w.Date.Equal(d.Date):
		return fmt.Errorf("%w: leg dates differ", apperrors.ErrTransferInvariant)
	}
	return nil
}
