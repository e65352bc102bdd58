package dto

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
type CreateTransactionRequest struct {
	Description    string                   `json:"description" binding:"required"`
	Amount         decimal.Decimal          `json:"amount" binding:"gt=0"`
	Date           Date                     `json:"date"`
	CompetenceDate *Date                    `json:"competenceDate"` // Optional, defaults to Date
	Type           domain.TransactionType   `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Status         domain.TransactionStatus `json:"status" binding:"omitempty,oneof=PENDING CONFIRMED"` // Defaults to PENDING
	AccountID      string                   `json:"accountID" binding:"required"`
	CategoryID     string                   `json:"categoryID" binding:"required"`
	CostCenterID   *string                  `json:"costCenterID"`
	PersonID       *string                  `json:"personID"`
}

// UpdateTransactionStatusRequest moves a transaction between PENDING and CONFIRMED.
type UpdateTransactionStatusRequest struct {
	Status domain.TransactionStatus `json:"status" binding:"required,oneof=PENDING CONFIRMED"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Type      string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Status    string `form:"status" binding:"omitempty,oneof=PENDING CONFIRMED"`
	Limit     int    `form:"limit" binding:"min=0,max=500"`
	NextToken string `form:"nextToken"`
}

// ListTransactionsResponse wraps one page of transactions.
type ListTransactionsResponse struct {
	Transactions []domain.TransactionDetail `json:"transactions"`
	NextToken    *string                    `json:"nextToken,omitempty"`
}

// CreateTransferRequest moves an amount between two accounts of the tenant.
type CreateTransferRequest struct {
	FromAccountID string          `json:"fromAccountID" binding:"required"`
	ToAccountID   string          `json:"toAccountID" binding:"required"`
	CategoryID    string          `json:"categoryID" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Date          Date            `json:"date"`
	Description   string          `json:"description"`
}

// ToDomain converts the request into the domain transfer request.
func (r CreateTransferRequest) ToDomain() domain.TransferRequest {
	return domain.TransferRequest{
		FromAccountID: r.FromAccountID,
		ToAccountID:   r.ToAccountID,
		CategoryID:    r.CategoryID,
		Amount:        r.Amount,
		Date:          r.Date.Time,
		Description:   r.Description,
	}
}
