package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferRequest_Validate(t *testing.T) {
	base := domain.TransferRequest{
		FromAccountID: "A1",
		ToAccountID:   "A2",
		CategoryID:    "cat",
		Amount:        decimal.RequireFromString("150.00"),
		Date:          day(2024, 3, 1),
	}

	tests := []struct {
		name   string
		mutate func(*domain.TransferRequest)
		want   error
	}{
		{"valid", func(*domain.TransferRequest) {}, nil},
		{"same account", func(r *domain.TransferRequest) { r.ToAccountID = "A1" }, apperrors.ErrTransferInvariant},
		{"zero amount", func(r *domain.TransferRequest) { r.Amount = decimal.Zero }, apperrors.ErrTransferInvariant},
		{"negative amount", func(r *domain.TransferRequest) { r.Amount = decimal.NewFromInt(-1) }, apperrors.ErrTransferInvariant},
		{"sub-cent amount", func(r *domain.TransferRequest) { r.Amount = decimal.RequireFromString("0.001") }, apperrors.ErrValidation},
		{"three decimal places", func(r *domain.TransferRequest) { r.Amount = decimal.RequireFromString("1.005") }, apperrors.ErrValidation},
		{"missing category", func(r *domain.TransferRequest) { r.CategoryID = "" }, apperrors.ErrValidation},
		{"missing date", func(r *domain.TransferRequest) { r.Date = time.Time{} }, apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			err := req.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestNewTransferLegs(t *testing.T) {
	now := time.Now()
	req := domain.TransferRequest{
		FromAccountID: "A1",
		ToAccountID:   "A2",
		CategoryID:    "cat",
		Amount:        decimal.RequireFromString("150.00"),
		Date:          time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC),
		Description:   "rainy day fund",
	}

	w, d := domain.NewTransferLegs("t1", "u1", req, "w1", "d1", now)

	assert.Equal(t, domain.Expense, w.Type)
	assert.Equal(t, domain.Income, d.Type)
	assert.Equal(t, domain.StatusConfirmed, w.Status)
	assert.Equal(t, domain.StatusConfirmed, d.Status)
	assert.Equal(t, "A1", w.AccountID)
	assert.Equal(t, "A2", d.AccountID)
	assert.Equal(t, "Transfer: rainy day fund", w.Description)
	assert.Equal(t, w.Description, d.Description)
	assert.Equal(t, day(2024, 3, 1), w.Date)
	assert.Equal(t, w.Date, w.CompetenceDate)
	assert.Nil(t, w.LinkedTransactionID)
	require.NotNil(t, d.LinkedTransactionID)
	assert.Equal(t, "w1", *d.LinkedTransactionID)

	// Pair is incomplete until the withdrawal is back-linked.
	assert.ErrorIs(t, domain.Transfer{Withdrawal: w, Deposit: d}.Verify(), apperrors.ErrTransferInvariant)
	link := d.TransactionID
	w.LinkedTransactionID = &link
	assert.NoError(t, domain.Transfer{Withdrawal: w, Deposit: d}.Verify())
}

func TestTransfer_Verify_DetectsMismatchedAmounts(t *testing.T) {
	wID, dID := "w", "d"
	pair := domain.Transfer{
		Withdrawal: domain.Transaction{TransactionID: wID, AccountID: "A1", Type: domain.Expense, Amount: decimal.NewFromInt(10), LinkedTransactionID: &dID},
		Deposit:    domain.Transaction{TransactionID: dID, AccountID: "A2", Type: domain.Income, Amount: decimal.NewFromInt(11), LinkedTransactionID: &wID},
	}
	err := pair.Verify()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amounts differ")
}

func TestTransferRequest_DefaultDescription(t *testing.T) {
	req := domain.TransferRequest{FromAccountID: "A1", ToAccountID: "A2"}
	assert.Equal(t, "Transfer: A1 -> A2", req.TransferDescription())

	req.FromAccountName, req.ToAccountName = "Checking", "Savings"
	assert.Equal(t, "Transfer: Checking -> Savings", req.TransferDescription())

	req.Description = "rent"
	assert.Equal(t, "Transfer: rent", req.TransferDescription())
}
