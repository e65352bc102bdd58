package mapping_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullStringHelpers(t *testing.T) {
	assert.Equal(t, sql.NullString{}, mapping.ToNullString(""))
	assert.Equal(t, sql.NullString{String: "x", Valid: true}, mapping.ToNullString("x"))
	assert.Equal(t, "", mapping.FromNullString(sql.NullString{String: "ignored"}))
	assert.Nil(t, mapping.ModelToStringPtr(""))
	assert.Equal(t, "", mapping.StringPtrToModel(nil))
}

func TestTransactionMapping_OptionalReferences(t *testing.T) {
	person := "per_1"
	d := domain.Transaction{
		TransactionID:  "txn_1",
		TenantID:       "t1",
		Description:    "Lunch",
		Amount:         decimal.RequireFromString("12.50"),
		Date:           time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC),
		CompetenceDate: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		Type:           domain.Expense,
		Status:         domain.StatusPending,
		AccountID:      "acc_1",
		CategoryID:     "cat_1",
		PersonID:       &person,
	}

	m := mapping.ToModelTransaction(d)
	assert.Equal(t, "", m.CostCenterID)
	assert.Equal(t, "per_1", m.PersonID)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), m.Date)

	back := mapping.ToDomainTransaction(m)
	assert.Nil(t, back.CostCenterID)
	assert.Nil(t, back.LinkedTransactionID)
	require.NotNil(t, back.PersonID)
	assert.Equal(t, person, *back.PersonID)
	assert.True(t, back.Amount.Equal(d.Amount))
}

func TestAccountMapping_BankName(t *testing.T) {
	acc := mapping.ToDomainAccount(mapping.ToModelAccount(domain.Account{AccountID: "a", AccountType: domain.Cash}))
	assert.Nil(t, acc.BankName)
	assert.Equal(t, domain.Cash, acc.AccountType)
}
