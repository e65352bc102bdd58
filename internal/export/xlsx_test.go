package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteTransactionsXLSX(t *testing.T) {
	rows := []domain.TransactionDetail{
		{
			Transaction: domain.Transaction{
				Description: "Salary",
				Amount:      decimal.NewFromInt(1000),
				Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				Type:        domain.Income,
				Status:      domain.StatusConfirmed,
			},
			Account:  domain.AccountRef{Name: "Main"},
			Category: domain.CategoryRef{Name: "Work"},
		},
		{
			Transaction: domain.Transaction{
				Description: "Groceries",
				Amount:      decimal.RequireFromString("42.50"),
				Date:        time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
				Type:        domain.Expense,
				Status:      domain.StatusPending,
			},
			Account:  domain.AccountRef{Name: "Main"},
			Category: domain.CategoryRef{Name: "Food"},
			Person:   &domain.PersonRef{Name: "Ana"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactionsXLSX(&buf, rows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{TransactionsSheet}, f.GetSheetList())

	got, err := f.GetRows(TransactionsSheet)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, transactionHeaders, got[0])
	assert.Equal(t, "Salary", got[1][1])
	assert.Equal(t, "INCOME", got[1][2])
	assert.Equal(t, "Groceries", got[2][1])
	assert.Equal(t, "Ana", got[2][7])

	raw, err := f.GetCellValue(TransactionsSheet, "F3", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "-42.5", raw)
}

func TestWriteTransactionsXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTransactionsXLSX(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(TransactionsSheet)
	require.NoError(t, err)
	require.Len(t, got, 1)
}
