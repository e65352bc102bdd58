package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgErrorClassification(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgUniqueViolation})
	fk := &pgconn.PgError{Code: pgForeignKeyViolation}

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isForeignKeyViolation(unique))
	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isUniqueViolation(errors.New("boom")))
	assert.Equal(t, "", pgErrorCode(nil))
}

func TestInsertTransactionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"duplicate id", &pgconn.PgError{Code: pgUniqueViolation}, apperrors.ErrDuplicate},
		{"reference removed", &pgconn.PgError{Code: pgForeignKeyViolation}, apperrors.ErrNotFound},
		{"amount rounds to zero", &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "transactions_amount_check"}, apperrors.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, insertTransactionError("txn-1", fmt.Errorf("exec: %w", tt.err)), tt.want)
		})
	}

	err := insertTransactionError("txn-1", errors.New("connection reset"))
	assert.NotErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "failed to save transaction txn-1")
	assert.Contains(t, insertTransactionError("txn-1", &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "transactions_amount_check"}).Error(), "transactions_amount_check")
}
