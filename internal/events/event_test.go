package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_ToJSON(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	ev := NewStatusChanged("t1", "txn_1", domain.StatusConfirmed, "u1", now)

	body, err := ev.ToJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "ledger.transaction.status_changed", decoded["type"])
	assert.Equal(t, "t1", decoded["tenantID"])
	payload := decoded["payload"].(map[string]any)
	assert.Equal(t, "txn_1", payload["transactionID"])
	assert.Equal(t, "CONFIRMED", payload["status"])
}

func TestNewTransferCreated_UsesWithdrawalTenant(t *testing.T) {
	transfer := domain.Transfer{
		Withdrawal: domain.Transaction{TransactionID: "w", TenantID: "t9", Amount: decimal.NewFromInt(5)},
		Deposit:    domain.Transaction{TransactionID: "d", TenantID: "t9", Amount: decimal.NewFromInt(5)},
	}
	ev := NewTransferCreated(transfer, "u1", time.Now())
	assert.Equal(t, TransferCreated, ev.Type)
	assert.Equal(t, "t9", ev.TenantID)
}

func TestNewPublisher_EmptyURLIsNop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := NewPublisher("", "x", logger)
	assert.IsType(t, NopPublisher{}, p)
	assert.NoError(t, p.Publish(context.Background(), Event{Type: TransactionCreated}))
	assert.NoError(t, p.Close())
}
