package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// Type names a ledger event. It doubles as the AMQP routing key.
type Type string

const (
	TransactionCreated       Type = "ledger.transaction.created"
	TransactionStatusChanged Type = "ledger.transaction.status_changed"
	TransactionDeleted       Type = "ledger.transaction.deleted"
	TransferCreated          Type = "ledger.transfer.created"
)

// Event is the envelope published after a ledger write commits.
type Event struct {
	Type       Type      `json:"type"`
	TenantID   string    `json:"tenantID"`
	ActorID    string    `json:"actorID"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

// StatusChange is the payload of TransactionStatusChanged.
type StatusChange struct {
	TransactionID string                   `json:"transactionID"`
	Status        domain.TransactionStatus `json:"status"`
}

// Deletion is the payload of TransactionDeleted.
type Deletion struct {
	TransactionID string `json:"transactionID"`
	Affected      int64  `json:"affected"`
}

func NewTransactionCreated(txn domain.Transaction, actorID string, now time.Time) Event {
	return Event{Type: TransactionCreated, TenantID: txn.TenantID, ActorID: actorID, OccurredAt: now, Payload: txn}
}

func NewTransferCreated(t domain.Transfer, actorID string, now time.Time) Event {
	return Event{Type: TransferCreated, TenantID: t.Withdrawal.TenantID, ActorID: actorID, OccurredAt: now, Payload: t}
}

func NewStatusChanged(tenantID, transactionID string, status domain.TransactionStatus, actorID string, now time.Time) Event {
	return Event{
		Type:       TransactionStatusChanged,
		TenantID:   tenantID,
		ActorID:    actorID,
		OccurredAt: now,
		Payload:    StatusChange{TransactionID: transactionID, Status: status},
	}
}

func NewTransactionDeleted(tenantID, transactionID string, affected int64, actorID string, now time.Time) Event {
	return Event{
		Type:       TransactionDeleted,
		TenantID:   tenantID,
		ActorID:    actorID,
		OccurredAt: now,
		Payload:    Deletion{TransactionID: transactionID, Affected: affected},
	}
}

// ToJSON encodes the event envelope.
func (e Event) ToJSON() ([]byte, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event %s: %w", e.Type, err)
	}
	return body, nil
}
