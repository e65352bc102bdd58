package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the row stored in the transactions table. Nullable references
// are empty strings here and NULL in the database.
type Transaction struct {
	TransactionID       string          `db:"transaction_id"`
	TenantID            string          `db:"tenant_id"`
	Description         string          `db:"description"`
	Amount              decimal.Decimal `db:"amount"`
	Date                time.Time       `db:"date"`
	CompetenceDate      time.Time       `db:"competence_date"`
	Type                string          `db:"type"`
	Status              string          `db:"status"`
	AccountID           string          `db:"account_id"`
	CategoryID          string          `db:"category_id"`
	CostCenterID        string          `db:"cost_center_id"`
	PersonID            string          `db:"person_id"`
	LinkedTransactionID string          `db:"linked_transaction_id"`
	AuditFields
}
