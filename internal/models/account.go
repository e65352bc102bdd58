package models

// Account is the row stored in the accounts table.
type Account struct {
	AccountID   string `db:"account_id"`
	TenantID    string `db:"tenant_id"`
	Name        string `db:"name"`
	BankName    string `db:"bank_name"` // Nullable
	AccountType string `db:"account_type"`
	AuditFields
}
