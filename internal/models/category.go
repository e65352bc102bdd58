package models

// Category is the row stored in the categories table.
type Category struct {
	CategoryID string `db:"category_id"`
	TenantID   string `db:"tenant_id"`
	Name       string `db:"name"`
	Type       string `db:"type"`
	ParentID   string `db:"parent_id"` // Nullable
	AuditFields
}
