package models

type Person struct {
	PersonID string `db:"person_id"`
	TenantID string `db:"tenant_id"`
	Name     string `db:"name"`
	Document string `db:"document"` // Nullable
	Email    string `db:"email"`    // Nullable
	Phone    string `db:"phone"`    // Nullable
	AuditFields
}

type CostCenter struct {
	CostCenterID string `db:"cost_center_id"`
	TenantID     string `db:"tenant_id"`
	Name         string `db:"name"`
	AuditFields
}
