package domain

// Person is a counterparty that can be attached to transactions.
type Person struct {
	PersonID string  `json:"personID"`
	TenantID string  `json:"tenantID"`
	Name     string  `json:"name"`
	Document *string `json:"document,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	AuditFields
}

// CostCenter is an optional grouping for transactions, orthogonal to categories.
type CostCenter struct {
	CostCenterID string `json:"costCenterID"`
	TenantID     string `json:"tenantID"`
	Name         string `json:"name"`
	AuditFields
}
