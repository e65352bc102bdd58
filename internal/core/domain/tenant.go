package domain

import "time"

// TenantType distinguishes personal ledgers from shared business ones.
type TenantType string

const (
	TenantPersonal TenantType = "PERSONAL"
	TenantBusiness TenantType = "BUSINESS"
)

// Tenant is the isolation boundary that owns every ledger entity.
type Tenant struct {
	TenantID  string     `json:"tenantID"`
	Name      string     `json:"name"`
	Type      TenantType `json:"type"`
	CreatedAt time.Time  `json:"createdAt"`
}

// TenantRole defines the possible roles a user can have within a tenant.
type TenantRole string

const (
	RoleOwner  TenantRole = "OWNER"
	RoleMember TenantRole = "MEMBER"
)

// TenantMembership represents the membership of a User in a Tenant.
type TenantMembership struct {
	UserID   string     `json:"userID"`
	TenantID string     `json:"tenantID"`
	Role     TenantRole `json:"role"`
	JoinedAt time.Time  `json:"joinedAt"`
}

// UserTenant is a tenant as seen by one of its members.
type UserTenant struct {
	Tenant
	Role TenantRole `json:"role"`
}
