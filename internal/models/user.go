package models

import "time"

// User represents a user of the application.
type User struct {
	UserID         string    `db:"user_id"`
	Name           string    `db:"name"`
	Email          string    `db:"email"`
	PasswordHash   string    `db:"password_hash"` // Nullable for Google accounts
	AuthProvider   string    `db:"auth_provider"`
	ProviderUserID string    `db:"provider_user_id"` // Nullable
	CreatedAt      time.Time `db:"created_at"`
}

type Tenant struct {
	TenantID  string    `db:"tenant_id"`
	Name      string    `db:"name"`
	Type      string    `db:"type"`
	CreatedAt time.Time `db:"created_at"`
}

type TenantMembership struct {
	UserID   string    `db:"user_id"`
	TenantID string    `db:"tenant_id"`
	Role     string    `db:"role"`
	JoinedAt time.Time `db:"joined_at"`
}
