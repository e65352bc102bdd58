package mapping

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:         d.UserID,
		Name:           d.Name,
		Email:          d.Email,
		PasswordHash:   d.PasswordHash,
		AuthProvider:   string(d.AuthProvider),
		ProviderUserID: d.ProviderUserID,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:         m.UserID,
		Name:           m.Name,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		AuthProvider:   domain.AuthProvider(m.AuthProvider),
		ProviderUserID: m.ProviderUserID,
		CreatedAt:      m.CreatedAt,
	}
}

func ToModelTenant(d domain.Tenant) models.Tenant {
	return models.Tenant{
		TenantID:  d.TenantID,
		Name:      d.Name,
		Type:      string(d.Type),
		CreatedAt: d.CreatedAt,
	}
}

func ToDomainTenant(m models.Tenant) domain.Tenant {
	return domain.Tenant{
		TenantID:  m.TenantID,
		Name:      m.Name,
		Type:      domain.TenantType(m.Type),
		CreatedAt: m.CreatedAt,
	}
}

func ToModelTenantMembership(d domain.TenantMembership) models.TenantMembership {
	return models.TenantMembership{
		UserID:   d.UserID,
		TenantID: d.TenantID,
		Role:     string(d.Role),
		JoinedAt: d.JoinedAt,
	}
}

func ToDomainTenantMembership(m models.TenantMembership) domain.TenantMembership {
	return domain.TenantMembership{
		UserID:   m.UserID,
		TenantID: m.TenantID,
		Role:     domain.TenantRole(m.Role),
		JoinedAt: m.JoinedAt,
	}
}
