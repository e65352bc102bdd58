package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// IdentitySvcFacade is the identity boundary: it issues credentials and resolves tenant membership.
type IdentitySvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.Session, error)
	Login(ctx context.Context, req dto.LoginRequest) (*domain.Session, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	LoginWithGoogle(ctx context.Context, identity domain.GoogleIdentity) (*domain.Session, error)

	ListUserTenants(ctx context.Context, userID string) ([]domain.UserTenant, error)

	// AuthorizeTenantAccess returns ErrForbidden unless the user is a member of the tenant.
	AuthorizeTenantAccess(ctx context.Context, userID, tenantID string) error
}

// GoogleOAuthSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthSvcFacade interface {
	// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCode trades an authorization code for tokens and returns the verified identity.
	ExchangeCode(ctx context.Context, code string) (*domain.GoogleIdentity, error)
}
