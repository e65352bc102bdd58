package dto

import "github.com/SscSPs/finance_tracker/internal/core/domain"

// RegisterRequest creates a local user together with a personal tenant.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents the request body for refreshing an access token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// GoogleExchangeCodeRequest carries the authorization code returned by Google to the frontend.
type GoogleExchangeCodeRequest struct {
	Code  string `json:"code" binding:"required"`
	State string `json:"state"`
}

// GoogleLoginURLResponse carries the consent URL and the state the client must echo back.
type GoogleLoginURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// ListTenantsResponse lists the tenants the current user belongs to.
type ListTenantsResponse struct {
	Tenants []domain.UserTenant `json:"tenants"`
}
