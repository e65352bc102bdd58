package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/SscSPs/finance_tracker/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

type googleOAuthServiceImpl struct {
	BaseService
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthServiceImpl{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthServiceImpl)(nil)

// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
func (s *googleOAuthServiceImpl) GenerateStateString(ctx context.Context) (string, error) {
	// 16 bytes -> 32 char hex string
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}

// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
func (s *googleOAuthServiceImpl) GetGoogleLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCode trades the authorization code for tokens and validates the returned ID token.
func (s *googleOAuthServiceImpl) ExchangeCode(ctx context.Context, code string) (*domain.GoogleIdentity, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}

	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to exchange Google authorization code")
		// Google answers invalid_grant for expired or replayed codes; that is the client's fault.
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") {
			return nil, fmt.Errorf("%w: invalid or expired authorization code", apperrors.ErrValidation)
		}
		return nil, apperrors.NewAppError(http.StatusBadGateway, "Failed to communicate with Google OAuth service", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("google token response did not include an id_token")
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		s.LogError(ctx, err, "Google ID token validation failed")
		return nil, fmt.Errorf("%w: google ID token validation failed: %v", apperrors.ErrUnauthorized, err)
	}
	identity := identityFromPayload(payload)
	return &identity, nil
}

func identityFromPayload(payload *idtoken.Payload) domain.GoogleIdentity {
	identity := domain.GoogleIdentity{Subject: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		identity.Name = name
	}
	switch v := payload.Claims["email_verified"].(type) {
	case bool:
		identity.EmailVerified = v
	case string:
		identity.EmailVerified = v == "true"
	}
	return identity
}
