package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/SscSPs/finance_tracker/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type identityServiceImpl struct {
	BaseService
	identityRepo portsrepo.IdentityRepositoryWithTx
	cfg          *config.Config
	now          func() time.Time
}

func NewIdentityService(repo portsrepo.IdentityRepositoryWithTx, cfg *config.Config) portssvc.IdentitySvcFacade {
	return &identityServiceImpl{
		identityRepo: repo,
		cfg:          cfg,
		now:          time.Now,
	}
}

var _ portssvc.IdentitySvcFacade = (*identityServiceImpl)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// personalTenantName names the tenant created for every new user.
func personalTenantName(userName string) string {
	return fmt.Sprintf("%s's finances", userName)
}

func (s *identityServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Session, error) {
	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)
	if email == "" || name == "" {
		return nil, fmt.Errorf("%w: name and email are required", apperrors.ErrValidation)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", apperrors.ErrValidation)
	}

	if err := s.ensureEmailFree(ctx, email); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
		CreatedAt:    s.now(),
	}
	tenants, err := s.createUserWithTenant(ctx, user)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return s.newSession(ctx, user, tenants)
}

func (s *identityServiceImpl) ensureEmailFree(ctx context.Context, email string) error {
	_, err := s.identityRepo.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	default:
		s.LogError(ctx, err, "Failed to look up user by email")
		return fmt.Errorf("failed to look up user: %w", err)
	}
}

// createUserWithTenant stores the user, a personal tenant and the OWNER membership atomically.
func (s *identityServiceImpl) createUserWithTenant(ctx context.Context, user domain.User) ([]domain.UserTenant, error) {
	tenant := domain.Tenant{
		TenantID:  uuid.NewString(),
		Name:      personalTenantName(user.Name),
		Type:      domain.TenantPersonal,
		CreatedAt: user.CreatedAt,
	}
	membership := domain.TenantMembership{
		UserID:   user.UserID,
		TenantID: tenant.TenantID,
		Role:     domain.RoleOwner,
		JoinedAt: user.CreatedAt,
	}

	tx, err := s.identityRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin registration transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rbErr := s.identityRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back registration transaction")
		}
	}()

	if err := s.identityRepo.SaveTenantInTx(ctx, tx, tenant); err != nil {
		s.LogError(ctx, err, "Failed to save tenant", slog.String("tenant_id", tenant.TenantID))
		return nil, fmt.Errorf("failed to save tenant: %w", err)
	}
	if err := s.identityRepo.SaveUserInTx(ctx, tx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	if err := s.identityRepo.SaveMembershipInTx(ctx, tx, membership); err != nil {
		s.LogError(ctx, err, "Failed to save membership", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to save membership: %w", err)
	}
	if err := s.identityRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit registration")
		return nil, fmt.Errorf("failed to commit registration: %w", err)
	}

	return []domain.UserTenant{{Tenant: tenant, Role: membership.Role}}, nil
}

func (s *identityServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*domain.Session, error) {
	user, err := s.identityRepo.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user by email")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogWarn(ctx, "Invalid password", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	tenants, err := s.ListUserTenants(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	return s.newSession(ctx, *user, tenants)
}

func (s *identityServiceImpl) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := utils.ParseAndValidateJWT(refreshToken, s.cfg.RefreshTokenSecret, utils.RefreshTokenAudience)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrRefreshTokenExpired
		}
		s.LogWarn(ctx, "Invalid refresh token", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: invalid refresh token", apperrors.ErrUnauthorized)
	}

	user, err := s.identityRepo.FindUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown user", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user by ID")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return s.issueTokens(user.UserID)
}

func (s *identityServiceImpl) LoginWithGoogle(ctx context.Context, identity domain.GoogleIdentity) (*domain.Session, error) {
	email := normalizeEmail(identity.Email)
	if email == "" || !identity.EmailVerified {
		return nil, fmt.Errorf("%w: google account has no verified email", apperrors.ErrUnauthorized)
	}

	user, err := s.identityRepo.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		tenants, err := s.ListUserTenants(ctx, user.UserID)
		if err != nil {
			return nil, err
		}
		return s.newSession(ctx, *user, tenants)
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to look up user by email")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	name := strings.TrimSpace(identity.Name)
	if name == "" {
		name = email
	}
	newUser := domain.User{
		UserID:         uuid.NewString(),
		Name:           name,
		Email:          email,
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: identity.Subject,
		CreatedAt:      s.now(),
	}
	tenants, err := s.createUserWithTenant(ctx, newUser)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "User registered with Google", slog.String("user_id", newUser.UserID))
	return s.newSession(ctx, newUser, tenants)
}

func (s *identityServiceImpl) ListUserTenants(ctx context.Context, userID string) ([]domain.UserTenant, error) {
	tenants, err := s.identityRepo.ListTenantsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list user tenants", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	if tenants == nil {
		tenants = []domain.UserTenant{}
	}
	return tenants, nil
}

func (s *identityServiceImpl) AuthorizeTenantAccess(ctx context.Context, userID, tenantID string) error {
	_, err := s.identityRepo.FindMembership(ctx, userID, tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrForbidden
		}
		return fmt.Errorf("failed to check membership: %w", err)
	}
	return nil
}

func (s *identityServiceImpl) newSession(ctx context.Context, user domain.User, tenants []domain.UserTenant) (*domain.Session, error) {
	tokens, err := s.issueTokens(user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue tokens", slog.String("user_id", user.UserID))
		return nil, err
	}
	return &domain.Session{User: user, Tenants: tenants, Tokens: *tokens}, nil
}

func (s *identityServiceImpl) issueTokens(userID string) (*domain.TokenPair, error) {
	now := s.now()
	access, accessExp, err := utils.GenerateJWT(userID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer, utils.AccessTokenAudience, now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, refreshExp, err := utils.GenerateJWT(userID, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration, s.cfg.JWTIssuer, utils.RefreshTokenAudience, now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return &domain.TokenPair{
		AccessToken:           access,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          refresh,
		RefreshTokenExpiresAt: refreshExp,
	}, nil
}
