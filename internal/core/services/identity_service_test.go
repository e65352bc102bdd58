package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/core/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/SscSPs/finance_tracker/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type IdentityServiceTestSuite struct {
	suite.Suite
	repo    *MockIdentityRepository
	cfg     *config.Config
	service portssvc.IdentitySvcFacade
	ctx     context.Context
	tx      *fakeTx
}

func (suite *IdentityServiceTestSuite) SetupTest() {
	suite.repo = new(MockIdentityRepository)
	suite.cfg = &config.Config{
		JWTSecret:                  "access-secret",
		JWTExpiryDuration:          15 * time.Minute,
		JWTIssuer:                  "finance-tracker-test",
		RefreshTokenSecret:         "refresh-secret",
		RefreshTokenExpiryDuration: time.Hour,
	}
	suite.service = services.NewIdentityService(suite.repo, suite.cfg)
	suite.ctx = context.Background()
	suite.tx = &fakeTx{}
}

func (suite *IdentityServiceTestSuite) expectRegistrationTx(name string) {
	suite.repo.On("Begin", suite.ctx).Return(suite.tx, nil).Once()
	suite.repo.On("SaveTenantInTx", suite.ctx, suite.tx, mock.MatchedBy(func(t domain.Tenant) bool {
		return t.Name == name+"'s finances" && t.Type == domain.TenantPersonal
	})).Return(nil).Once()
	suite.repo.On("SaveUserInTx", suite.ctx, suite.tx, mock.Anything).Return(nil).Once()
	suite.repo.On("SaveMembershipInTx", suite.ctx, suite.tx, mock.MatchedBy(func(m domain.TenantMembership) bool {
		return m.Role == domain.RoleOwner
	})).Return(nil).Once()
	suite.repo.On("Commit", suite.ctx, suite.tx).Return(nil).Once()
	suite.repo.On("Rollback", suite.ctx, suite.tx).Return(nil).Once()
}

func (suite *IdentityServiceTestSuite) TestRegister_Success() {
	suite.repo.On("FindUserByEmail", suite.ctx, "ana@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.expectRegistrationTx("Ana")

	session, err := suite.service.Register(suite.ctx, dto.RegisterRequest{Name: "Ana", Email: " Ana@Example.com ", Password: "s3cretpass"})

	suite.Require().NoError(err)
	suite.Equal("ana@example.com", session.User.Email)
	suite.NotEmpty(session.User.PasswordHash)
	suite.Require().Len(session.Tenants, 1)
	suite.Equal(domain.RoleOwner, session.Tenants[0].Role)

	claims, err := utils.ParseAndValidateJWT(session.Tokens.AccessToken, suite.cfg.JWTSecret, utils.AccessTokenAudience)
	suite.Require().NoError(err)
	suite.Equal(session.User.UserID, claims.Subject)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *IdentityServiceTestSuite) TestRegister_DuplicateEmail() {
	suite.repo.On("FindUserByEmail", suite.ctx, "ana@example.com").Return(&domain.User{UserID: "u1"}, nil).Once()

	_, err := suite.service.Register(suite.ctx, dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "s3cretpass"})
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.repo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *IdentityServiceTestSuite) TestLogin() {
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	user := &domain.User{UserID: "u1", Email: "ana@example.com", PasswordHash: hash}
	suite.repo.On("FindUserByEmail", suite.ctx, "ana@example.com").Return(user, nil)
	suite.repo.On("ListTenantsByUserID", suite.ctx, "u1").Return([]domain.UserTenant{{Tenant: domain.Tenant{TenantID: "t1"}, Role: domain.RoleOwner}}, nil).Once()

	session, err := suite.service.Login(suite.ctx, dto.LoginRequest{Email: "ana@example.com", Password: "correct-horse"})
	suite.Require().NoError(err)
	suite.Len(session.Tenants, 1)

	_, err = suite.service.Login(suite.ctx, dto.LoginRequest{Email: "ana@example.com", Password: "wrong"})
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *IdentityServiceTestSuite) TestLogin_UnknownEmail() {
	suite.repo.On("FindUserByEmail", suite.ctx, "who@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Login(suite.ctx, dto.LoginRequest{Email: "who@example.com", Password: "x"})
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *IdentityServiceTestSuite) TestRefresh() {
	refresh, _, err := utils.GenerateJWT("u1", suite.cfg.RefreshTokenSecret, time.Hour, suite.cfg.JWTIssuer, utils.RefreshTokenAudience, time.Now())
	suite.Require().NoError(err)
	suite.repo.On("FindUserByID", suite.ctx, "u1").Return(&domain.User{UserID: "u1"}, nil).Once()

	pair, err := suite.service.Refresh(suite.ctx, refresh)

	suite.Require().NoError(err)
	suite.NotEmpty(pair.AccessToken)
	suite.NotEmpty(pair.RefreshToken)
}

func (suite *IdentityServiceTestSuite) TestRefresh_RejectsAccessToken() {
	// Signed with the refresh secret but carrying the access audience.
	token, _, err := utils.GenerateJWT("u1", suite.cfg.RefreshTokenSecret, time.Hour, suite.cfg.JWTIssuer, utils.AccessTokenAudience, time.Now())
	suite.Require().NoError(err)

	_, err = suite.service.Refresh(suite.ctx, token)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *IdentityServiceTestSuite) TestRefresh_Expired() {
	token, _, err := utils.GenerateJWT("u1", suite.cfg.RefreshTokenSecret, time.Minute, suite.cfg.JWTIssuer, utils.RefreshTokenAudience, time.Now().Add(-time.Hour))
	suite.Require().NoError(err)

	_, err = suite.service.Refresh(suite.ctx, token)
	suite.ErrorIs(err, apperrors.ErrRefreshTokenExpired)
}

func (suite *IdentityServiceTestSuite) TestLoginWithGoogle_NewUser() {
	suite.repo.On("FindUserByEmail", suite.ctx, "bob@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.expectRegistrationTx("Bob")

	session, err := suite.service.LoginWithGoogle(suite.ctx, domain.GoogleIdentity{
		Subject: "google-123", Email: "bob@example.com", Name: "Bob", EmailVerified: true,
	})

	suite.Require().NoError(err)
	suite.Equal(domain.ProviderGoogle, session.User.AuthProvider)
	suite.Empty(session.User.PasswordHash)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *IdentityServiceTestSuite) TestLoginWithGoogle_UnverifiedEmail() {
	_, err := suite.service.LoginWithGoogle(suite.ctx, domain.GoogleIdentity{Email: "bob@example.com"})
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *IdentityServiceTestSuite) TestAuthorizeTenantAccess() {
	suite.repo.On("FindMembership", suite.ctx, "u1", "t1").Return(&domain.TenantMembership{UserID: "u1", TenantID: "t1"}, nil).Once()
	suite.repo.On("FindMembership", suite.ctx, "u1", "t2").Return(nil, apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.AuthorizeTenantAccess(suite.ctx, "u1", "t1"))
	suite.ErrorIs(suite.service.AuthorizeTenantAccess(suite.ctx, "u1", "t2"), apperrors.ErrForbidden)
}

func TestIdentityService(t *testing.T) {
	suite.Run(t, new(IdentityServiceTestSuite))
}
