package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	identityService    portssvc.IdentitySvcFacade
	googleOAuthService portssvc.GoogleOAuthSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(identity portssvc.IdentitySvcFacade, google portssvc.GoogleOAuthSvcFacade) *AuthHandler {
	return &AuthHandler{
		identityService:    identity,
		googleOAuthService: google,
	}
}

// registerAuthRoutes sets up the public routes for authentication.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer, extra ...gin.HandlerFunc) {
	h := NewAuthHandler(services.Identity, services.GoogleOAuth)

	auth := r.Group("/auth", extra...)
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.GET("/google/login-url", h.GoogleLoginURL)
		auth.POST("/google/exchange-code", h.ExchangeCodeGoogle)
	}
}

// Register godoc
// @Summary Register new user
// @Description Creates a user, a personal tenant and an OWNER membership, and signs the user in.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} domain.Session
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	session, err := h.identityService.Register(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to register user")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User registered", slog.String("user_id", session.User.UserID))
	c.JSON(http.StatusCreated, session)
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns an access and refresh token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} domain.Session
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	session, err := h.identityService.Login(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to log in")
		return
	}
	c.JSON(http.StatusOK, session)
}

// Refresh godoc
// @Summary Refresh tokens
// @Description Exchanges a valid refresh token for a new token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} domain.TokenPair
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	tokens, err := h.identityService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondWithError(c, err, "Failed to refresh token")
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// GoogleLoginURL godoc
// @Summary Google consent URL
// @Description Returns the Google consent URL and the state value the client must keep.
// @Tags oauth
// @Produce json
// @Success 200 {object} dto.GoogleLoginURLResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login-url [get]
func (h *AuthHandler) GoogleLoginURL(c *gin.Context) {
	ctx := c.Request.Context()
	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		respondWithError(c, err, "Failed to start Google login")
		return
	}
	c.JSON(http.StatusOK, dto.GoogleLoginURLResponse{
		URL:   h.googleOAuthService.GetGoogleLoginURL(ctx, state),
		State: state,
	})
}

// ExchangeCodeGoogle handles the authorization code the frontend received from Google.
// It exchanges the code, validates the ID token and signs the user in, creating the
// user and a personal tenant on first login.
// @Summary Exchange a Google authorization code for a session
// @Tags oauth
// @Accept  json
// @Produce  json
// @Param   code body dto.GoogleExchangeCodeRequest true "Authorization code"
// @Success 200 {object} domain.Session
// @Failure 400 {object} ErrorResponse "Invalid authorization code"
// @Failure 401 {object} ErrorResponse "Google identity rejected"
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *AuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.GoogleExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload", err)
		return
	}

	identity, err := h.googleOAuthService.ExchangeCode(ctx, req.Code)
	if err != nil {
		respondWithError(c, err, "Failed to exchange authorization code with Google")
		return
	}
	logger.Info("Google identity verified", slog.String("google_user_id", identity.Subject))

	session, err := h.identityService.LoginWithGoogle(ctx, *identity)
	if err != nil {
		respondWithError(c, err, "Failed to process user authentication")
		return
	}
	c.JSON(http.StatusOK, session)
}

// listTenants godoc
// @Summary List my tenants
// @Description Tenants the authenticated user is a member of, with the user's role
// @Tags tenants
// @Produce json
// @Success 200 {object} dto.ListTenantsResponse
// @Security BearerAuth
// @Router /api/v1/tenants [get]
func (h *AuthHandler) listTenants(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	tenants, err := h.identityService.ListUserTenants(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list tenants")
		return
	}
	if tenants == nil {
		tenants = []domain.UserTenant{}
	}
	c.JSON(http.StatusOK, dto.ListTenantsResponse{Tenants: tenants})
}
