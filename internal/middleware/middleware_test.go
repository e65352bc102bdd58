package middleware_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/SscSPs/finance_tracker/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-access-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func token(t *testing.T, userID, audience string, now time.Time, ttl time.Duration) string {
	t.Helper()
	tok, _, err := utils.GenerateJWT(userID, testSecret, ttl, "finance-tracker", audience, now)
	require.NoError(t, err)
	return tok
}

type authorizerFunc func(ctx context.Context, userID, tenantID string) error

func (f authorizerFunc) AuthorizeTenantAccess(ctx context.Context, userID, tenantID string) error {
	return f(ctx, userID, tenantID)
}

func newRouter(authorizer middleware.TenantAuthorizer) *gin.Engine {
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(discardLogger()))
	api := r.Group("/api/v1", middleware.AuthMiddleware(testSecret))
	api.GET("/me", func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromCtx(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})
	tenant := api.Group("/tenants/:tenant_id", middleware.TenantMembershipMiddleware(authorizer))
	tenant.GET("/ping", func(c *gin.Context) {
		tenantID, _ := middleware.GetTenantIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"tenantID": tenantID})
	})
	return r
}

func serve(r http.Handler, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func allowAll() middleware.TenantAuthorizer {
	return authorizerFunc(func(context.Context, string, string) error { return nil })
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(allowAll())
	now := time.Now()

	tests := []struct {
		name       string
		bearer     string
		wantStatus int
		wantBody   string
	}{
		{"valid access token", token(t, "u1", utils.AccessTokenAudience, now, time.Hour), http.StatusOK, `"userID":"u1"`},
		{"missing header", "", http.StatusUnauthorized, "Authorization header required"},
		{"refresh token rejected", token(t, "u1", utils.RefreshTokenAudience, now, time.Hour), http.StatusUnauthorized, "Invalid token"},
		{"expired", token(t, "u1", utils.AccessTokenAudience, now.Add(-2*time.Hour), time.Hour), http.StatusUnauthorized, "Token has expired"},
		{"garbage", "not-a-jwt", http.StatusUnauthorized, "Invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, "/api/v1/me", tt.bearer)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestAuthMiddleware_RejectsNonBearerScheme(t *testing.T) {
	r := newRouter(allowAll())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("Authorization", "Basic dTpw")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTenantMembershipMiddleware(t *testing.T) {
	var gotUser, gotTenant string
	authorizer := authorizerFunc(func(_ context.Context, userID, tenantID string) error {
		gotUser, gotTenant = userID, tenantID
		switch tenantID {
		case "mine":
			return nil
		case "broken":
			return errors.New("db down")
		}
		return apperrors.ErrForbidden
	})
	r := newRouter(authorizer)
	bearer := token(t, "u1", utils.AccessTokenAudience, time.Now(), time.Hour)

	w := serve(r, "/api/v1/tenants/mine/ping", bearer)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tenantID":"mine"`)
	assert.Equal(t, "u1", gotUser)
	assert.Equal(t, "mine", gotTenant)

	w = serve(r, "/api/v1/tenants/theirs/ping", bearer)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(r, "/api/v1/tenants/broken/ping", bearer)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStructuredLoggingMiddleware_RequestID(t *testing.T) {
	r := newRouter(allowAll())
	bearer := token(t, "u1", utils.AccessTokenAudience, time.Now(), time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))

	w = serve(r, "/api/v1/me", bearer)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.NotNil(t, middleware.GetLoggerFromCtx(context.Background()))
	logger := discardLogger()
	assert.Same(t, logger, middleware.GetLoggerFromCtx(middleware.WithLogger(context.Background(), logger)))
}

func TestRateLimit(t *testing.T) {
	limiter, err := middleware.NewRateLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.RateLimit(limiter))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := serve(r, "/health", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}
	w := serve(r, "/health", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestNewRateLimiter_InvalidFormat(t *testing.T) {
	_, err := middleware.NewRateLimiter("lots")
	assert.Error(t, err)
}

func TestEventNameFromRoute(t *testing.T) {
	assert.Equal(t, "post_tenants_transfers", middleware.EventNameFromRoute(http.MethodPost, "/api/v1/tenants/:tenant_id/transfers"))
	assert.Equal(t, "get_tenants_cost_centers", middleware.EventNameFromRoute(http.MethodGet, "/api/v1/tenants/:tenant_id/cost-centers"))
	assert.Equal(t, "patch_tenants_transactions_status", middleware.EventNameFromRoute(http.MethodPatch, "/api/v1/tenants/:tenant_id/transactions/:transaction_id/status"))
	assert.Empty(t, middleware.EventNameFromRoute(http.MethodGet, ""))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
