package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// TenantParam is the route parameter carrying the tenant ID.
const TenantParam = "tenant_id"

// TenantAuthorizer answers whether a user may act on a tenant.
type TenantAuthorizer interface {
	AuthorizeTenantAccess(ctx context.Context, userID, tenantID string) error
}

// TenantMembershipMiddleware resolves the tenant from the route and checks that the
// authenticated user belongs to it. It must run after AuthMiddleware.
func TenantMembershipMiddleware(authorizer TenantAuthorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		tenantID := c.Param(TenantParam)
		if tenantID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Tenant ID is required"})
			return
		}

		if err := authorizer.AuthorizeTenantAccess(c.Request.Context(), userID, tenantID); err != nil {
			if errors.Is(err, apperrors.ErrForbidden) {
				logger.Warn("User is not a member of tenant", slog.String("tenant_id", tenantID))
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access to tenant denied"})
				return
			}
			logger.Error("Failed to check tenant membership",
				slog.String("tenant_id", tenantID),
				slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to check tenant access"})
			return
		}

		enriched := logger.With(slog.String("tenant_id", tenantID))
		c.Request = c.Request.WithContext(WithLogger(WithTenantID(c.Request.Context(), tenantID), enriched))
		c.Next()
	}
}
