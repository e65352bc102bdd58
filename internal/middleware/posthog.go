package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/finance_tracker/internal/utils"
	"github.com/gin-gonic/gin"
)

var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware records one analytics event per successful authenticated call.
// Events are keyed by user and carry the tenant, never request bodies.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	if !posthogClient.IsInitialized() {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		c.Next()

		if pathsToSkip[c.Request.URL.Path] || len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		route := c.FullPath()
		eventName := EventNameFromRoute(c.Request.Method, route)
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"route":       route,
			"status_code": c.Writer.Status(),
		}
		if tenantID, ok := GetTenantIDFromContext(c); ok {
			props["tenant_id"] = tenantID
		}
		posthogClient.Enqueue(userID, eventName, props)
	}
}

// EventNameFromRoute turns "POST /api/v1/tenants/:tenant_id/transfers" into
// "post_tenants_transfers".
func EventNameFromRoute(method, route string) string {
	if route == "" {
		return ""
	}
	parts := []string{strings.ToLower(method)}
	for _, seg := range strings.Split(strings.Trim(route, "/"), "/") {
		if seg == "" || seg == "api" || seg == "v1" || strings.HasPrefix(seg, ":") || strings.HasPrefix(seg, "*") {
			continue
		}
		parts = append(parts, strings.ReplaceAll(seg, "-", "_"))
	}
	return strings.Join(parts, "_")
}
