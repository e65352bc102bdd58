package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/finance_tracker/cmd/docs"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/SscSPs/finance_tracker/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

type routeOptions struct {
	limiter *limiter.Limiter
	posthog *utils.PosthogClientWrapper
}

// RouteOption customises RegisterRoutes.
type RouteOption func(*routeOptions)

// WithRateLimiter limits /auth and /api/v1 per client IP.
func WithRateLimiter(l *limiter.Limiter) RouteOption {
	return func(o *routeOptions) {
		o.limiter = l
	}
}

// WithPosthog tracks successful authenticated API calls.
func WithPosthog(client *utils.PosthogClientWrapper) RouteOption {
	return func(o *routeOptions) {
		o.posthog = client
	}
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	options ...RouteOption,
) {
	opts := &routeOptions{}
	for _, option := range options {
		option(opts)
	}

	RegisterValidators()
	r.Use(cors.New(corsConfig(cfg)))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	var limited []gin.HandlerFunc
	if opts.limiter != nil {
		limited = append(limited, middleware.RateLimit(opts.limiter))
	}

	registerAuthRoutes(r, services, limited...)
	setupAPIV1Routes(r, cfg, services, opts, limited)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group. Every ledger route lives under
// /tenants/:tenant_id and passes the membership check first.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	opts *routeOptions,
	limited []gin.HandlerFunc,
) {
	chain := append([]gin.HandlerFunc{}, limited...)
	chain = append(chain, middleware.AuthMiddleware(cfg.JWTSecret), middleware.PosthogMiddleware(opts.posthog))
	v1 := r.Group("/api/v1", chain...)

	auth := NewAuthHandler(services.Identity, services.GoogleOAuth)
	v1.GET("/tenants", auth.listTenants)

	tenant := v1.Group("/tenants/:"+middleware.TenantParam, middleware.TenantMembershipMiddleware(services.Identity))
	registerAccountRoutes(tenant, services.Account, services.Dashboard)
	registerCategoryRoutes(tenant, services.Category)
	registerPersonRoutes(tenant, services.Person)
	registerCostCenterRoutes(tenant, services.CostCenter)
	registerTransactionRoutes(tenant, services.Transaction, services.Transfer)
	registerReportingRoutes(tenant, services.Dashboard, services.Report)
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Content-Disposition"},
		MaxAge:           12 * time.Hour,
	}
	origins := cfg.CORSAllowedOrigins
	if len(origins) == 0 && cfg.FrontendBaseURL != "" {
		origins = []string{cfg.FrontendBaseURL}
	}
	if len(origins) == 0 {
		corsCfg.AllowAllOrigins = true
		return corsCfg
	}
	corsCfg.AllowOrigins = origins
	corsCfg.AllowCredentials = true
	return corsCfg
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
