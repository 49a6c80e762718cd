package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"github.com/vitrinsoft/vitrin_backend/cmd/docs"
	portssvc "github.com/vitrinsoft/vitrin_backend/internal/core/ports/services"
	"github.com/vitrinsoft/vitrin_backend/internal/middleware"
	"github.com/vitrinsoft/vitrin_backend/internal/platform/config"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public storefront routes: no authentication
	RegisterAuthRoutes(r, cfg, services)
	registerPublicRoutes(r, services)

	// Authenticated customer routes
	setupAccountRoutes(r, cfg, services)

	// Admin backend routes
	setupAdminRoutes(r, cfg, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// registerPublicRoutes configures the unauthenticated storefront surface.
// The whole group sits behind a per-IP rate limit.
func registerPublicRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	rate, _ := limiter.NewRateFromFormatted("120-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	api := r.Group("/api", middleware.RateLimit(ipLimiter))

	registerExchangeRateRoutes(api, services.Currency)
	registerPublicSearchRoutes(api, services.Product)
	registerPublicBlogRoutes(api, services.Blog)
	registerPaymentLandingRoutes(api)
}

// setupAccountRoutes configures the customer-facing authenticated surface.
func setupAccountRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	account := r.Group("/api/account", middleware.AuthMiddleware(cfg.JWTSecret))

	registerAccountOrderRoutes(account, services.Order)
}

// setupAdminRoutes configures the /api/admin group behind the admin guard.
func setupAdminRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	admin := r.Group("/api/admin", middleware.AuthMiddleware(cfg.JWTSecret), middleware.RequireAdmin())

	RegisterAdminCurrencyRoutes(admin, services.Currency, services.Pricing)
	registerAdminProductRoutes(admin, services.Product)
	registerAdminBlogRoutes(admin, services.Blog)
	registerAdminBrandRoutes(admin, services.Brand)
	registerAdminCategoryRoutes(admin, services.Category)
	registerAdminB2BUserRoutes(admin, services.User)
	registerAdminOrderRoutes(admin, services.Order)
	registerAdminSettingsRoutes(admin, services.Settings)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
