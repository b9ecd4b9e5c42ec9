package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/oficinadev/oficina_backend/cmd/docs"
	portssvc "github.com/oficinadev/oficina_backend/internal/core/ports/services"
	"github.com/oficinadev/oficina_backend/internal/middleware"
	"github.com/oficinadev/oficina_backend/internal/platform/config"
	"github.com/oficinadev/oficina_backend/internal/utils/dateutil"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, cfg, services)
	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group. Every route in
// it runs behind JWT validation and the tenant resolver.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.TenantMiddleware(services.Auth),
	)

	registerSessionRoutes(v1, services.Auth)
	registerUserRoutes(v1, services.User)
	registerOrganizationRoutes(v1, services.Organization)
	registerClientRoutes(v1, services.Client)
	registerServiceOrderRoutes(v1, services.ServiceOrder)
	registerServiceItemRoutes(v1, services.ServiceItem)
	registerBudgetRoutes(v1, services.Budget)
	registerCashFlowRoutes(v1, services.CashFlow, services.Reporting)
}

// newLoginRateLimiter builds the per-IP limiter applied to the login route.
func newLoginRateLimiter(cfg *config.Config) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		return nil, err
	}
	return limiter.New(memory.NewStore(), rate), nil
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// registerCustomValidators adds the binding tags used by the request DTOs:
// dateday (YYYY-MM-DD), datemonth (YYYY-MM) and slug.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("dateday", func(fl validator.FieldLevel) bool {
		_, err := dateutil.ParseDay(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("datemonth", func(fl validator.FieldLevel) bool {
		_, err := dateutil.ParseMonth(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return false
		}
		for i, r := range s {
			switch {
			case r >= 'a' && r <= 'z':
			case r >= '0' && r <= '9':
			case r == '-' && i > 0 && i < len(s)-1:
			default:
				return false
			}
		}
		return true
	})
}
