package handlers

import (
	"net/http"

	"github.com/SscSPs/ct_order_jobs/cmd/docs"
	portssvc "github.com/SscSPs/ct_order_jobs/internal/core/ports/services"
	"github.com/SscSPs/ct_order_jobs/internal/metrics"
	"github.com/SscSPs/ct_order_jobs/internal/middleware"
	"github.com/SscSPs/ct_order_jobs/internal/platform/config"
	"github.com/SscSPs/ct_order_jobs/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// JobRouteDeps is the infrastructure the job routes are wired with.
// Nil fields disable the corresponding middleware or metrics.
type JobRouteDeps struct {
	Metrics     *metrics.JobMetrics
	RateLimiter *limiter.Limiter
	Analytics   *utils.PosthogClientWrapper
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps JobRouteDeps,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// Job routes called by the scheduler
	setupJobRoutes(r, cfg, services, deps)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupJobRoutes configures the /jobs group and delegates to the job route registrations
func setupJobRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps JobRouteDeps,
) {
	jobs := r.Group("/jobs")
	// Limited by client IP ahead of auth; rejected requests count too.
	if deps.RateLimiter != nil {
		jobs.Use(middleware.RateLimit(deps.RateLimiter))
	}
	jobs.Use(
		middleware.SchedulerAuthMiddleware(cfg.SchedulerJWTSecret),
		middleware.JobAnalyticsMiddleware(deps.Analytics),
	)

	registerOrderJobRoutes(jobs, services.OrderAggregation, deps.Metrics)
	registerCustomerJobRoutes(jobs, services.Customer, deps.Metrics)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
