package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/ct_order_jobs/internal/adapters/commercetools"
	"github.com/SscSPs/ct_order_jobs/internal/adapters/exchangerates"
	portsrepo "github.com/SscSPs/ct_order_jobs/internal/core/ports/repositories"
	"github.com/SscSPs/ct_order_jobs/internal/core/services"
	"github.com/SscSPs/ct_order_jobs/internal/handlers"
	"github.com/SscSPs/ct_order_jobs/internal/metrics"
	"github.com/SscSPs/ct_order_jobs/internal/middleware"
	"github.com/SscSPs/ct_order_jobs/internal/platform/config"
	"github.com/SscSPs/ct_order_jobs/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Order Jobs API
// @version 1.0
// @description Scheduled jobs that aggregate commercetools orders per customer and maintain customer segments.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the scheduler JWT.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	platformClient, err := commercetools.NewClient(commercetools.Config{
		ProjectKey:   cfg.CTPProjectKey,
		ClientID:     cfg.CTPClientID,
		ClientSecret: cfg.CTPClientSecret,
		Scopes:       cfg.CTPScopes,
		APIURL:       cfg.CTPAPIURL,
		AuthURL:      cfg.CTPAuthURL,
		Timeout:      cfg.HTTPClientTimeout,
	})
	if err != nil {
		logger.Error("Failed to initialize commercetools client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("commercetools client configured", slog.String("project_key", cfg.CTPProjectKey))

	repos := portsrepo.RepositoryProvider{
		ExchangeRateRepo: exchangerates.NewProvider(cfg.ExchangeRatesURL, cfg.HTTPClientTimeout),
		OrderRepo:        commercetools.NewOrderRepository(platformClient),
		CustomerRepo:     commercetools.NewCustomerRepository(platformClient),
	}

	jobMetrics := metrics.NewJobMetrics()
	serviceContainer := services.NewServiceContainer(cfg, repos, jobMetrics)

	jobLimiter, err := middleware.NewJobRateLimiter(cfg.JobRateLimit)
	if err != nil {
		logger.Error("Failed to create job rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		posthogClient.Close()
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.JobRouteDeps{
		Metrics:     jobMetrics,
		RateLimiter: jobLimiter,
		Analytics:   posthogClient,
	})

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := serve(r, ":"+cfg.Port, posthogClient); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// serve runs the router until it fails and flushes queued analytics events
// before returning.
func serve(r *gin.Engine, addr string, analytics *utils.PosthogClientWrapper) error {
	defer analytics.Close()
	return r.Run(addr)
}
