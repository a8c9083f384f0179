package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "seatbill/docs"
	"seatbill/internal/caching"
	"seatbill/internal/config"
	"seatbill/internal/handlers"
	"seatbill/internal/jobs"
	"seatbill/internal/middleware"
	"seatbill/internal/repositories"
	"seatbill/internal/services"
	"seatbill/internal/storage"
	"seatbill/pkg/database"
)

const version = "1.0.0"

// @title Seatbill API
// @version 1.0
// @description Prorated per-seat monthly billing.
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Println(config.Usage())
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database connection
	pool, err := database.NewPool(ctx, cfg.Database.URL, cfg.Database.MaxConns)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if cfg.Database.ApplySchema {
		if err := database.EnsureSchema(ctx, pool); err != nil {
			log.Fatalf("Failed to apply schema: %v", err)
		}
	}

	// Redis
	redisClient := caching.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer redisClient.Close()
	chargeCache := caching.NewRedisChargeCache(redisClient)

	// MinIO
	statementStore, err := storage.NewMinioStatementStore(cfg.MinIO.Endpoint, cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, cfg.MinIO.Bucket, cfg.MinIO.UseSSL)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO client: %v", err)
	}
	if err := statementStore.EnsureBucket(ctx); err != nil {
		log.Printf("WARN: could not ensure statement bucket %q: %v", cfg.MinIO.Bucket, err)
	}

	// Repositories
	subscriptionRepo := repositories.NewSubscriptionRepo(pool)
	userRepo := repositories.NewUserRepo(pool)
	invoiceRepo := repositories.NewInvoiceRepo(pool)

	// Services
	billingSvc := services.NewBillingService(subscriptionRepo, userRepo, invoiceRepo, chargeCache, statementStore, cfg.Redis.ChargeTTL)
	subscriptionSvc := services.NewSubscriptionService(subscriptionRepo, chargeCache)
	userSvc := services.NewUserService(userRepo, chargeCache)

	// Auth
	jwtSecret := cfg.Auth.JWTSecret
	if jwtSecret == "" && cfg.Auth.JWKSURL == "" {
		jwtSecret = random.String(32) // development only
		log.Printf("WARNING: JWT_SECRET not set, using a generated secret")
	}
	authMiddleware, closeJWKS, err := middleware.NewJWTMiddleware(middleware.AuthConfig{
		Secret:  jwtSecret,
		JWKSURL: cfg.Auth.JWKSURL,
	})
	if err != nil {
		log.Fatalf("Failed to configure authentication: %v", err)
	}
	defer closeJWKS()

	e := echo.New()
	e.HideBanner = true

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	versionMiddleware := middleware.NewVersionMiddleware()
	e.Use(versionMiddleware.APIVersionResolver())

	// Health endpoints (no auth required)
	healthHandlers := handlers.NewHealthHandlers(pool, chargeCache, version)
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1")
	v1.Use(versionMiddleware.VersionHeader("v1"))

	customers := v1.Group("/customers/:customer_id", authMiddleware, middleware.CustomerScope("customer_id"))
	handlers.NewBillingHandlers(billingSvc).Register(customers)
	handlers.NewSubscriptionHandlers(subscriptionSvc).Register(customers)
	handlers.NewUserHandlers(userSvc).Register(customers)

	admin := v1.Group("/admin", authMiddleware, middleware.RequireRole(middleware.RoleAdmin))
	handlers.NewJobHandlers(billingSvc).Register(admin)

	// Monthly invoicing
	if cfg.Scheduler.Enabled {
		scheduler, err := jobs.NewInvoiceScheduler(billingSvc, cfg.Scheduler.DayOfMonth, cfg.Scheduler.Hour)
		if err != nil {
			log.Fatalf("Failed to create invoice scheduler: %v", err)
		}
		scheduler.Start()
		defer func() {
			if err := scheduler.Stop(); err != nil {
				log.Printf("WARN: scheduler shutdown: %v", err)
			}
		}()
	}

	go func() {
		log.Printf("Seatbill server v%s starting on port %d", version, cfg.HTTP.Port)
		if err := e.Start(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("WARN: graceful shutdown failed: %v", err)
	}
}
