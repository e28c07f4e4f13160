package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/estatedesk/backend/config"
	"github.com/estatedesk/backend/pkg/api/handlers"
	custommw "github.com/estatedesk/backend/pkg/api/middleware"
	"github.com/estatedesk/backend/pkg/auth"
	"github.com/estatedesk/backend/pkg/cache"
	"github.com/estatedesk/backend/pkg/database"
	"github.com/estatedesk/backend/pkg/metrics"
	custommiddleware "github.com/estatedesk/backend/pkg/middleware"
	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2)        // 5 req/min for login
	registerRateLimiter := custommiddleware.NewRateLimiter(3, 1)    // 3 req/min for register
	submissionRateLimiter := custommiddleware.NewRateLimiter(20, 5) // 20 req/min for the public contact form

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true, // Repanic after capturing to let the Recover middleware handle it
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowCredentials: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
		},
	}))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())

	// Global rate limiting (default 60 req/min)
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "EstateDesk API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		// Check database connection
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		// Check Redis connection
		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Initialize JWT blacklist
	tokenBlacklist := auth.NewTokenBlacklist(redisClient)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db.Ent, cfg, tokenBlacklist, prometheusMetrics)
	submissionHandler := handlers.NewSubmissionHandler(db.Ent, prometheusMetrics)
	landingHandler := handlers.NewLandingHandler(db.Ent)
	leadHandler := handlers.NewLeadHandler(db.Ent, prometheusMetrics)
	propertyHandler := handlers.NewPropertyHandler(db.Ent)
	dealHandler := handlers.NewDealHandler(db.Ent, prometheusMetrics)
	activityHandler := handlers.NewActivityHandler(db.Ent)
	dashboardHandler := handlers.NewDashboardHandler(db.Ent)
	adminHandler := handlers.NewAdminHandler(db.Ent)

	v1 := e.Group("/api/v1")

	// Authentication routes (public)
	authRoutes := v1.Group("/auth")
	{
		// Register with strict rate limit
		authRoutes.POST("/register", authHandler.Register, registerRateLimiter.RateLimitMiddleware())
		// Login with rate limit (prevent brute force)
		authRoutes.POST("/login", authHandler.Login, authRateLimiter.RateLimitMiddleware())
		// Me endpoint with JWT validation and blacklist check
		authRoutes.GET("/me", authHandler.Me, custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist))
		// Logout endpoint (revoke token)
		authRoutes.POST("/logout", authHandler.Logout, custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist))
	}

	// Public landing-page routes (no authentication)
	landingGroup := v1.Group("/landing-page")
	{
		landingGroup.POST("/submissions", submissionHandler.Submit, submissionRateLimiter.RateLimitMiddleware())
		landingGroup.GET("/properties/:slug", landingHandler.GetProperty)
	}

	// Protected routes (require JWT with blacklist validation)
	protected := v1.Group("")
	protected.Use(custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist))
	{
		// Lead routes
		leadsGroup := protected.Group("/leads")
		{
			leadsGroup.POST("", leadHandler.CreateLead)
			leadsGroup.GET("", leadHandler.ListLeads)
			leadsGroup.GET("/:id", leadHandler.GetLead)
			leadsGroup.GET("/:id/activities", leadHandler.ListLeadActivities)
			leadsGroup.PATCH("/:id", leadHandler.UpdateLead)
			leadsGroup.DELETE("/:id", leadHandler.DeleteLead)
		}

		// Property routes
		propertiesGroup := protected.Group("/properties")
		{
			propertiesGroup.POST("", propertyHandler.CreateProperty)
			propertiesGroup.GET("", propertyHandler.ListProperties)
			propertiesGroup.GET("/:id", propertyHandler.GetProperty)
			propertiesGroup.PATCH("/:id", propertyHandler.UpdateProperty)
			propertiesGroup.DELETE("/:id", propertyHandler.DeleteProperty)
		}

		// Deal routes
		dealsGroup := protected.Group("/deals")
		{
			dealsGroup.POST("", dealHandler.CreateDeal)
			dealsGroup.GET("", dealHandler.ListDeals)
			dealsGroup.GET("/:id", dealHandler.GetDeal)
			dealsGroup.PATCH("/:id", dealHandler.UpdateDeal)
			dealsGroup.DELETE("/:id", dealHandler.DeleteDeal)
		}

		// Activity routes (append-only log)
		activitiesGroup := protected.Group("/activities")
		{
			activitiesGroup.POST("", activityHandler.CreateActivity)
			activitiesGroup.GET("", activityHandler.ListActivities)
		}

		// Dashboard
		protected.GET("/dashboard", dashboardHandler.GetDashboard)

		// Admin routes (require admin role)
		adminGroup := protected.Group("/admin")
		adminGroup.Use(custommiddleware.RequireAdmin(db.Ent))
		{
			adminGroup.GET("/users", adminHandler.ListUsers)
			adminGroup.POST("/users", adminHandler.CreateUser)
		}
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 EstateDesk API starting on %s", address)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("🔒 Auth endpoints: login (5/min), register (3/min), submissions (20/min)")

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	// Gracefully shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
