package main

import (
	"log"
	"time"

	"github.com/Nycksionia/atende50/config"
	"github.com/Nycksionia/atende50/db"
	"github.com/Nycksionia/atende50/handlers"
	"github.com/Nycksionia/atende50/middleware"
	"github.com/Nycksionia/atende50/models"
	"github.com/Nycksionia/atende50/services"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(&models.Admin{}, &models.Professional{}, &models.Lead{}, &models.Case{}, &models.Session{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Guarantee the default admin exists (idempotent across restarts)
	if err := services.EnsureDefaultAdmin(db.DB, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed default admin: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Public routes (no authentication required)
	e.GET("/", handlers.LandingHandler)
	e.GET("/login", handlers.LoginPageHandler)
	e.POST("/login", handlers.LoginPostHandler, middleware.LoginRateLimiter.Middleware())
	e.GET("/logout", handlers.LogoutHandler)

	// Public registration and service request forms
	e.POST("/professionals", handlers.RegisterProfessionalHandler, middleware.PublicFormRateLimiter.Middleware())
	e.POST("/requests", handlers.SubmitServiceRequestHandler, middleware.PublicFormRateLimiter.Middleware())

	// Restricted area (authenticated admin session required)
	admin := e.Group("/admin")
	admin.Use(middleware.RequireAuth())
	{
		admin.GET("", handlers.RestrictedAreaHandler)
		admin.GET("/dashboard", handlers.DashboardHandler)
		admin.GET("/professionals", handlers.ListProfessionalsHandler)
		admin.DELETE("/professionals/:id", handlers.DeleteProfessionalHandler)
		admin.GET("/leads", handlers.ListLeadsHandler)
		admin.GET("/cases", handlers.ListCasesHandler)
		admin.POST("/cases/:id/assign", handlers.AssignProfessionalHandler)
		admin.PUT("/cases/:id/status", handlers.UpdateCaseStatusHandler)
	}

	// Start background cleanup job (runs every hour)
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := services.CleanupExpiredSessions(db.DB); err != nil {
				log.Printf("Error cleaning up expired sessions: %v", err)
			}
		}
	}()

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
