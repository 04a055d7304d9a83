package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/services"
	"fintrack/internal/validator"

	_ "fintrack/internal/docs" // swagger docs registration
)

// @title           Fintrack API
// @version         1.0
// @description     Fintrack is a personal finance tracker: users record income and expense transactions and view their statistics; admins view system-wide activity. All state is in-memory and lost on restart.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	validator.Register()

	dbManager, err := database.NewManager()
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Services
	db := dbManager.DB()
	directoryService := services.NewDirectoryService(db)
	ledgerService := services.NewLedgerService(db, directoryService)
	statsService := services.NewStatsService(ledgerService, directoryService)
	sessionService := services.NewSessionService(directoryService)

	// Handlers
	authHandler := handlers.NewAuthHandler(directoryService, sessionService)
	transactionHandler := handlers.NewTransactionHandler(ledgerService)
	statsHandler := handlers.NewStatsHandler(statsService)
	categoryHandler := handlers.NewCategoryHandler()
	adminHandler := handlers.NewAdminHandler(ledgerService, statsService, directoryService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/admin/login", authHandler.AdminLogin)

	// Authenticated routes (either role)
	protected := v1.Group("/")
	protected.Use(middleware.AuthRequired())
	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/profile", authHandler.GetProfile)
	protected.GET("/categories", categoryHandler.List)

	// User-scoped routes: callers only ever see their own ledger
	userRoutes := protected.Group("/")
	userRoutes.Use(middleware.RoleRequired(models.RoleUser))
	userRoutes.POST("/transactions", transactionHandler.Create)
	userRoutes.GET("/transactions", transactionHandler.ListMine)
	userRoutes.GET("/summary", statsHandler.MySummary)

	// Admin-scoped routes: system-wide views with arbitrary filters
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(middleware.RoleRequired(models.RoleAdmin))
	adminRoutes.GET("/transactions", adminHandler.ListTransactions)
	adminRoutes.GET("/summary", adminHandler.SystemSummary)
	adminRoutes.GET("/users", adminHandler.ListUsers)

	log.Infof("Starting Fintrack server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
