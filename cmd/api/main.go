package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/juninatt/trader-journal/internal/config"
	"github.com/juninatt/trader-journal/internal/database"
	_ "github.com/juninatt/trader-journal/internal/docs" // Import swagger docs
	"github.com/juninatt/trader-journal/internal/handlers"
	"github.com/juninatt/trader-journal/internal/logger"
	"github.com/juninatt/trader-journal/internal/middleware"
	"github.com/juninatt/trader-journal/internal/repository"
	"github.com/juninatt/trader-journal/internal/services"
	"github.com/juninatt/trader-journal/internal/validator"
)

// @title           Trader Journal API
// @version         1.0
// @description     Daily trading journal: trades, snapshots, executed sales and their analysis.

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

	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Errorw("failed to close database", "error", err)
		}
	}()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}

	// Repositories and services
	db := dbManager.DB()
	entryRepo := repository.NewJournalEntryRepository(db)
	tradeRepo := repository.NewTradeRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	auditService := services.NewAuditService(db)
	entryService := services.NewJournalEntryService(entryRepo, auditService)
	tradeService := services.NewTradeService(entryRepo, tradeRepo, assetRepo, auditService)
	assetService := services.NewAssetService(assetRepo, auditService)

	validator.Register()
	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NoRoute())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handlers.RegisterRoutes(router, handlers.Handlers{
		Entries: handlers.NewJournalEntryHandler(entryService),
		Trades:  handlers.NewTradeHandler(tradeService),
		Assets:  handlers.NewAssetHandler(assetService),
		Health:  handlers.NewHealthHandler(db),
	}, middleware.AuthMiddleware(appConfig))

	log.Infof("Starting trader journal API on port %s (%s database)", appConfig.Port, appConfig.DBDriver)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
