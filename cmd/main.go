package main

import (
	"context"
	"os"
	"time"

	"unika_storefront/config"
	"unika_storefront/internal/clients"
	"unika_storefront/internal/delivery"
	"unika_storefront/internal/middleware"
	"unika_storefront/internal/repository"
	"unika_storefront/internal/usecase"
	"unika_storefront/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.LoadConfig()
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
		logger.Warnf("Invalid LOG_LEVEL '%s', using default: %s", cfg.LogLevel, logLevel.String())
	}
	logger.SetLevel(logLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.Info("Starting Unika Storefront...")
	logger.Infof("Log level set to: %s", logLevel.String())

	clientTimeout := time.Duration(cfg.ClientTimeout) * time.Second

	// --- External Clients ---
	intakeClient := clients.NewIntakeHTTPClient(cfg.OrderIntakeURL, clientTimeout, logger)
	logger.Infof("Order Intake Client initialized for target: %s", cfg.OrderIntakeURL)

	inventoryClient := clients.NewInventoryHTTPClient(cfg.InventoryURL, clientTimeout, logger)
	logger.Infof("Inventory Client initialized for target: %s", cfg.InventoryURL)

	var designClient clients.DesignClient
	if cfg.GeminiAPIKey != "" {
		designClient, err = clients.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.DesignModel, cfg.StylistModel, logger)
		if err != nil {
			logger.Errorf("Failed to initialize Gemini client, AI features disabled: %v", err)
			designClient = nil
		} else {
			logger.Info("Gemini Client initialized.")
		}
	} else {
		logger.Warn("GEMINI_API_KEY not set, AI designer and stylist routes disabled.")
	}

	// --- Dependency Injection ---
	catalogRepo := repository.NewMemoryCatalogRepository(repository.DefaultProducts(), logger)
	cartRepo := repository.NewMemoryCartRepository(logger)
	sessionRepo := repository.NewMemorySessionRepository(logger)
	logger.Info("Repositories initialized.")

	pricing := usecase.NewPricingPolicy(cfg.ShippingFeeLocal, cfg.ShippingFeeRemote)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, inventoryClient, logger)
	cartUseCase := usecase.NewCartUseCase(cartRepo, logger)
	sessionUseCase := usecase.NewSessionUseCase(sessionRepo, logger)
	checkoutUseCase := usecase.NewCheckoutUseCase(cartRepo, sessionRepo, pricing, intakeClient, logger)
	trackingUseCase := usecase.NewTrackingUseCase(intakeClient, logger)
	logger.Info("Use cases initialized.")

	// --- HTTP Server ---
	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	delivery.NewSessionHandler(sessionUseCase, logger).RegisterRoutes(router)
	delivery.NewCatalogHandler(catalogUseCase, logger).RegisterRoutes(router)
	delivery.NewCartHandler(cartUseCase, catalogUseCase, sessionUseCase, pricing, cfg.CustomDesignPrice, logger).RegisterRoutes(router)
	delivery.NewCheckoutHandler(checkoutUseCase, logger).RegisterRoutes(router)
	delivery.NewTrackingHandler(trackingUseCase, logger).RegisterRoutes(router)

	if designClient != nil {
		designerUseCase := usecase.NewDesignerUseCase(designClient, intakeClient, cfg.CustomDesignPrice, logger)
		delivery.NewDesignerHandler(designerUseCase, logger).RegisterRoutes(router)
	}

	// The back office needs Postgres for admin credentials. Without a
	// database the storefront still runs, only the admin routes are off.
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			logger.Fatalf("FATAL: Could not connect to the database: %v", err)
		}
		defer database.Close()
		logger.Info("Database connection established.")

		if err := repository.RunMigrations(database, cfg.MigrationsPath); err != nil {
			logger.Fatalf("FATAL: Database migration failed: %v", err)
		}
		logger.Info("Database migrations applied.")

		adminRepo := repository.NewPostgresAdminRepository(database, logger)
		adminUseCase := usecase.NewAdminUseCase(
			adminRepo,
			inventoryClient,
			intakeClient,
			catalogUseCase,
			time.Duration(cfg.AdminTokenTTL)*time.Minute,
			logger,
		)
		if cfg.AdminSeedID != "" && cfg.AdminSeedPassword != "" {
			if err := adminUseCase.SeedAdmin(cfg.AdminSeedID, cfg.AdminSeedPassword); err != nil {
				logger.Errorf("Failed to seed admin account: %v", err)
			}
		}
		delivery.NewAdminHandler(adminUseCase, logger).RegisterRoutes(router)
		logger.Info("Admin routes registered.")
	} else {
		logger.Warn("DATABASE_URL not set, admin routes disabled.")
	}
	logger.Info("Routes registered.")

	// Refresh the catalog in the background so startup never blocks on the
	// remote store backend.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), clientTimeout)
		defer cancel()
		catalogUseCase.Sync(ctx)
	}()

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		logger.Errorf("Failed to start server on port %s: %v", cfg.Port, err)
		os.Exit(1)
	}
}
