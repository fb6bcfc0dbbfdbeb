package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	config "github.com/roamstone/esim-portal/configs"
	"github.com/roamstone/esim-portal/internal/application/services"
	"github.com/roamstone/esim-portal/internal/core/ports"
	"github.com/roamstone/esim-portal/internal/infrastructure/cache"
	"github.com/roamstone/esim-portal/internal/infrastructure/db"
	"github.com/roamstone/esim-portal/internal/infrastructure/email"
	"github.com/roamstone/esim-portal/internal/infrastructure/fallback"
	"github.com/roamstone/esim-portal/internal/infrastructure/health"
	"github.com/roamstone/esim-portal/internal/infrastructure/httpserver"
	"github.com/roamstone/esim-portal/internal/infrastructure/partnerapi"
	infraRedis "github.com/roamstone/esim-portal/internal/infrastructure/redis"
	"github.com/roamstone/esim-portal/internal/infrastructure/repositories"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting eSIM portal...")

	// Initialize database (apply pool settings from config)
	database, err := db.NewDatabaseWithConfig(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	logger.Info("Connected to database successfully")

	// Run migrations
	if err := database.Migrate("./migrations"); err != nil {
		logger.Warn("Failed to run migrations:", err)
	}

	// Pick the cache backend: Redis when configured, in-process otherwise.
	var (
		catalogCache   ports.Cache
		healthCheckers = []ports.HealthChecker{health.NewDBHealthChecker(database)}
	)
	if cfg.Redis.Enabled {
		redisClient, err := infraRedis.NewRedisClient(&cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis:", err)
		}
		defer redisClient.Close()
		catalogCache = infraRedis.NewRedisCache(redisClient, cfg.Cache.KeyPrefix)
		healthCheckers = append(healthCheckers, health.NewRedisHealthChecker(redisClient))
		logger.Info("Connected to Redis successfully")
	} else {
		catalogCache = cache.NewMemoryCache()
		logger.Info("Using in-process catalog cache")
	}

	// Initialize repositories
	countryRepo := repositories.NewCountryRepository(database, logger)
	packageRepo := repositories.NewPackageRepository(database, logger)
	comboRepo := repositories.NewComboPackageRepository(database, logger)
	regionRepo := repositories.NewRegionRepository(database, logger)
	pageRepo := repositories.NewPageRepository(database, logger)

	// Wire services
	catalogService := services.NewCatalogService(services.CatalogDeps{
		Countries: countryRepo,
		Packages:  packageRepo,
		Combos:    comboRepo,
		Regions:   regionRepo,
		Pages:     pageRepo,
		Cache:     catalogCache,
		Fallback:  fallback.NewStaticProvider(),
	}, services.CatalogServiceConfig{
		TTL:          cfg.Cache.TTL,
		QueryTimeout: cfg.Cache.QueryTimeout,
	}, logger)

	adminService := services.NewCatalogAdminService(services.CatalogAdminDeps{
		Countries:   countryRepo,
		Packages:    packageRepo,
		Combos:      comboRepo,
		Regions:     regionRepo,
		Pages:       pageRepo,
		Invalidator: catalogService,
	}, logger)

	partnerClient := partnerapi.NewClient(&partnerapi.ClientConfig{
		BaseURL:     cfg.Partner.BaseURL,
		PartnerName: cfg.Partner.PartnerName,
		PartnerKey:  cfg.Partner.PartnerKey,
		Timeout:     cfg.Partner.Timeout,
	}, logger)
	subscriberService := services.NewSubscriberService(partnerClient, services.SubscriberServiceConfig{
		DemoFill: cfg.Partner.DemoFill,
	}, logger)

	emailService, err := email.NewEmailService(&email.EmailConfig{
		SendGridAPIKey: cfg.Email.SendGridAPIKey,
		FromEmail:      cfg.Email.FromEmail,
		FromName:       cfg.Email.FromName,
		ContactInbox:   cfg.Email.ContactInbox,
		CompanyName:    cfg.Email.CompanyName,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize email service:", err)
	}
	contactService := services.NewContactService(emailService, logger)

	// Create server configuration
	serverConfig := &httpserver.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		TLSCertFile:    cfg.Server.TLSCertFile,
		TLSKeyFile:     cfg.Server.TLSKeyFile,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Environment:    cfg.Server.Environment,
		AdminAPIKey:    cfg.Admin.APIKey,
	}

	server := httpserver.NewServer(serverConfig, logger, httpserver.ServerDeps{
		CatalogService:    catalogService,
		AdminService:      adminService,
		SubscriberService: subscriberService,
		ContactService:    contactService,
		HealthCheckers:    healthCheckers,
	})

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
