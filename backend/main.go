package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"camp-portal/backend/catalog"
	"camp-portal/backend/config"
	"camp-portal/backend/metrics"
	"camp-portal/backend/middleware"
	"camp-portal/backend/routes"
	"camp-portal/backend/session"
	"camp-portal/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(utils.LoggerConfig{
		Format:       cfg.LogFormat,
		EnableColors: !cfg.IsProduction(),
	})
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		logger.Fatal("Error initializing database", zap.Error(err))
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatal("Error loading catalog", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var denylist session.Denylist
	if cfg.RedisAddr != "" {
		d, rdb, err := session.NewRedisDenylist(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Fatal("Error connecting to redis", zap.Error(err))
		}
		defer func() { _ = rdb.Close() }()
		denylist = d
	} else {
		logger.Warn("REDIS_ADDR is empty, revoked tokens are kept in memory")
		denylist = session.NewMemoryDenylist()
	}

	m := metrics.New()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "camp-portal",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	app.Use(middleware.LoggingMiddleware(logger, m))

	// Setup routes
	routes.SetupRoutes(app, db, cfg, routes.Deps{
		Log:      logger,
		Catalog:  cat,
		Denylist: denylist,
		Metrics:  m,
	})

	go func() {
		<-ctx.Done()
		logger.Info("Shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error("Shutdown failed", zap.Error(err))
		}
	}()

	// Start server
	logger.Info("Starting server", zap.String("port", cfg.ServerPort), zap.String("env", cfg.Env))
	if err := app.Listen(":" + cfg.ServerPort); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
