package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ecoscrap.backend/internal/config"
	"ecoscrap.backend/internal/infrastructure/jobs"
	"ecoscrap.backend/internal/infrastructure/repositories"
	"ecoscrap.backend/internal/interfaces/http/handlers"
	"ecoscrap.backend/internal/interfaces/http/middleware"
	"ecoscrap.backend/internal/usecases"
	"ecoscrap.backend/pkg/jwt"
	"ecoscrap.backend/pkg/logger"
	"ecoscrap.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	pickupRepo := repositories.NewPickupRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	rateRepo := repositories.NewRateRepository(db)
	tipRepo := repositories.NewTipRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, sessionStore)
	productUsecase := usecases.NewProductUsecase(productRepo, userRepo)
	pickupUsecase := usecases.NewPickupUsecase(pickupRepo, rateRepo, userRepo, cfg.Pricing)
	transactionUsecase := usecases.NewTransactionUsecase(transactionRepo, productRepo, userRepo, uow, cfg.Pricing)
	contentUsecase := usecases.NewContentUsecase(rateRepo, tipRepo)
	adminUsecase := usecases.NewAdminUsecase(userRepo)
	dashboardUsecase := usecases.NewDashboardUsecase(userRepo, productRepo, pickupRepo, transactionRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	productHandler := handlers.NewProductHandler(productUsecase)
	pickupHandler := handlers.NewPickupHandler(pickupUsecase)
	transactionHandler := handlers.NewTransactionHandler(transactionUsecase)
	contentHandler := handlers.NewContentHandler(contentUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase, productUsecase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUsecase)

	// Auth middleware chain
	authMiddleware := middleware.AuthMiddleware(jwtService)
	requireActive := middleware.RequireActive(userRepo)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewPickupExpiryJob(pickupRepo, cfg.Jobs.PickupExpiryGrace, cfg.Jobs.PickupExpiryInterval)
	go expiryJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:        authHandler,
		productHandler:     productHandler,
		pickupHandler:      pickupHandler,
		transactionHandler: transactionHandler,
		contentHandler:     contentHandler,
		adminHandler:       adminHandler,
		dashboardHandler:   dashboardHandler,
		authMiddleware:     authMiddleware,
		requireActive:      requireActive,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		expiryJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 EcoScrap Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
