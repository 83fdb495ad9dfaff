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
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"payeasy.backend/internal/config"
	"payeasy.backend/internal/infrastructure/gateway"
	"payeasy.backend/internal/infrastructure/jobs"
	"payeasy.backend/internal/infrastructure/repositories"
	"payeasy.backend/internal/interfaces/http/handlers"
	"payeasy.backend/internal/interfaces/http/middleware"
	"payeasy.backend/internal/usecases"
	"payeasy.backend/pkg/jwt"
	"payeasy.backend/pkg/logger"
	"payeasy.backend/pkg/redis"
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
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
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
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
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
	merchantRepo := repositories.NewMerchantRepository(db)
	productRepo := repositories.NewProductRepository(db)
	paymentLinkRepo := repositories.NewPaymentLinkRepository(db)
	saleRepo := repositories.NewSaleRepository(db)
	withdrawalRepo := repositories.NewWithdrawalRepository(db)
	ledgerRepo := repositories.NewLedgerRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Notifications land in the database and mirror onto Redis pub/sub
	// for the dashboard feed.
	notifier := usecases.NewNotifier(notificationRepo, usecases.PublisherFunc(redis.Publish))

	// Initialize wallet gateway. The simulator is the default wiring;
	// it settles every charge and payout after a fixed delay.
	var charger gateway.Charger
	var simulator *gateway.Simulator
	if cfg.Gateway.Simulate {
		simulator = gateway.NewSimulator(cfg.Gateway.SimulatedDelay)
		charger = simulator
		logger.Info(context.Background(), "Gateway simulator enabled",
			zap.Duration("settle_delay", cfg.Gateway.SimulatedDelay))
	} else {
		charger = gateway.NewClient(cfg.Gateway)
	}

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, merchantRepo, uow, jwtService)
	productUsecase := usecases.NewProductUsecase(productRepo, merchantRepo)
	paymentLinkUsecase := usecases.NewPaymentLinkUsecase(paymentLinkRepo, productRepo, merchantRepo, cfg.Checkout.BaseURL)
	checkoutUsecase := usecases.NewCheckoutUsecase(productRepo, merchantRepo, paymentLinkRepo, saleRepo, charger)
	saleUsecase := usecases.NewSaleUsecase(saleRepo, merchantRepo, ledgerRepo, uow, notifier)
	withdrawalUsecase := usecases.NewWithdrawalUsecase(withdrawalRepo, merchantRepo, ledgerRepo, uow, charger, notifier)
	merchantUsecase := usecases.NewMerchantUsecase(merchantRepo, saleRepo, withdrawalRepo, ledgerRepo, notifier)
	notificationUsecase := usecases.NewNotificationUsecase(notificationRepo, merchantRepo)
	adminUsecase := usecases.NewAdminUsecase(productRepo, merchantRepo, notifier)

	// Simulated settlements flow through the same lifecycle paths the
	// real gateway webhook uses.
	if simulator != nil {
		simulator.OnChargeSettled(func(ctx context.Context, referenceID uuid.UUID, approved bool) {
			if err := saleUsecase.HandleSettlement(ctx, referenceID, approved); err != nil {
				logger.Error(ctx, "simulated charge settlement failed",
					zap.String("sale_id", referenceID.String()), zap.Error(err))
			}
		})
		simulator.OnPayoutSettled(func(ctx context.Context, referenceID uuid.UUID, approved bool) {
			settle := withdrawalUsecase.Complete
			if !approved {
				settle = withdrawalUsecase.Reject
			}
			if err := settle(ctx, referenceID); err != nil {
				logger.Error(ctx, "simulated payout settlement failed",
					zap.String("withdrawal_id", referenceID.String()), zap.Error(err))
			}
		})
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	productHandler := handlers.NewProductHandler(productUsecase)
	paymentLinkHandler := handlers.NewPaymentLinkHandler(paymentLinkUsecase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUsecase)
	saleHandler := handlers.NewSaleHandler(saleUsecase)
	withdrawalHandler := handlers.NewWithdrawalHandler(withdrawalUsecase)
	merchantHandler := handlers.NewMerchantHandler(merchantUsecase)
	notificationHandler := handlers.NewNotificationHandler(notificationUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase, merchantUsecase, withdrawalUsecase)
	webhookHandler := handlers.NewWebhookHandler(saleUsecase, withdrawalUsecase)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reviewJob := jobs.NewProductReviewJob(productRepo, notificationRepo, cfg.Review.AutoApproveDelay, cfg.Review.SweepInterval)
	go reviewJob.Start(ctx)

	confirmationJob := jobs.NewSaleConfirmationJob(saleRepo, saleUsecase, cfg.Gateway.SimulatedDelay, cfg.Review.SweepInterval)
	go confirmationJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		productHandler:      productHandler,
		paymentLinkHandler:  paymentLinkHandler,
		checkoutHandler:     checkoutHandler,
		saleHandler:         saleHandler,
		withdrawalHandler:   withdrawalHandler,
		merchantHandler:     merchantHandler,
		notificationHandler: notificationHandler,
		adminHandler:        adminHandler,
		webhookHandler:      webhookHandler,
		authMiddleware:      middleware.AuthMiddleware(jwtService),
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		reviewJob.Stop()
		confirmationJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 PayEasy Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
