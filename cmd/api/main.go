package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/rental-crm/internal/api/http"
	"github.com/spec-kit/rental-crm/internal/api/http/handlers"
	"github.com/spec-kit/rental-crm/internal/auth"
	"github.com/spec-kit/rental-crm/internal/backup"
	"github.com/spec-kit/rental-crm/internal/config"
	"github.com/spec-kit/rental-crm/internal/events"
	"github.com/spec-kit/rental-crm/internal/observability"
	"github.com/spec-kit/rental-crm/internal/persistence"
	"github.com/spec-kit/rental-crm/internal/repository"
	"github.com/spec-kit/rental-crm/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	customerRepo := repository.NewCustomerRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	vehicleRepo := repository.NewVehicleRepository(pool)
	insuranceRepo := repository.NewVehicleInsuranceRepository(pool)
	invoiceRepo := repository.NewInvoiceRepository(pool)
	rentalRepo := repository.NewRentalRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)
	postRepo := repository.NewPostRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL(), cfg.Auth.RefreshTokenTTL())
	revoked := auth.NewRevocationList(redis.Client, logger)

	dispatcher := events.NewInMemoryDispatcher()
	audit := service.NewAuditService(dispatcher, logger)
	audit.RegisterHandlers()

	authService := service.NewAuthService(service.AuthDependencies{
		AdminRepo:    adminRepo,
		CustomerRepo: customerRepo,
		Tokens:       tokens,
		Revoked:      revoked,
		Dispatcher:   dispatcher,
		Logger:       logger,
	})
	backupService := backup.NewService(pool, cfg.Backup, logger)

	authMiddleware := auth.NewAuthMiddleware(tokens, revoked, logger)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Customers:      handlers.NewCustomersHandler(customerRepo, cfg.Auth.PBKDF2Iterations),
		Admins:         handlers.NewAdminsHandler(adminRepo, cfg.Auth.PBKDF2Iterations),
		Vehicles:       handlers.NewVehiclesHandler(vehicleRepo),
		Insurances:     handlers.NewInsurancesHandler(insuranceRepo),
		Invoices:       handlers.NewInvoicesHandler(invoiceRepo),
		Rentals:        handlers.NewRentalsHandler(rentalRepo, dispatcher),
		Payments:       handlers.NewPaymentsHandler(paymentRepo, dispatcher),
		Comments:       handlers.NewCommentsHandler(commentRepo),
		Posts:          handlers.NewPostsHandler(postRepo),
		Backup:         handlers.NewBackupHandler(backupService, dispatcher),
		Stats:          handlers.NewStatsHandler(statsRepo),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
