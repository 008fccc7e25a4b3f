package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/venue-service/internal/api/http"
	"github.com/spec-kit/venue-service/internal/api/http/handlers"
	"github.com/spec-kit/venue-service/internal/auth"
	"github.com/spec-kit/venue-service/internal/config"
	"github.com/spec-kit/venue-service/internal/events"
	"github.com/spec-kit/venue-service/internal/identity"
	"github.com/spec-kit/venue-service/internal/observability"
	"github.com/spec-kit/venue-service/internal/persistence"
	"github.com/spec-kit/venue-service/internal/repository"
	"github.com/spec-kit/venue-service/internal/service"
	"github.com/spec-kit/venue-service/internal/storage"
	"github.com/spec-kit/venue-service/internal/worker"
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
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()
	cache := persistence.NewEntityCache(redis, cfg.Redis.CacheTTL, logger)

	media, err := storage.NewS3Media(ctx, cfg.Media)
	if err != nil {
		logger.Fatal("failed to init media storage", zap.Error(err))
	}

	pool := pg.PoolHandle()
	identityStore := identity.NewPostgresStore(pool, cfg.Auth.BcryptCost)
	profileRepo := repository.NewProfileRepository(pool)
	venueRepo := repository.NewVenueRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	productRepo := repository.NewProductRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		IdentityStore: identityStore,
		ProfileRepo:   profileRepo,
	})
	provisioningService := service.NewProvisioningService(service.ProvisioningDependencies{
		IdentityStore: identityStore,
		ProfileRepo:   profileRepo,
		Cache:         cache,
		Dispatcher:    dispatcher,
		Logger:        logger,
	})
	assignmentService := service.NewAssignmentService(service.AssignmentDependencies{
		ProfileRepo: profileRepo,
		VenueRepo:   venueRepo,
		Cache:       cache,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	venueService := service.NewVenueService(service.VenueDependencies{
		VenueRepo:   venueRepo,
		ProfileRepo: profileRepo,
		Cache:       cache,
		Logger:      logger,
	})
	menuService := service.NewMenuService(service.MenuDependencies{
		VenueRepo:    venueRepo,
		CategoryRepo: categoryRepo,
		ProductRepo:  productRepo,
		Media:        media,
		Cache:        cache,
		Logger:       logger,
	})

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), identityStore, profileRepo)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.Env == "production",
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Staff:          handlers.NewStaffHandler(provisioningService, assignmentService),
		Venues:         handlers.NewVenuesHandler(venueService),
		Menu:           handlers.NewMenuHandler(menuService),
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
