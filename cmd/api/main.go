package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/class-booking-service/internal/api/http/handlers"
	"github.com/spec-kit/class-booking-service/internal/auth"
	"github.com/spec-kit/class-booking-service/internal/cache"
	"github.com/spec-kit/class-booking-service/internal/config"
	"github.com/spec-kit/class-booking-service/internal/events"
	"github.com/spec-kit/class-booking-service/internal/observability"
	"github.com/spec-kit/class-booking-service/internal/persistence"
	"github.com/spec-kit/class-booking-service/internal/repository"
	"github.com/spec-kit/class-booking-service/internal/service"
	"github.com/spec-kit/class-booking-service/internal/worker"

	httptransport "github.com/spec-kit/class-booking-service/internal/api/http"
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

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	popularCache := cache.NewPopularClassCache(redis, cfg.Cache.PopularTTL(), logger)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authMiddleware := auth.NewAuthMiddleware(tokens)

	directoryService := service.NewDirectoryService(userRepo)
	catalogService := service.NewCatalogService(classRepo, popularCache, dispatcher)
	bookingService := service.NewBookingService(bookingRepo, classRepo, dispatcher)
	paymentService := service.NewPaymentService(cfg.Payment)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		AppName:        cfg.App.Name,
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(tokens),
		Users:          handlers.NewUsersHandler(directoryService),
		Classes:        handlers.NewClassesHandler(catalogService),
		Bookings:       handlers.NewBookingsHandler(bookingService),
		Payments:       handlers.NewPaymentsHandler(paymentService),
		AuthMiddleware: authMiddleware,
		Directory:      userRepo,
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
