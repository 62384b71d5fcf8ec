package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/gym-service/internal/api/http"
	"github.com/spec-kit/gym-service/internal/api/http/handlers"
	"github.com/spec-kit/gym-service/internal/auth"
	"github.com/spec-kit/gym-service/internal/config"
	"github.com/spec-kit/gym-service/internal/events"
	"github.com/spec-kit/gym-service/internal/observability"
	"github.com/spec-kit/gym-service/internal/persistence"
	"github.com/spec-kit/gym-service/internal/repository"
	"github.com/spec-kit/gym-service/internal/service"
	"github.com/spec-kit/gym-service/internal/worker"
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
	memberRepo := repository.NewMemberRepository(pool)
	trainerRepo := repository.NewTrainerRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	progressRepo := repository.NewProgressRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	workoutRepo := repository.NewWorkoutRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg.Auth, userRepo, dispatcher)
	userService := service.NewUserService(userRepo)
	memberService := service.NewMemberService(memberRepo, userRepo)
	trainerService := service.NewTrainerService(trainerRepo, userRepo)
	classService := service.NewClassService(classRepo, trainerRepo)
	bookingService := service.NewBookingService(bookingRepo, classRepo, memberRepo, dispatcher)
	progressService := service.NewProgressService(progressRepo, memberRepo)
	paymentService := service.NewPaymentService(paymentRepo, bookingRepo, dispatcher)
	contactService := service.NewContactService(contactRepo, dispatcher)
	workoutService := service.NewWorkoutService(workoutRepo)
	dashboardService := service.NewDashboardService(dashboardRepo, redis.Handle(), logger)

	notificationService := service.NewNotificationService(
		dispatcher, logger, cfg.Notification,
		memberRepo, classRepo, bookingRepo, paymentRepo,
	)
	worker.StartNotificationWorker(notificationService, logger)

	metrics := observability.NewMetrics()
	gate := auth.NewGate(authService.Resolver(), logger)
	policy := httptransport.RoutePolicy()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, cfg, logger, metrics, gate, policy)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Hello:         handlers.NewHelloHandler(cfg.App.Name, metrics),
		Auth:          handlers.NewAuthHandler(authService),
		Users:         handlers.NewUsersHandler(userService, authService),
		Admins:        handlers.NewAdminsHandler(userService, authService),
		Members:       handlers.NewMembersHandler(memberService),
		Trainers:      handlers.NewTrainersHandler(trainerService),
		Classes:       handlers.NewClassesHandler(classService),
		Bookings:      handlers.NewBookingsHandler(bookingService),
		Progress:      handlers.NewProgressHandler(progressService),
		Payments:      handlers.NewPaymentsHandler(paymentService),
		Contact:       handlers.NewContactHandler(contactService),
		Workouts:      handlers.NewWorkoutsHandler(workoutService),
		Dashboard:     handlers.NewDashboardHandler(dashboardService),
		Notifications: handlers.NewNotificationsHandler(notificationService),
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
