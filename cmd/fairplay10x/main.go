// Package main запускает HTTP-сервис FairPlay10X: события, записи и жеребьёвку составов.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/crypto/bcrypt"

	"fairplay10x/internal/auth"
	"fairplay10x/internal/config"
	httpapi "fairplay10x/internal/http"
	"fairplay10x/internal/repository"
	"fairplay10x/internal/service"
	"fairplay10x/internal/worker"
)

func main() {
	// Контекст для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cfg.DBMigrate {
		if err := repository.Migrate(cfg.DBDSN, logger); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
	}

	// Подключение к БД
	db, err := repository.NewPostgres(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("failed to init postgres: %v", err)
	}
	defer db.Pool.Close()

	rdb, err := repository.NewRedisClient(ctx, cfg.RedisAddrs, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("failed to init redis: %v", err)
	}
	defer rdb.Close()

	// 1. Репозитории
	userRepo := repository.NewUserRepo(db)
	playerRepo := repository.NewPlayerRepo(db)
	eventRepo := repository.NewEventRepo(db)
	signupRepo := repository.NewSignupRepo(db)
	assignmentRepo := repository.NewAssignmentRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)
	draftStore := repository.NewDraftStore(rdb, cfg.DraftTTL)

	// 2. Менеджер транзакций
	txManager := repository.NewTransactionManager(db)

	// 3. Сервисы
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	authService := service.NewAuthService(userRepo, tokens, bcrypt.DefaultCost)
	userService := service.NewUserService(userRepo, playerRepo)
	playerService := service.NewPlayerService(playerRepo)
	eventService := service.NewEventService(eventRepo)
	signupService := service.NewSignupService(txManager, signupRepo, eventRepo, playerRepo)
	drawService := service.NewDrawService(txManager, eventRepo, signupRepo, assignmentRepo, userRepo, notificationRepo, draftStore)
	dashboardService := service.NewDashboardService(eventRepo, signupRepo, userRepo, playerRepo)
	notificationService := service.NewNotificationService(txManager, notificationRepo, service.NewLogNotifier(logger), logger)

	// 4. Фоновые задачи
	scheduler, err := worker.NewScheduler(eventService, notificationService, worker.Config{
		EventSweepInterval:    cfg.EventSweepInterval,
		NotificationInterval:  cfg.NotificationInterval,
		NotificationBatchSize: cfg.NotificationBatchSize,
	}, logger)
	if err != nil {
		log.Fatalf("failed to init scheduler: %v", err)
	}
	if err := scheduler.Start(ctx); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}

	// 5. HTTP-обработчик
	handler := httpapi.NewHandler(httpapi.Services{
		Auth:      authService,
		Users:     userService,
		Players:   playerService,
		Events:    eventService,
		Signups:   signupService,
		Draws:     drawService,
		Dashboard: dashboardService,
	}, tokens, cfg.AllowedOrigins, logger)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.Router(),
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	cancel()
	if err := scheduler.Shutdown(); err != nil {
		logger.Error("scheduler shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
