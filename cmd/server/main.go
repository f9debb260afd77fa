package main

import (
	"context"

	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rushapp/rush-bot/internal/app"
	"github.com/rushapp/rush-bot/internal/app/handlers"
	"github.com/rushapp/rush-bot/internal/config"
	"github.com/rushapp/rush-bot/internal/lib/logger"
	"github.com/rushapp/rush-bot/internal/lib/logger/handlers/urllog"
	"github.com/rushapp/rush-bot/internal/service"
	"github.com/rushapp/rush-bot/internal/storage"
)

func main() {
	// .env удобен локально, на хостинге переменные приходят из окружения
	_ = godotenv.Load()

	// загрузка конфигурации
	cfg := config.MustLoad()

	// инициализация логгера, зависит от настройки окружения
	log := logger.SetupLogger(cfg.Env)
	log.Info("starting app", slog.String("env", cfg.Env))

	ctx := context.Background()

	// загружаем объект приложения: клиенты Firestore, Storage и Bot API
	application, err := app.NewApp(ctx, log, cfg)
	if err != nil {
		log.Error("failed to initialize app", slog.Any("error", err))
		panic(errors.Wrap(err, "failed to initialize app"))
	}
	defer application.Close()

	router := chi.NewRouter()
	// настройка middleware
	router.Use(middleware.RequestID)
	router.Use(urllog.CustomLoggerMiddleware(log))
	router.Use(middleware.Recoverer)

	// реализация слоев по работе с хранилищами
	userRepo := storage.NewUserRepository(application.Firestore)
	blobRepo := storage.NewBlobRepository(application.Bucket, cfg.Firebase.SignedURLTTL)

	avatarService := service.NewAvatarService(application.Logger, application.Telegram, blobRepo)
	onboardingService := service.NewOnboardingService(application.Logger, userRepo, avatarService)
	updateService := service.NewUpdateService(application.Logger, onboardingService, application.Telegram, cfg.Telegram.WebAppURL)

	// эндпоинт для проверки живости
	router.Get("/", handlers.HealthHandler(application.Logger))
	// эндпоинт вебхука Telegram
	router.Post("/", handlers.WebhookHandler(application.Logger, updateService))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", slog.Any("error", err))
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	stopSign := <-stop
	log.Info("received shutdown signal", slog.String("signal", stopSign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", slog.Any("error", err))
	}
	log.Info("server gracefully stopped")
}
