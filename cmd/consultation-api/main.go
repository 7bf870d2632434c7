package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/noah-isme/exec-consultation-api/api/swagger"
	"github.com/noah-isme/exec-consultation-api/internal/handler"
	"github.com/noah-isme/exec-consultation-api/internal/repository"
	"github.com/noah-isme/exec-consultation-api/internal/router"
	"github.com/noah-isme/exec-consultation-api/internal/service"
	"github.com/noah-isme/exec-consultation-api/internal/validation"
	"github.com/noah-isme/exec-consultation-api/pkg/config"
	"github.com/noah-isme/exec-consultation-api/pkg/jobs"
	"github.com/noah-isme/exec-consultation-api/pkg/logger"
	"github.com/noah-isme/exec-consultation-api/pkg/pubsub"
)

// @title Executive Consultation API
// @version 1.0.0
// @description Consultation form intake and administrative review
// @BasePath /api
// @schemes http https

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := run(cfg, logr); err != nil {
		logr.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, logr *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := repository.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logr.Warn("store close failed", zap.Error(err))
		}
	}()
	logr.Info("store connected", zap.String("driver", store.Driver))

	metrics := service.NewMetricsService()
	validate := validation.New()

	notifier, stopNotifications, err := startNotifications(ctx, cfg, metrics, logr)
	if err != nil {
		return err
	}
	// Deferred after the store close so it runs first.
	defer stopNotifications()

	consultations := service.NewConsultationService(store.Consultations, validate, notifier, metrics, logr)
	statusChecks := service.NewStatusCheckService(store.StatusChecks, validate, metrics, logr)

	engine := router.New(cfg, logr, metrics, router.Handlers{
		Consultations: handler.NewConsultationHandler(consultations),
		StatusChecks:  handler.NewStatusCheckHandler(statusChecks),
		System:        handler.NewSystemHandler(metrics, store),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env), zap.String("prefix", cfg.APIPrefix))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		logr.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logr.Info("server stopped")
	return nil
}

// startNotifications wires the Redis publisher behind a worker queue. A nil notifier is returned when disabled.
func startNotifications(ctx context.Context, cfg *config.Config, metrics *service.MetricsService, logr *zap.Logger) (*service.NotificationService, func(), error) {
	if !cfg.Notifications.Enabled {
		logr.Info("submission notifications disabled")
		return nil, func() {}, nil
	}

	client, err := pubsub.NewRedis(cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	publisher := pubsub.NewRedisPublisher(client, cfg.Notifications.Channel)
	notifier := service.NewNotificationService(publisher, metrics, logr)

	queue := jobs.NewQueue("notifications", notifier.Handle, jobs.QueueConfig{
		Workers:    cfg.Notifications.Workers,
		MaxRetries: cfg.Notifications.MaxRetries,
		RetryDelay: cfg.Notifications.RetryDelay,
		OnGiveUp:   notifier.GiveUp,
		Logger:     logr,
	})
	// Outlive the signal so requests still draining during shutdown can enqueue.
	queue.Start(context.WithoutCancel(ctx))
	notifier.AttachQueue(queue)
	logr.Info("submission notifications enabled", zap.String("channel", publisher.Channel()))

	return notifier, func() {
		queue.Stop()
		if err := client.Close(); err != nil {
			logr.Warn("redis close failed", zap.Error(err))
		}
	}, nil
}
