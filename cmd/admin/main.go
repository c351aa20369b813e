package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tokokita/tokokita-admin-service/internal/clients"
	"github.com/tokokita/tokokita-admin-service/internal/config"
	"github.com/tokokita/tokokita-admin-service/internal/events"
	"github.com/tokokita/tokokita-admin-service/internal/handlers"
	"github.com/tokokita/tokokita-admin-service/internal/repository"
	"github.com/tokokita/tokokita-admin-service/internal/server"
	"github.com/tokokita/tokokita-admin-service/internal/service"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)

	logger.WithFields(logrus.Fields{
		"port":            cfg.Server.Port,
		"backoffice_url":  cfg.Backoffice.BaseURL,
		"order_events":    cfg.Features.EnableOrderEvents,
		"redis_persisted": cfg.Features.EnableDraftPersistence,
	}).Info("Starting tokokita-admin-service")

	var sessions repository.SessionStore
	if cfg.Features.EnableSessionPersistence {
		sessions = repository.NewRedisSessionStore(cfg.Redis, logger.WithField("component", "sessions"))
	} else {
		sessions = repository.NewMemorySessionStore()
	}

	var drafts repository.DraftStore
	if cfg.Features.EnableDraftPersistence {
		drafts = repository.NewRedisDraftStore(cfg.Redis, logger.WithField("component", "drafts"))
	} else {
		drafts = repository.NewMemoryDraftStore()
	}

	var publisher events.Publisher
	if cfg.Features.EnableOrderEvents {
		kafkaPublisher := events.NewKafkaPublisher(cfg.Kafka, logger.WithField("component", "events"))
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	} else {
		publisher = events.NewNoopPublisher()
	}

	api := clients.NewBackoffice(cfg.Backoffice, logger.WithField("component", "backoffice"))

	serviceLogger := logger.WithField("component", "service")
	userService := service.NewUserService(api, serviceLogger)
	customerService := service.NewCustomerService(api, serviceLogger)
	catalogService := service.NewCatalogService(api, serviceLogger)
	stockService := service.NewStockService(api, publisher, serviceLogger)
	orderService := service.NewOrderService(api, serviceLogger)
	composer := service.NewOrderComposer(api, drafts, publisher, serviceLogger)
	dashboardService := service.NewDashboardService(api, serviceLogger)

	h := handlers.NewHandlers(
		sessions,
		api,
		userService,
		customerService,
		catalogService,
		stockService,
		orderService,
		composer,
		dashboardService,
		cfg,
		logger.WithField("component", "handlers"),
	)

	srv := server.New(h, cfg, logger.WithField("component", "server"))

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.WithFields(logrus.Fields{"error": err.Error()}).Fatal("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithFields(logrus.Fields{"error": err.Error()}).Error("Server forced to shutdown")
	}

	logger.Info("Server exited")
}

func newLogger(level string) *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)

	return logger.WithField("service", "tokokita-admin-service")
}
