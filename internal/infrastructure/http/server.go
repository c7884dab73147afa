package http

import (
	"context"
	"fmt"
	"net/http"

	handlers "github.com/growcrm/outreach-sync/internal/adapter/handler/http"
	"github.com/growcrm/outreach-sync/internal/auth"
	"github.com/growcrm/outreach-sync/internal/config"
	"github.com/growcrm/outreach-sync/internal/infrastructure/database"
	"github.com/growcrm/outreach-sync/internal/usecase"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	config *config.Config
	logger *zap.Logger
	echo   *echo.Echo
	repos  *database.Repositories
	locker usecase.SyncLocker
}

func NewServer(cfg *config.Config, logger *zap.Logger, repos *database.Repositories, locker usecase.SyncLocker) *Server {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	return &Server{
		config: cfg,
		logger: logger,
		echo:   e,
		repos:  repos,
		locker: locker,
	}
}

func (s *Server) Start() error {
	// Setup routes
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	// Wire the sync pipeline
	verifier := auth.NewVerifier(s.config.Service.WebhookSecret, s.logger)
	matcher := usecase.NewContactMatcher(s.repos.Contact, s.logger)
	recorder := usecase.NewActivityRecorder(s.repos.Activity, s.logger)
	syncService := usecase.NewContactSyncService(
		s.repos.Contact,
		matcher,
		recorder,
		s.locker,
		s.config.Service.ForceUpdateBasicFields,
		s.logger,
	)
	batch := usecase.NewBatchCoordinator(syncService, s.logger)
	webhookHandler := handlers.NewWebhookHandler(s.logger, verifier, syncService, batch)

	// Webhook routes
	webhooks := s.echo.Group("/webhooks/outreach")
	webhooks.POST("/connection-accepted", webhookHandler.ConnectionAccepted)
	webhooks.POST("/batch-sync", webhookHandler.BatchSync)
}
