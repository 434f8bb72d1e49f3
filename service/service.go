package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bedaie/bedaie-web/internal/auth"
	"github.com/bedaie/bedaie-web/internal/email"
	"github.com/bedaie/bedaie-web/internal/handlers"
	"github.com/bedaie/bedaie-web/internal/jobs"
	"github.com/bedaie/bedaie-web/internal/middleware"
	"github.com/bedaie/bedaie-web/internal/session"
	"github.com/bedaie/bedaie-web/storage"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Service struct {
	storage                  *storage.Storage
	config                   *Config
	sessions                 *session.Manager
	emailService             *email.Service
	shellHandler             *handlers.ShellHandler
	recoveryHandler          *handlers.RecoveryHandler
	authHandler              *handlers.AuthHandler
	adminEmailsHandler       *handlers.AdminEmailsHandler
	abandonedCartDetector    *jobs.AbandonedCartDetector
	abandonedCartEmailSender *jobs.AbandonedCartEmailSender
}

func New(storage *storage.Storage, config *Config) (*Service, error) {
	sender, err := email.NewSender(config.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email sender: %w", err)
	}
	return NewWithSender(storage, config, sender), nil
}

// NewWithSender builds the service around an explicit mail sender
func NewWithSender(storage *storage.Storage, config *Config, sender email.Sender) *Service {
	emailService := email.NewService(sender)

	site := auth.Site{
		BaseURL:   config.BaseURL,
		AppName:   config.AppName,
		AssetsURL: config.AssetsURL,
	}

	sessions := session.NewManager(config.SessionSecret, config.IsProduction())

	return &Service{
		storage:                  storage,
		config:                   config,
		sessions:                 sessions,
		emailService:             emailService,
		shellHandler:             handlers.NewShellHandler(site),
		recoveryHandler:          handlers.NewRecoveryHandler(storage, site),
		authHandler:              handlers.NewAuthHandler(sessions),
		adminEmailsHandler:       handlers.NewAdminEmailsHandler(config.BaseURL),
		abandonedCartDetector:    jobs.NewAbandonedCartDetector(storage),
		abandonedCartEmailSender: jobs.NewAbandonedCartEmailSender(storage, emailService, config.BaseURL),
	}
}

// StartJobs starts the background jobs when enabled
func (s *Service) StartJobs(ctx context.Context) {
	if !s.config.JobsEnabled {
		slog.Info("background jobs disabled")
		return
	}
	s.abandonedCartDetector.Start(ctx)
	s.abandonedCartEmailSender.Start(ctx)
}

// StopJobs stops the background jobs
func (s *Service) StopJobs() {
	if !s.config.JobsEnabled {
		return
	}
	s.abandonedCartDetector.Stop()
	s.abandonedCartEmailSender.Stop()
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.RequestLogger())
	// Inside the logger so recovered panics are logged as 500s
	e.Use(echomw.Recover())
	e.Use(middleware.SecurityHeaders())

	// Health check - no session or CSRF
	e.GET("/health", s.handleHealth)

	app := e.Group("")
	app.Use(middleware.CSRF(s.config.IsProduction()))
	app.Use(middleware.LoadSession(s.sessions, s.storage.Queries))

	// Client application shells; everything below the mount path is routed client-side
	app.GET("/affiliate", s.shellHandler.HandleAffiliate)
	app.GET("/affiliate/*", s.shellHandler.HandleAffiliate)
	app.GET("/funnels/builder", s.shellHandler.HandleFunnelBuilder)
	app.GET("/funnels/builder/*", s.shellHandler.HandleFunnelBuilder)
	app.GET("/pos", s.shellHandler.HandlePOS)
	app.GET("/pos/*", s.shellHandler.HandlePOS)

	app.POST("/logout", s.authHandler.HandleLogout)

	// Cart recovery links from abandonment emails
	app.GET("/cart/recover/:token", s.recoveryHandler.HandleRecoverCart)
	app.POST("/cart/recover/:token", s.recoveryHandler.HandleConfirmRecovery)
	app.GET("/cart/recover/:token/qr.png", s.recoveryHandler.HandleRecoveryQRCode)

	admin := app.Group("/admin", auth.RequireRole(auth.RoleAdmin))
	admin.GET("/emails/cart-abandonment/preview", s.adminEmailsHandler.HandleCartAbandonmentPreview)
}

func (s *Service) handleHealth(c echo.Context) error {
	if err := s.storage.DB().PingContext(c.Request().Context()); err != nil {
		slog.Error("health check database ping failed", "error", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":   "unavailable",
			"database": "disconnected",
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":      "ok",
		"environment": s.config.Environment,
		"database":    "connected",
	})
}
