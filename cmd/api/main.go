package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/shipgate/site-api/internal/api/http"
	"github.com/shipgate/site-api/internal/api/http/handlers"
	"github.com/shipgate/site-api/internal/auth"
	"github.com/shipgate/site-api/internal/config"
	"github.com/shipgate/site-api/internal/events"
	"github.com/shipgate/site-api/internal/export"
	"github.com/shipgate/site-api/internal/mailer"
	"github.com/shipgate/site-api/internal/observability"
	"github.com/shipgate/site-api/internal/pocketbase"
	"github.com/shipgate/site-api/internal/service"
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

	store := pocketbase.New(cfg.PocketBase, logger)
	dispatcher := events.NewInMemoryDispatcher(logger)
	mail := mailer.New(cfg.Mail, logger)

	notifications := service.NewNotificationService(dispatcher, mail, logger)
	notifications.RegisterHandlers()

	exporter := export.New(store, logger, cfg.Export)

	intakeService := service.NewIntakeService(store, dispatcher, logger, cfg.Contact)
	scorecardService := service.NewScorecardService(store, dispatcher, logger)
	adminService := service.NewAdminService(store, exporter, logger)
	diagnosticsService := service.NewDiagnosticsService(store, cfg.PocketBase, logger)

	internalGate, err := auth.NewPasswordGate("internal", "internal_dash", cfg.Admin.InternalPassword, cfg.Admin.SessionTTL())
	if err != nil {
		logger.Fatal("failed to init internal gate", zap.Error(err))
	}
	queriesGate, err := auth.NewPasswordGate("queries", "queries_auth", cfg.Admin.QueriesPassword, cfg.Admin.SessionTTL())
	if err != nil {
		logger.Fatal("failed to init queries gate", zap.Error(err))
	}

	metrics := observability.NewMetrics()
	secureCookies := cfg.App.Env == "production"

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:          handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, store),
		Contact:         handlers.NewContactHandler(intakeService),
		Scorecard:       handlers.NewScorecardHandler(scorecardService),
		Checkout:        handlers.NewCheckoutHandler(cfg.Checkout.PayPalClientID),
		Internal:        handlers.NewInternalHandler(adminService, metrics, store.BaseURL()),
		Queries:         handlers.NewQueriesHandler(adminService, diagnosticsService),
		InternalSession: handlers.NewSessionHandler(internalGate, secureCookies),
		QueriesSession:  handlers.NewSessionHandler(queriesGate, secureCookies),
		InternalGate:    internalGate,
		QueriesGate:     queriesGate,
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
