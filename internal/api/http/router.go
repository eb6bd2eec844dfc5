package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shipgate/site-api/internal/api/http/handlers"
	"github.com/shipgate/site-api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Contact         *handlers.ContactHandler
	Scorecard       *handlers.ScorecardHandler
	Checkout        *handlers.CheckoutHandler
	Internal        *handlers.InternalHandler
	Queries         *handlers.QueriesHandler
	InternalSession *handlers.SessionHandler
	QueriesSession  *handlers.SessionHandler
	InternalGate    *auth.PasswordGate
	QueriesGate     *auth.PasswordGate
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/contact", cfg.Contact.Submit)
	api.Post("/scorecard", cfg.Scorecard.Submit)
	api.Get("/checkout/offerings", cfg.Checkout.Offerings)
	api.Post("/checkout/quote", cfg.Checkout.Quote)

	internal := api.Group("/internal")
	internal.Post("/auth", cfg.InternalSession.Login)
	internal.Delete("/auth", cfg.InternalSession.Logout)

	internalProtected := internal.Group("", cfg.InternalGate.RequireSession)
	internalProtected.Get("/inquiries", cfg.Internal.Inquiries)
	internalProtected.Get("/scorecard-inquiries", cfg.Internal.ScorecardInquiries)
	internalProtected.Get("/scorecard-submissions", cfg.Internal.ScorecardSubmissions)
	internalProtected.Get("/stats", cfg.Internal.Stats)
	internalProtected.Post("/export-inquiries", cfg.Internal.ExportInquiries)
	internalProtected.Get("/pb-base", cfg.Internal.StoreBase)
	internalProtected.Get("/metrics", cfg.Internal.Metrics)

	queries := api.Group("/queries")
	queries.Post("/auth", cfg.QueriesSession.Login)
	queries.Delete("/auth", cfg.QueriesSession.Logout)

	queriesProtected := queries.Group("", cfg.QueriesGate.RequireSession)
	queriesProtected.Get("/data", cfg.Queries.Data)
	queriesProtected.Get("/status", cfg.Queries.Status)
}
