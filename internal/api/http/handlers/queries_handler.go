package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shipgate/site-api/internal/service"
)

// QueriesHandler backs the separate /api/queries surface with its own
// password gate.
type QueriesHandler struct {
	admin       *service.AdminService
	diagnostics *service.DiagnosticsService
}

// NewQueriesHandler constructs handler.
func NewQueriesHandler(admin *service.AdminService, diagnostics *service.DiagnosticsService) *QueriesHandler {
	return &QueriesHandler{admin: admin, diagnostics: diagnostics}
}

// Data handles GET /api/queries/data with free-text search over email,
// name and company.
func (h *QueriesHandler) Data(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("perPage", 50)

	items, total, err := h.admin.SearchScorecardInquiries(c.UserContext(), page, perPage, c.Query("search"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"items": items, "total": total, "page": page, "perPage": perPage})
}

// Status handles GET /api/queries/status, the operator diagnostics view.
func (h *QueriesHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.diagnostics.Run(c.UserContext()))
}
