package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shipgate/site-api/internal/observability"
	"github.com/shipgate/site-api/internal/service"
)

// InternalHandler backs the /api/internal read-only dashboard.
type InternalHandler struct {
	admin     *service.AdminService
	metrics   *observability.Metrics
	storeBase string
}

// NewInternalHandler constructs handler.
func NewInternalHandler(admin *service.AdminService, metrics *observability.Metrics, storeBase string) *InternalHandler {
	return &InternalHandler{admin: admin, metrics: metrics, storeBase: storeBase}
}

// Inquiries handles GET /api/internal/inquiries. With ?id= it returns a
// single record, otherwise a filtered page.
func (h *InternalHandler) Inquiries(c *fiber.Ctx) error {
	if id := c.Query("id"); id != "" {
		record, err := h.admin.GetInquiry(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(record)
	}

	items, total, err := h.admin.ListInquiries(c.UserContext(),
		c.QueryInt("page", 1), c.QueryInt("perPage", 20), c.Query("email"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"items": items, "total": total})
}

// ScorecardInquiries handles GET /api/internal/scorecard-inquiries.
func (h *InternalHandler) ScorecardInquiries(c *fiber.Ctx) error {
	items, total, err := h.admin.ListScorecardInquiries(c.UserContext(),
		c.QueryInt("page", 1), c.QueryInt("perPage", 50), c.Query("email"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"items": items, "total": total})
}

// ScorecardSubmissions handles GET /api/internal/scorecard-submissions.
func (h *InternalHandler) ScorecardSubmissions(c *fiber.Ctx) error {
	if id := c.Query("id"); id != "" {
		record, err := h.admin.GetScorecardSubmission(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(record)
	}

	items, total, err := h.admin.ListScorecardSubmissions(c.UserContext(),
		c.QueryInt("page", 1), c.QueryInt("perPage", 20), c.Query("email"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"items": items, "total": total})
}

// Stats handles GET /api/internal/stats.
func (h *InternalHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.admin.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// ExportInquiries handles POST /api/internal/export-inquiries.
func (h *InternalHandler) ExportInquiries(c *fiber.Ctx) error {
	total, path, err := h.admin.ExportScorecardInquiries(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ok": true, "total": total, "path": path})
}

// StoreBase handles GET /api/internal/pb-base, exposing the external
// store address to the dashboard UI.
func (h *InternalHandler) StoreBase(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"url": h.storeBase})
}

// Metrics handles GET /api/internal/metrics.
func (h *InternalHandler) Metrics(c *fiber.Ctx) error {
	requests, errors := h.metrics.Snapshot()
	return c.JSON(fiber.Map{"requests": requests, "errors": errors})
}
