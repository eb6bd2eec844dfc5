package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/shipgate/site-api/internal/api/dto"
	"github.com/shipgate/site-api/internal/service"
)

// ContactHandler exposes the public contact intake endpoint.
type ContactHandler struct {
	intake *service.IntakeService
}

// NewContactHandler constructs handler.
func NewContactHandler(intake *service.IntakeService) *ContactHandler {
	return &ContactHandler{intake: intake}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	_, err := h.intake.SubmitInquiry(c.UserContext(), service.IntakeInput{
		Name:        req.Name,
		Email:       req.Email,
		Message:     req.Message,
		Website:     req.Website,
		Service:     req.Service,
		PageURL:     req.PageURL,
		UTMSource:   req.UTMSource,
		UTMMedium:   req.UTMMedium,
		UTMCampaign: req.UTMCampaign,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"ok": true})
}
