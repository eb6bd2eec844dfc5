package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/shipgate/site-api/internal/api/dto"
	"github.com/shipgate/site-api/internal/catalog"
	apperrors "github.com/shipgate/site-api/pkg/util"
)

// CheckoutHandler prices carts server-side for the hosted checkout.
type CheckoutHandler struct {
	paypalClientID string
}

// NewCheckoutHandler constructs handler.
func NewCheckoutHandler(paypalClientID string) *CheckoutHandler {
	return &CheckoutHandler{paypalClientID: paypalClientID}
}

// Offerings handles GET /api/checkout/offerings.
func (h *CheckoutHandler) Offerings(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"items": catalog.Offerings()})
}

// Quote handles POST /api/checkout/quote.
func (h *CheckoutHandler) Quote(c *fiber.Ctx) error {
	var req dto.QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	var cart catalog.Cart
	for _, id := range req.Items {
		offering, ok := catalog.OfferingByID(id)
		if !ok {
			return apperrors.NewValidationError("Unknown offering.", map[string]any{"id": id})
		}
		cart.Add(offering)
	}

	return c.JSON(dto.QuoteResponse{
		OK:             true,
		Items:          cart.Items(),
		Total:          cart.Total(),
		PayPalClientID: h.paypalClientID,
	})
}
