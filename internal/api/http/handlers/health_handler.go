package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/shipgate/site-api/internal/pocketbase"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	store       *pocketbase.Client
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, store *pocketbase.Client) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, store: store}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness by checking the external store.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := h.store.Health(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "degraded",
			"dependencies": fiber.Map{
				"pocketbase": err.Error(),
			},
		})
	}

	return c.JSON(fiber.Map{
		"status": "ready",
		"dependencies": fiber.Map{
			"pocketbase": "ok",
		},
	})
}
