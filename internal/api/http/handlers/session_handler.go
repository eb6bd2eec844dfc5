package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/shipgate/site-api/internal/api/dto"
	"github.com/shipgate/site-api/internal/auth"
)

// SessionHandler issues and clears the session cookie for one password
// gate. Both admin surfaces get their own instance.
type SessionHandler struct {
	gate          *auth.PasswordGate
	secureCookies bool
}

// NewSessionHandler constructs handler.
func NewSessionHandler(gate *auth.PasswordGate, secureCookies bool) *SessionHandler {
	return &SessionHandler{gate: gate, secureCookies: secureCookies}
}

// Login handles POST on the surface's auth route.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req dto.AuthRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	token, expires, err := h.gate.Login(req.Password)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.gate.CookieName(),
		Value:    token,
		Expires:  expires,
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"ok": true})
}

// Logout handles DELETE on the surface's auth route.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.gate.CookieName(),
		Value:    "",
		Expires:  time.Unix(0, 0),
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"ok": true})
}
