package auth

import (
	"github.com/gofiber/fiber/v2"
)

// RequireSession enforces a valid session cookie for protected routes.
// Validity is checked on every call; there is no server-side session
// table.
func (g *PasswordGate) RequireSession(c *fiber.Ctx) error {
	if err := g.Verify(c.Cookies(g.cookieName)); err != nil {
		return err
	}
	return c.Next()
}
