package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/shipgate/site-api/pkg/util"
)

// PasswordGate protects one admin surface with a single static
// password. Sessions are stateless: the cookie holds a capability token
// verified against the configured secret on every request, never the
// raw password itself.
type PasswordGate struct {
	surface    string
	cookieName string
	hash       []byte
	tokens     *tokenManager
	ttl        time.Duration
}

// NewPasswordGate builds a gate for the surface. An empty secret leaves
// the gate unconfigured; logins then fail with a remediation hint.
func NewPasswordGate(surface, cookieName, secret string, ttl time.Duration) (*PasswordGate, error) {
	gate := &PasswordGate{
		surface:    surface,
		cookieName: cookieName,
		ttl:        ttl,
	}
	if secret == "" {
		return gate, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	gate.hash = hash
	gate.tokens = newTokenManager(surface, secret, ttl)
	return gate, nil
}

// Configured reports whether a secret is set for this surface.
func (g *PasswordGate) Configured() bool {
	return g.tokens != nil
}

// CookieName returns the session cookie name for this surface.
func (g *PasswordGate) CookieName() string {
	return g.cookieName
}

// TTL returns the session lifetime.
func (g *PasswordGate) TTL() time.Duration {
	return g.ttl
}

// Login checks the submitted password and issues a session token.
func (g *PasswordGate) Login(password string) (string, time.Time, error) {
	if !g.Configured() {
		return "", time.Time{}, apperrors.NewDownstreamUnavailable("Not configured.", nil)
	}
	if err := bcrypt.CompareHashAndPassword(g.hash, []byte(password)); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("Invalid password.")
	}
	return g.tokens.generate(g.surface)
}

// Verify validates a session token presented by a cookie.
func (g *PasswordGate) Verify(token string) error {
	if !g.Configured() {
		return apperrors.NewUnauthorized("Unauthorized")
	}
	if token == "" {
		return apperrors.NewUnauthorized("Unauthorized")
	}
	if err := g.tokens.verify(token, g.surface); err != nil {
		return apperrors.NewUnauthorized("Unauthorized")
	}
	return nil
}
