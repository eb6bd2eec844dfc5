package auth

import (
	"crypto/sha256"
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// tokenManager issues and validates the HMAC capability tokens carried
// by admin session cookies. The signing key is derived from the gate's
// configured secret, so rotating the secret invalidates every
// outstanding cookie at once.
type tokenManager struct {
	key []byte
	ttl time.Duration
}

func newTokenManager(surface, secret string, ttl time.Duration) *tokenManager {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	key := sha256.Sum256([]byte(surface + ":" + secret))
	return &tokenManager{key: key[:], ttl: ttl}
}

// sessionClaims describes the JWT payload.
type sessionClaims struct {
	Surface string `json:"surface"`
	jwt.RegisteredClaims
}

func (tm *tokenManager) generate(surface string) (string, time.Time, error) {
	expiresAt := time.Now().Add(tm.ttl)
	claims := &sessionClaims{
		Surface: surface,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   surface,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.key)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

func (tm *tokenManager) verify(tokenStr, surface string) error {
	parsed, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.key, nil
	})
	if err != nil {
		return err
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return errors.New("invalid token claims")
	}
	if claims.Surface != surface {
		return errors.New("token issued for a different surface")
	}
	return nil
}
