package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/shipgate/site-api/pkg/util"
)

func mustGate(t *testing.T, surface, cookie, secret string) *PasswordGate {
	t.Helper()
	gate, err := NewPasswordGate(surface, cookie, secret, time.Hour)
	require.NoError(t, err)
	return gate
}

func TestGateLoginAndVerify(t *testing.T) {
	gate := mustGate(t, "internal", "internal_dash", "hunter2")

	token, expiresAt, err := gate.Login("hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	assert.NoError(t, gate.Verify(token))
}

func TestGateRejectsWrongPassword(t *testing.T) {
	gate := mustGate(t, "internal", "internal_dash", "hunter2")

	_, _, err := gate.Login("wrong")
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

func TestGateRejectsCrossSurfaceToken(t *testing.T) {
	// Both surfaces share nothing: a token minted for one must never
	// open the other, even with identical secrets.
	internal := mustGate(t, "internal", "internal_dash", "shared-secret")
	queries := mustGate(t, "queries", "queries_auth", "shared-secret")

	token, _, err := internal.Login("shared-secret")
	require.NoError(t, err)

	assert.NoError(t, internal.Verify(token))
	assert.Error(t, queries.Verify(token))
}

func TestGateRotatedSecretInvalidatesSessions(t *testing.T) {
	gate := mustGate(t, "internal", "internal_dash", "old-secret")
	token, _, err := gate.Login("old-secret")
	require.NoError(t, err)

	rotated := mustGate(t, "internal", "internal_dash", "new-secret")
	assert.Error(t, rotated.Verify(token))
}

func TestGateUnconfigured(t *testing.T) {
	gate := mustGate(t, "internal", "internal_dash", "")
	assert.False(t, gate.Configured())

	_, _, err := gate.Login("anything")
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "DOWNSTREAM_UNAVAILABLE", domainErr.Code)

	assert.Error(t, gate.Verify(""))
	assert.Error(t, gate.Verify("some-token"))
}

func TestGateRejectsGarbageToken(t *testing.T) {
	gate := mustGate(t, "internal", "internal_dash", "hunter2")
	assert.Error(t, gate.Verify(""))
	assert.Error(t, gate.Verify("not-a-jwt"))
}
