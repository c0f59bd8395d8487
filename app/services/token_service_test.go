package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSigningKey = "unit-test-secret-key-with-32-chars!!"

func newTokenService(t *testing.T, ttl time.Duration) TokenService {
	t.Helper()
	svc, err := NewTokenService(ttl, "leasing-api", "leasing-admin", false, "", "", testSigningKey)
	require.NoError(t, err)
	return svc
}

func TestTokenService(t *testing.T) {
	t.Run("GenerateAndValidate", func(t *testing.T) {
		svc := newTokenService(t, time.Hour)

		token, expiresAt, err := svc.GenerateAdminToken(42, "admin")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

		claims, err := svc.ValidateAdminToken(token)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.AdminID)
		assert.Equal(t, "admin", claims.Username)
		assert.NotEmpty(t, claims.TokenID)
		assert.True(t, claims.ExpiresAt.After(claims.IssuedAt))
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		svc := newTokenService(t, -time.Minute)

		token, _, err := svc.GenerateAdminToken(42, "admin")
		require.NoError(t, err)

		_, err = svc.ValidateAdminToken(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("TamperedToken", func(t *testing.T) {
		svc := newTokenService(t, time.Hour)

		token, _, err := svc.GenerateAdminToken(42, "admin")
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]
		if tampered == token {
			tampered = parts[0] + "." + parts[1] + "." + "BBBB" + parts[2][4:]
		}

		_, err = svc.ValidateAdminToken(tampered)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("WrongKey", func(t *testing.T) {
		signer := newTokenService(t, time.Hour)
		verifier, err := NewTokenService(time.Hour, "leasing-api", "leasing-admin", false, "", "", "another-secret-key-with-32-chars!!!!")
		require.NoError(t, err)

		token, _, genErr := signer.GenerateAdminToken(42, "admin")
		require.NoError(t, genErr)

		_, err = verifier.ValidateAdminToken(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		svc := newTokenService(t, time.Hour)

		_, err := svc.ValidateAdminToken("not-a-jwt")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("MissingSecretFailsConstruction", func(t *testing.T) {
		_, err := NewTokenService(time.Hour, "leasing-api", "leasing-admin", false, "", "", "")
		assert.Error(t, err)
	})
}
