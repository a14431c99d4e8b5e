package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestParseAccessToken(t *testing.T) {
	secret := "test-secret"

	t.Run("valid admin token", func(t *testing.T) {
		tokenStr := signTestToken(t, secret, jwt.MapClaims{
			"sub":  "ops",
			"role": "admin",
			"exp":  time.Now().UTC().Add(time.Hour).Unix(),
		})

		claims, err := parseAccessToken(tokenStr, secret)
		require.NoError(t, err)
		require.Equal(t, "ops", claims.Subject)
		require.Equal(t, "admin", claims.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		tokenStr := signTestToken(t, secret, jwt.MapClaims{
			"role": "admin",
			"exp":  time.Now().UTC().Add(-time.Hour).Unix(),
		})

		_, err := parseAccessToken(tokenStr, secret)
		require.Error(t, err)
	})

	t.Run("token without expiry is rejected", func(t *testing.T) {
		tokenStr := signTestToken(t, secret, jwt.MapClaims{
			"role": "admin",
		})

		_, err := parseAccessToken(tokenStr, secret)
		require.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tokenStr := signTestToken(t, "other-secret", jwt.MapClaims{
			"role": "admin",
			"exp":  time.Now().UTC().Add(time.Hour).Unix(),
		})

		_, err := parseAccessToken(tokenStr, secret)
		require.Error(t, err)
	})
}
