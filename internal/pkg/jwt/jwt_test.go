//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"volume-discount-admin/internal/pkg/errs"
	"volume-discount-admin/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	apiKey    = "test-api-key"
	apiSecret = "test-api-secret"
	shop      = "test-shop.myshopify.com"
)

func newService() *jwt.Service {
	return jwt.NewService(apiKey, apiSecret, time.Second)
}

func TestValidateToken(t *testing.T) {
	t.Run("valid token yields shop", func(t *testing.T) {
		svc := newService()
		token, err := svc.GenerateToken(shop, "42")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)

		got, err := claims.Shop()
		require.NoError(t, err)
		assert.Equal(t, shop, got)
		assert.Equal(t, "42", claims.Subject)
		assert.NotEmpty(t, claims.SessionID)
	})

	t.Run("expired token", func(t *testing.T) {
		svc := newService()
		token, err := svc.GenerateTokenAt(shop, "42", time.Now().Add(-time.Hour), time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewService(apiKey, "other-secret", time.Second).GenerateToken(shop, "42")
		require.NoError(t, err)

		_, err = newService().ValidateToken(token)
		require.Error(t, err)
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})

	t.Run("wrong audience", func(t *testing.T) {
		token, err := jwt.NewService("another-app", apiSecret, time.Second).GenerateToken(shop, "42")
		require.NoError(t, err)

		_, err = newService().ValidateToken(token)
		require.Error(t, err)
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})

	t.Run("issuer and destination must agree", func(t *testing.T) {
		now := time.Now()
		claims := jwt.SessionClaims{
			Dest: "https://" + shop,
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "https://evil-shop.myshopify.com/admin",
				Audience:  gojwt.ClaimStrings{apiKey},
				IssuedAt:  gojwt.NewNumericDate(now),
				ExpiresAt: gojwt.NewNumericDate(now.Add(time.Minute)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(apiSecret))
		require.NoError(t, err)

		_, err = newService().ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("destination must be a myshopify domain", func(t *testing.T) {
		token, err := newService().GenerateToken("example.com", "42")
		require.NoError(t, err)

		_, err = newService().ValidateToken(token)
		require.Error(t, err)
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := newService().ValidateToken("not-a-jwt")
		require.Error(t, err)
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})
}
