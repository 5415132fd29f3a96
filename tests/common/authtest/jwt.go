//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"volume-discount-admin/internal/pkg/config"
	"volume-discount-admin/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

const DefaultUserID = "74893212345"

type JWTHelper struct {
	cfg config.ShopifyConfig
}

func NewJWTHelper(cfg config.ShopifyConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service() *jwt.Service {
	return jwt.NewService(h.cfg.APIKey, h.cfg.APISecret, h.cfg.SessionLeeway)
}

// GenerateToken issues a session token for the configured shop.
func (h *JWTHelper) GenerateToken(t *testing.T) string {
	t.Helper()
	return h.GenerateTokenFor(t, h.cfg.ShopDomain)
}

func (h *JWTHelper) GenerateTokenFor(t *testing.T, shop string) string {
	t.Helper()
	token, err := h.service().GenerateToken(shop, DefaultUserID)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T) string {
	t.Helper()
	issuedAt := time.Now().Add(-time.Hour)
	token, err := h.service().GenerateTokenAt(h.cfg.ShopDomain, DefaultUserID, issuedAt, time.Minute)
	require.NoError(t, err)
	return token
}
