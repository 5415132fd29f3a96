package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"volume-discount-admin/internal/handler/httperr"
	"volume-discount-admin/internal/pkg/errs"
	"volume-discount-admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	sessionValidator usecase.SessionValidator
	authenticator    usecase.AdminAuthenticator
}

const (
	ctxShopKey    = "shop"
	ctxSessionKey = "session"
	ctxAdminKey   = "admin_api"

	// embedded admin pages receive the session token on the first document load
	sessionTokenQueryParam = "id_token"
)

func NewAuthMiddleware(sessionValidator usecase.SessionValidator, authenticator usecase.AdminAuthenticator) *AuthMiddleware {
	return &AuthMiddleware{
		sessionValidator: sessionValidator,
		authenticator:    authenticator,
	}
}

// RequireSession validates the session token and acquires the Admin API
// capability for the shop it was issued for.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractSessionToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrSessionTokenRequired, "Session token required", nil)
			return
		}

		session, err := m.sessionValidator.ValidateSession(token)
		if err != nil {
			slog.Warn("Session token validation failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired session token", nil)
			return
		}

		admin, err := m.authenticator.Authenticate(c.Request.Context(), session.Shop)
		if err != nil {
			slog.Warn("Admin API authentication failed", "shop", session.Shop, "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Shop is not authorized", nil)
			return
		}

		c.Set(ctxShopKey, session.Shop)
		c.Set(ctxSessionKey, session)
		c.Set(ctxAdminKey, admin)
		c.Set("jwt_claims", map[string]any{
			"shop":    session.Shop,
			"user_id": session.UserID,
		})
		c.Next()
	}
}

func extractSessionToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		if token := strings.TrimSpace(authHeader[len("Bearer "):]); token != "" {
			return token
		}
	}
	return strings.TrimSpace(c.Query(sessionTokenQueryParam))
}

// GetAdmin returns the Admin API capability set by RequireSession.
func GetAdmin(c *gin.Context) (usecase.AdminAPI, bool) {
	v, exists := c.Get(ctxAdminKey)
	if !exists {
		return nil, false
	}
	admin, ok := v.(usecase.AdminAPI)
	return admin, ok
}

func GetShop(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxShopKey)
	if !exists {
		return "", false
	}
	shop, ok := v.(string)
	return shop, ok
}

func GetSession(c *gin.Context) (*usecase.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}
	session, ok := v.(*usecase.Session)
	return session, ok
}
