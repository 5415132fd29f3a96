//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"volume-discount-admin/internal/handler/httperr"
	"volume-discount-admin/internal/handler/middleware"
	"volume-discount-admin/internal/pkg/config"
	"volume-discount-admin/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	router.GET("/panic", func(_ *gin.Context) { panic("nil map write") })
	router.GET("/public", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("bad"), "Invalid request", nil)
	})

	t.Run("panic renders a 500 error body", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("public error is rendered as is", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/public", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
	})
}

func TestNewCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var mw gin.HandlerFunc
	require.NotPanics(t, func() { mw = middleware.NewCORSMiddleware(config.NewTestConfig().CORS) })

	router := gin.New()
	router.Use(mw)
	router.POST("/api/discounts/volume", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("preflight from the admin is allowed", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodOptions, "/api/discounts/volume", nil)
		req.Header.Set("Origin", "https://admin.shopify.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Authorization,Idempotency-Key")
		w := nethttptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		httptest.AssertHeaders(t, w, map[string]string{
			"Access-Control-Allow-Origin": "https://admin.shopify.com",
		})
	})

	t.Run("unknown origin is refused", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodPost, "/api/discounts/volume", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := nethttptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
