package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"volume-discount-admin/internal/handler/api"
	"volume-discount-admin/internal/handler/middleware"
	"volume-discount-admin/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, discountHandler *api.VolumeDiscountHandler, authMiddleware *middleware.AuthMiddleware) {
	// the form has two optional fields, anything else is a client bug
	gin.EnableJsonDecoderDisallowUnknownFields()

	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, discountHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, discountHandler *api.VolumeDiscountHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		discounts := apiGroup.Group("/discounts")
		discounts.Use(authMiddleware.RequireSession())
		{
			addRoutes(discounts, []route{
				{Method: http.MethodGet, Path: "/volume", Handler: discountHandler.Show},
				{Method: http.MethodPost, Path: "/volume", Handler: discountHandler.Create},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
