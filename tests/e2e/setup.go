//go:build e2e

package e2e

import (
	"log/slog"
	"testing"

	"volume-discount-admin/cmd/bootstrap"
	"volume-discount-admin/cmd/bootstrap/components"
	"volume-discount-admin/internal/pkg/config"
	"volume-discount-admin/tests/common/authtest"
	"volume-discount-admin/tests/common/shopifytest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

// ------------------------------------------------------------
// 各テストスイート用にセットアップ
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*gin.Engine, config.Config, *shopifytest.Server) {
	gin.SetMode(gin.TestMode)

	shopify := shopifytest.NewServer(t, config.NewTestConfig().Shopify.AdminAccessToken)
	cfg := createTestConfig(shopify)

	router := buildE2EApp(t, cfg)
	require.NotNil(t, router, "Routerのセットアップに失敗")

	slog.Info("E2E環境の準備が完了しました", "admin_api", shopify.URL)

	return router, cfg, shopify
}

// ------------------------------------------------------------
// E2Eテスト用アプリケーション構築関数
// fxtest stops the app when the test ends
// ------------------------------------------------------------
func buildE2EApp(t *testing.T, cfg config.Config) *gin.Engine {
	var router *gin.Engine

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }),
	)

	app := fxtest.New(t,
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.ShopifyModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		// ログを無効にして起動
		fx.NopLogger,
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	return router
}

func createTestConfig(shopify *shopifytest.Server) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Shopify.AdminAPIBaseURL = shopify.URL
	// resolved through the Admin API on every request
	testConfig.Discount.FunctionID = ""
	return testConfig
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	Config  config.Config
	Shopify *shopifytest.Server
	Tokens  *authtest.JWTHelper
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	router, cfg, shopify := setupE2EEnvironment(t)
	s.Router = router
	s.Config = cfg
	s.Shopify = shopify
	s.Tokens = authtest.NewJWTHelper(cfg.Shopify)
	require.NotEmpty(t, s.Config, "Configの取得に失敗")
	require.NotNil(t, s.Router, "Routerのセットアップに失敗")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	// Admin APIのフェイクを初期状態に戻す
	s.Shopify.Reset()
}
