package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between installs (port, app credentials, shop), security settings
// - default: Values common across all environments (API version, timeouts, log format)
// - optional: Values that may legitimately be missing (deployed extension ID)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Log      LogConfig
	Shopify  ShopifyConfig
	Discount DiscountConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"https://admin.shopify.com"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type ShopifyConfig struct {
	APIKey           string `envconfig:"SHOPIFY_API_KEY" required:"true"`
	APISecret        string `envconfig:"SHOPIFY_API_SECRET" required:"true"`
	ShopDomain       string `envconfig:"SHOPIFY_SHOP_DOMAIN" required:"true"`
	AdminAccessToken string `envconfig:"SHOPIFY_ADMIN_ACCESS_TOKEN" required:"true"`
	APIVersion       string `envconfig:"SHOPIFY_API_VERSION" default:"2025-07"`
	// Points the Admin API client at a local fake instead of https://{shop}.
	AdminAPIBaseURL   string        `envconfig:"SHOPIFY_ADMIN_API_BASE_URL"`
	RequestTimeout    time.Duration `envconfig:"SHOPIFY_REQUEST_TIMEOUT" default:"10s"`
	RequestsPerSecond float64       `envconfig:"SHOPIFY_REQUESTS_PER_SECOND" default:"2"`
	RequestBurst      int           `envconfig:"SHOPIFY_REQUEST_BURST" default:"4"`
	SessionLeeway     time.Duration `envconfig:"SHOPIFY_SESSION_LEEWAY" default:"5s"`
}

// DiscountConfig holds the identifier of the deployed discount function.
// Empty means "look it up through the Admin API".
type DiscountConfig struct {
	FunctionID string `envconfig:"SHOPIFY_VOLUME_LOGIC_ID"`
}

// GraphQLEndpoint returns the Admin GraphQL URL for shop.
func (c *ShopifyConfig) GraphQLEndpoint(shop string) string {
	base := strings.TrimRight(c.AdminAPIBaseURL, "/")
	if base == "" {
		base = "https://" + shop
	}
	return fmt.Sprintf("%s/admin/api/%s/graphql.json", base, c.APIVersion)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	cfg.Discount.FunctionID = strings.TrimSpace(cfg.Discount.FunctionID)
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"https://admin.shopify.com"},
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "Idempotency-Key"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Shopify: ShopifyConfig{
			APIKey:            "test-api-key",
			APISecret:         "test-api-secret",
			ShopDomain:        "test-shop.myshopify.com",
			AdminAccessToken:  "shpat_test",
			APIVersion:        "2025-07",
			RequestTimeout:    5 * time.Second,
			RequestsPerSecond: 100,
			RequestBurst:      100,
			SessionLeeway:     5 * time.Second,
		},
	}
}
