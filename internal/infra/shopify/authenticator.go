package shopify

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"volume-discount-admin/internal/pkg/config"
	"volume-discount-admin/internal/pkg/errs"
	"volume-discount-admin/internal/usecase"

	"golang.org/x/time/rate"
)

// Authenticator hands out Admin API clients for the shop the app is installed on.
// All clients share one HTTP client and one request budget.
type Authenticator struct {
	cfg        config.ShopifyConfig
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

func NewAuthenticator(cfg config.Config, logger *slog.Logger) *Authenticator {
	limit := rate.Inf
	if cfg.Shopify.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.Shopify.RequestsPerSecond)
	}
	burst := cfg.Shopify.RequestBurst
	if burst <= 0 {
		burst = 1
	}

	return &Authenticator{
		cfg:        cfg.Shopify,
		httpClient: &http.Client{Timeout: cfg.Shopify.RequestTimeout},
		limiter:    rate.NewLimiter(limit, burst),
		logger:     logger,
	}
}

func (a *Authenticator) Authenticate(_ context.Context, shop string) (usecase.AdminAPI, error) {
	shop = strings.ToLower(strings.TrimSpace(shop))
	if shop == "" || shop != strings.ToLower(a.cfg.ShopDomain) || a.cfg.AdminAccessToken == "" {
		return nil, errs.Mark(errs.Newf("no admin access token for shop %q", shop), errs.ErrShopNotInstalled)
	}

	return NewAdminClient(
		a.cfg.GraphQLEndpoint(shop),
		a.cfg.AdminAccessToken,
		a.httpClient,
		a.limiter,
		a.logger.With("shop", shop),
	), nil
}
