// Package shopify is the Admin GraphQL API gateway.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"volume-discount-admin/internal/infra"
	"volume-discount-admin/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	accessTokenHeader = "X-Shopify-Access-Token"
	idempotencyHeader = "Idempotency-Key"
	maxErrorBodyBytes = 4 << 10

	throttledCode = "THROTTLED"
)

type graphQLRequest struct {
	Query     string `json:"query"`
	Variables any    `json:"variables,omitempty"`
}

type graphQLError struct {
	Message    string `json:"message"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

type graphQLResponse[T any] struct {
	Data   *T             `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// AdminClient talks to the Admin GraphQL API of one shop.
type AdminClient struct {
	endpoint    string
	accessToken string
	httpClient  *http.Client
	limiter     *rate.Limiter
	logger      *slog.Logger
}

func NewAdminClient(endpoint, accessToken string, httpClient *http.Client, limiter *rate.Limiter, logger *slog.Logger) *AdminClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &AdminClient{
		endpoint:    endpoint,
		accessToken: accessToken,
		httpClient:  httpClient,
		limiter:     limiter,
		logger:      logger,
	}
}

type requestOption func(*http.Request)

func withIdempotencyKey(key uuid.UUID) requestOption {
	return func(req *http.Request) {
		if key != uuid.Nil {
			req.Header.Set(idempotencyHeader, key.String())
		}
	}
}

// execute runs one GraphQL operation and decodes data into T.
func execute[T any](ctx context.Context, c *AdminClient, operation, query string, variables any, opts ...requestOption) (*T, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, infra.WrapGatewayErr(c.logger, infra.KindThrottled, operation+": rate limit wait", err)
		}
	}

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindDecode, operation+": encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindTransport, operation+": create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(accessTokenHeader, c.accessToken)
	for _, opt := range opts {
		opt(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindTransport, operation, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// decode below
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, infra.WrapGatewayErr(c.logger, infra.KindUnauthorized, operation,
			errs.Newf("admin api rejected credentials: status %d", resp.StatusCode))
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, infra.WrapGatewayErr(c.logger, infra.KindThrottled, operation,
			errs.Newf("admin api throttled: retry after %q", resp.Header.Get("Retry-After")))
	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, infra.WrapGatewayErr(c.logger, infra.KindUpstream, operation,
			errs.Newf("admin api status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet)))
	}

	var decoded graphQLResponse[T]
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindDecode, operation+": decode response", err)
	}

	if len(decoded.Errors) > 0 {
		first := decoded.Errors[0]
		kind := infra.KindGraphQL
		if first.Extensions.Code == throttledCode {
			kind = infra.KindThrottled
		}
		return nil, infra.WrapGatewayErr(c.logger, kind, operation, errs.New(first.Message))
	}

	if decoded.Data == nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindDecode, operation,
			errs.Newf("response without data (status %d)", resp.StatusCode))
	}

	return decoded.Data, nil
}
