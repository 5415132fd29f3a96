//go:build e2e

package discount_test

import (
	"net/http"
	"testing"

	"volume-discount-admin/internal/domain/discount"
	"volume-discount-admin/internal/handler/dto/response"
	"volume-discount-admin/tests/common/builder"
	"volume-discount-admin/tests/common/httptest"
	"volume-discount-admin/tests/common/shopifytest"
	"volume-discount-admin/tests/common/testutil"
	"volume-discount-admin/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const volumeURL = "/api/discounts/volume"

type VolumeDiscountSuite struct {
	e2e.SharedSuite
}

func TestVolumeDiscountSuite(t *testing.T) {
	suite.Run(t, new(VolumeDiscountSuite))
}

// =============================================================================
// TestShow - admin page load
// =============================================================================

func (s *VolumeDiscountSuite) TestShow() {
	s.Run("Normal case: deployed function is discovered", func() {
		t := s.T()
		other := builder.NewExtensionBuilder().WithID("gid://shopify/ShopifyFunction/SHIP").
			WithTitle("shipping-rates").WithAPIType("delivery_customization")
		volume := builder.NewExtensionBuilder()
		s.Shopify.ListFunctionsReturns(other.BuildNode(), volume.BuildNode())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, volumeURL, nil, s.Tokens.GenerateToken(t))

		var body response.VolumeDiscountPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		s.Equal(response.StateExtensionReady, body.State)
		s.Equal(volume.ID, body.FunctionID)

		reqs := s.Shopify.Requests()
		require.Len(t, reqs, 1)
		s.EqualValues(discount.ExtensionListPageSize, reqs[0].Variables["first"])
	})

	s.Run("Normal case: no matching function shows the warning", func() {
		t := s.T()
		s.Shopify.ListFunctionsReturns(
			builder.NewExtensionBuilder().WithTitle("shipping").WithAPIType("delivery_customization").BuildNode(),
		)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, volumeURL, nil, s.Tokens.GenerateToken(t))

		var body response.VolumeDiscountPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		s.Equal(response.StateExtensionMissing, body.State)
		s.Equal(response.ToneWarning, body.Banner.Tone)
	})

	s.Run("Degraded case: listing failure shows the warning", func() {
		t := s.T()
		s.Shopify.RespondWith(shopifytest.OperationListFunctions, http.StatusBadGateway, "upstream down")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, volumeURL, nil, s.Tokens.GenerateToken(t))

		var body response.VolumeDiscountPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		s.Equal(response.StateExtensionMissing, body.State)
	})

	s.Run("Error case: missing session token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, volumeURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Session token required")
	})

	s.Run("Error case: expired session token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, volumeURL, nil, s.Tokens.CreateExpiredToken(t))
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired session token")
	})

	s.Run("Error case: token for a shop the app is not installed on", func() {
		t := s.T()
		token := s.Tokens.GenerateTokenFor(t, "other-shop.myshopify.com")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, volumeURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Shop is not authorized")
		s.Zero(s.Shopify.Count(shopifytest.OperationListFunctions))
	})
}

// =============================================================================
// TestCreate - form submission
// =============================================================================

func (s *VolumeDiscountSuite) TestCreate() {
	s.Run("Normal case: discount is created with the cached function id", func() {
		t := s.T()
		s.Shopify.CreateReturns(shopifytest.CreatedPayload("gid://shopify/DiscountAutomaticNode/77", "Buy more, save more", "2026-10-19T09:30:00Z"))
		key := uuid.New()
		reqBody := builder.NewVolumeDiscountRequestBuilder().BuildRequestDTO()

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, volumeURL, reqBody,
			map[string]string{"Idempotency-Key": key.String()}, s.Tokens.GenerateToken(t))

		var body response.VolumeDiscountSubmitResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		s.Equal(response.StateSubmissionSucceeded, body.State)
		s.Equal(response.DiscountsAdminURL, body.NavigateTo)
		require.NotNil(t, body.Discount)
		s.Equal("gid://shopify/DiscountAutomaticNode/77", body.Discount.DiscountID)

		s.Zero(s.Shopify.Count(shopifytest.OperationListFunctions))
		reqs := s.Shopify.Requests()
		require.Len(t, reqs, 1)
		s.Equal(key.String(), reqs[0].Header.Get("Idempotency-Key"))

		input := reqs[0].Variables["automaticAppDiscount"].(map[string]any)
		s.Equal(*reqBody.FunctionID, input["functionId"])
		s.Equal("Buy more, save more", input["title"])
		s.Equal([]any{"PRODUCT"}, input["discountClasses"])
	})

	s.Run("Normal case: function is discovered and title defaulted", func() {
		t := s.T()
		s.Shopify.ListFunctionsReturns(builder.NewExtensionBuilder().BuildNode())
		s.Shopify.CreateReturns(shopifytest.CreatedPayload("gid://shopify/DiscountAutomaticNode/78", "Volume Discount", "2026-10-19T09:30:00Z"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, volumeURL, nil, s.Tokens.GenerateToken(t))

		var body response.VolumeDiscountSubmitResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		s.Equal(response.StateSubmissionSucceeded, body.State)

		s.Equal(1, s.Shopify.Count(shopifytest.OperationListFunctions))
		reqs := s.Shopify.Requests()
		create := reqs[len(reqs)-1]
		s.Equal(shopifytest.OperationCreateDiscount, create.Operation)
		input := create.Variables["automaticAppDiscount"].(map[string]any)
		s.Contains(input["title"], "Volume Discount ")
		// a key is generated when the page sends none
		_, err := uuid.Parse(create.Header.Get("Idempotency-Key"))
		s.NoError(err)
	})

	s.Run("Failure case: no function deployed blocks submission", func() {
		t := s.T()
		s.Shopify.ListFunctionsReturns()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, volumeURL, nil, s.Tokens.GenerateToken(t))

		var body response.VolumeDiscountSubmitResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		s.Equal(response.StateSubmissionFailed, body.State)
		s.Equal(discount.MsgExtensionNotFound, body.Banner.Message)
		s.Zero(s.Shopify.Count(shopifytest.OperationCreateDiscount))
	})

	s.Run("Failure case: first user error is shown", func() {
		t := s.T()
		s.Shopify.CreateReturns(shopifytest.RejectedPayload("Title has already been taken", "Starts at is invalid"))
		reqBody := builder.NewVolumeDiscountRequestBuilder().BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, volumeURL, reqBody, s.Tokens.GenerateToken(t))

		var body response.VolumeDiscountSubmitResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		s.Equal(response.StateSubmissionFailed, body.State)
		s.Equal("Title has already been taken", body.Banner.Message)
	})

	s.Run("Failure case: empty payload is an unknown error", func() {
		t := s.T()
		s.Shopify.CreateReturns(map[string]any{"automaticAppDiscount": nil, "userErrors": []any{}})
		reqBody := builder.NewVolumeDiscountRequestBuilder().BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, volumeURL, reqBody, s.Tokens.GenerateToken(t))

		var body response.VolumeDiscountSubmitResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		s.Equal(discount.MsgUnknownError, body.Banner.Message)
	})

	s.Run("Failure case: Admin API error is surfaced once without retry", func() {
		t := s.T()
		s.Shopify.RespondWith(shopifytest.OperationCreateDiscount, http.StatusInternalServerError, "internal error")
		reqBody := builder.NewVolumeDiscountRequestBuilder().BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, volumeURL, reqBody, s.Tokens.GenerateToken(t))

		var body response.VolumeDiscountSubmitResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		s.Equal(response.StateSubmissionFailed, body.State)
		s.Contains(body.Banner.Message, "internal error")
		s.Equal(1, s.Shopify.Count(shopifytest.OperationCreateDiscount))
	})

	s.Run("Error case: unknown form field", func() {
		t := s.T()
		reqBody := testutil.DtoMap(t, builder.NewVolumeDiscountRequestBuilder().BuildRequestDTO(),
			testutil.Field("discountClass", "ORDER"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, volumeURL, reqBody, s.Tokens.GenerateToken(t))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
		s.Empty(s.Shopify.Requests())
	})

	s.Run("Error case: invalid idempotency key", func() {
		t := s.T()
		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, volumeURL, nil,
			map[string]string{"Idempotency-Key": "123"}, s.Tokens.GenerateToken(t))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Idempotency-Key")
		s.Empty(s.Shopify.Requests())
	})
}

// =============================================================================
// TestCORS - embedded admin origin
// =============================================================================

func (s *VolumeDiscountSuite) TestCORS() {
	s.Run("Normal case: preflight from the admin origin", func() {
		t := s.T()
		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodOptions, volumeURL, nil, map[string]string{
			"Origin":                         "https://admin.shopify.com",
			"Access-Control-Request-Method":  http.MethodPost,
			"Access-Control-Request-Headers": "Authorization,Idempotency-Key",
		}, "")

		s.Equal(http.StatusNoContent, w.Code)
		httptest.AssertHeaders(t, w, map[string]string{
			"Access-Control-Allow-Origin": "https://admin.shopify.com",
		})
		s.Empty(s.Shopify.Requests())
	})

	s.Run("Normal case: page load carries the allow origin header", func() {
		t := s.T()
		s.Shopify.ListFunctionsReturns(builder.NewExtensionBuilder().BuildNode())

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodGet, volumeURL, nil,
			map[string]string{"Origin": "https://admin.shopify.com"}, s.Tokens.GenerateToken(t))

		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
		httptest.AssertHeaders(t, w, map[string]string{
			"Access-Control-Allow-Origin": "https://admin.shopify.com",
			"Content-Type":                "application/json; charset=utf-8",
		})
	})
}
