//go:build unit

package discount_test

import (
	"regexp"
	"testing"
	"time"

	"volume-discount-admin/internal/domain/discount"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var defaultTitlePattern = regexp.MustCompile(`^Volume Discount \d+$`)

func TestNewProvisionRequest(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	id := discount.ExtensionID("gid://shopify/ShopifyFunction/1")
	key := uuid.New()

	t.Run("keeps the given title", func(t *testing.T) {
		req := discount.NewProvisionRequest(id, "Buy more, save more", now, key)

		assert.Equal(t, "Buy more, save more", req.Title)
		assert.Equal(t, id, req.ExtensionID)
		assert.Equal(t, now, req.StartsAt)
		assert.Equal(t, []discount.DiscountClass{discount.ClassProduct}, req.DiscountClasses)
		assert.Equal(t, key, req.IdempotencyKey)
	})

	t.Run("empty title is generated", func(t *testing.T) {
		req := discount.NewProvisionRequest(id, "", now, key)

		assert.Regexp(t, defaultTitlePattern, req.Title)
		assert.Equal(t, "Volume Discount 1792402200000", req.Title)
	})

	t.Run("whitespace title is kept as typed", func(t *testing.T) {
		req := discount.NewProvisionRequest(id, "   ", now, key)
		assert.Equal(t, "   ", req.Title)
	})

	t.Run("title is not trimmed", func(t *testing.T) {
		req := discount.NewProvisionRequest(id, "  Bulk deal ", now, key)
		assert.Equal(t, "  Bulk deal ", req.Title)
	})
}
