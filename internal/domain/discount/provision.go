package discount

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

const defaultTitlePrefix = "Volume Discount "

type DiscountClass string

const ClassProduct DiscountClass = "PRODUCT"

func (c DiscountClass) String() string {
	return string(c)
}

// ProvisionRequest is the payload of one automatic discount creation.
type ProvisionRequest struct {
	Title           string
	ExtensionID     ExtensionID
	StartsAt        time.Time
	DiscountClasses []DiscountClass
	IdempotencyKey  uuid.UUID
}

// DefaultTitle labels a submission that arrived without a title.
func DefaultTitle(now time.Time) string {
	return defaultTitlePrefix + strconv.FormatInt(now.UnixMilli(), 10)
}

// NewProvisionRequest builds the request for a submission made at now.
// Only product-class discounts are ever created.
func NewProvisionRequest(id ExtensionID, title string, now time.Time, key uuid.UUID) ProvisionRequest {
	if title == "" {
		title = DefaultTitle(now)
	}
	return ProvisionRequest{
		Title:           title,
		ExtensionID:     id,
		StartsAt:        now,
		DiscountClasses: []DiscountClass{ClassProduct},
		IdempotencyKey:  key,
	}
}
