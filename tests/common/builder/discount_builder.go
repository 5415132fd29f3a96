//go:build unit || e2e

package builder

import (
	"time"

	"volume-discount-admin/internal/domain/discount"
	reqdto "volume-discount-admin/internal/handler/dto/request"
)

type CreateResultBuilder struct {
	DiscountID string
	Title      string
	StartsAt   time.Time
	UserErrors []discount.UserError
}

func NewCreateResultBuilder() *CreateResultBuilder {
	return &CreateResultBuilder{
		DiscountID: "gid://shopify/DiscountAutomaticNode/1001",
		Title:      "Volume Discount",
		StartsAt:   time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
	}
}

func (b *CreateResultBuilder) WithDiscount(id, title string) *CreateResultBuilder {
	b.DiscountID = id
	b.Title = title
	return b
}

func (b *CreateResultBuilder) WithUserError(field, message string) *CreateResultBuilder {
	b.UserErrors = append(b.UserErrors, discount.UserError{Field: []string{"automaticAppDiscount", field}, Message: message})
	return b
}

// Build methods
func (b *CreateResultBuilder) BuildCreated() *discount.CreateResult {
	startsAt := b.StartsAt
	return &discount.CreateResult{
		Discount: &discount.CreatedDiscount{
			DiscountID: b.DiscountID,
			Title:      b.Title,
			StartsAt:   &startsAt,
		},
		UserErrors: b.UserErrors,
	}
}

func (b *CreateResultBuilder) BuildRejected() *discount.CreateResult {
	return &discount.CreateResult{UserErrors: b.UserErrors}
}

type VolumeDiscountRequestBuilder struct {
	Title      string
	FunctionID string
}

func NewVolumeDiscountRequestBuilder() *VolumeDiscountRequestBuilder {
	return &VolumeDiscountRequestBuilder{
		Title:      "Buy more, save more",
		FunctionID: "gid://shopify/ShopifyFunction/01J9VOLUME",
	}
}

func (b *VolumeDiscountRequestBuilder) WithTitle(title string) *VolumeDiscountRequestBuilder {
	b.Title = title
	return b
}

func (b *VolumeDiscountRequestBuilder) WithoutFunctionID() *VolumeDiscountRequestBuilder {
	b.FunctionID = ""
	return b
}

func (b *VolumeDiscountRequestBuilder) BuildRequestDTO() reqdto.CreateVolumeDiscountRequest {
	var req reqdto.CreateVolumeDiscountRequest
	if b.Title != "" {
		title := b.Title
		req.Title = &title
	}
	if b.FunctionID != "" {
		id := b.FunctionID
		req.FunctionID = &id
	}
	return req
}
