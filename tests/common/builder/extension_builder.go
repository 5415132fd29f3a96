//go:build unit || e2e

package builder

import (
	"volume-discount-admin/internal/domain/discount"
)

type ExtensionBuilder struct {
	ID       string
	Title    string
	APIType  string
	AppTitle string
}

func NewExtensionBuilder() *ExtensionBuilder {
	return &ExtensionBuilder{
		ID:       "gid://shopify/ShopifyFunction/01J9VOLUME",
		Title:    "volume-logic",
		APIType:  discount.ProductDiscountsAPIType,
		AppTitle: "Volume Discounts",
	}
}

func (b *ExtensionBuilder) WithID(id string) *ExtensionBuilder {
	b.ID = id
	return b
}

func (b *ExtensionBuilder) WithTitle(title string) *ExtensionBuilder {
	b.Title = title
	return b
}

func (b *ExtensionBuilder) WithAPIType(apiType string) *ExtensionBuilder {
	b.APIType = apiType
	return b
}

// Build methods
func (b *ExtensionBuilder) BuildDescriptor() discount.ExtensionDescriptor {
	return discount.ExtensionDescriptor{
		ID:       discount.ExtensionID(b.ID),
		Title:    b.Title,
		APIType:  b.APIType,
		AppTitle: b.AppTitle,
	}
}

// BuildNode returns the descriptor as the Admin API lists it.
func (b *ExtensionBuilder) BuildNode() map[string]any {
	return map[string]any{
		"id":      b.ID,
		"title":   b.Title,
		"apiType": b.APIType,
		"app":     map[string]any{"title": b.AppTitle},
	}
}
