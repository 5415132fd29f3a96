package shopify

import (
	"context"

	"volume-discount-admin/internal/domain/discount"
)

const listFunctionsQuery = `query ListShopifyFunctions($first: Int!) {
  shopifyFunctions(first: $first) {
    nodes {
      id
      title
      apiType
      app {
        title
      }
    }
  }
}`

type functionNode struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	APIType string `json:"apiType"`
	App     *struct {
		Title string `json:"title"`
	} `json:"app"`
}

type listFunctionsData struct {
	ShopifyFunctions struct {
		Nodes []functionNode `json:"nodes"`
	} `json:"shopifyFunctions"`
}

func (n functionNode) toDomain() discount.ExtensionDescriptor {
	d := discount.ExtensionDescriptor{
		ID:      discount.ExtensionID(n.ID),
		Title:   n.Title,
		APIType: n.APIType,
	}
	if n.App != nil {
		d.AppTitle = n.App.Title
	}
	return d
}

// ListDiscountExtensions returns the first page of deployed functions, in API order.
func (c *AdminClient) ListDiscountExtensions(ctx context.Context, first int) ([]discount.ExtensionDescriptor, error) {
	data, err := execute[listFunctionsData](ctx, c, "shopifyFunctions", listFunctionsQuery, map[string]any{
		"first": first,
	})
	if err != nil {
		return nil, err
	}

	descriptors := make([]discount.ExtensionDescriptor, 0, len(data.ShopifyFunctions.Nodes))
	for _, n := range data.ShopifyFunctions.Nodes {
		descriptors = append(descriptors, n.toDomain())
	}
	return descriptors, nil
}
