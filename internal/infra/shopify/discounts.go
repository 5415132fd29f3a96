package shopify

import (
	"context"
	"time"

	"volume-discount-admin/internal/domain/discount"
)

const createAutomaticAppDiscountMutation = `mutation CreateAutomaticAppDiscount($automaticAppDiscount: DiscountAutomaticAppInput!) {
  discountAutomaticAppCreate(automaticAppDiscount: $automaticAppDiscount) {
    automaticAppDiscount {
      discountId
      title
      startsAt
    }
    userErrors {
      field
      message
    }
  }
}`

type automaticAppDiscountInput struct {
	Title           string   `json:"title"`
	FunctionID      string   `json:"functionId"`
	StartsAt        string   `json:"startsAt"`
	DiscountClasses []string `json:"discountClasses"`
}

type userErrorNode struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

type createAutomaticAppDiscountData struct {
	DiscountAutomaticAppCreate *struct {
		AutomaticAppDiscount *struct {
			DiscountID string     `json:"discountId"`
			Title      string     `json:"title"`
			StartsAt   *time.Time `json:"startsAt"`
		} `json:"automaticAppDiscount"`
		UserErrors []userErrorNode `json:"userErrors"`
	} `json:"discountAutomaticAppCreate"`
}

func newAutomaticAppDiscountInput(req discount.ProvisionRequest) automaticAppDiscountInput {
	classes := make([]string, 0, len(req.DiscountClasses))
	for _, c := range req.DiscountClasses {
		classes = append(classes, c.String())
	}
	return automaticAppDiscountInput{
		Title:           req.Title,
		FunctionID:      req.ExtensionID.String(),
		StartsAt:        req.StartsAt.UTC().Format(time.RFC3339),
		DiscountClasses: classes,
	}
}

// CreateAutomaticAppDiscount submits the creation mutation once.
// A payload without record and without user errors maps to an empty result.
func (c *AdminClient) CreateAutomaticAppDiscount(ctx context.Context, req discount.ProvisionRequest) (*discount.CreateResult, error) {
	data, err := execute[createAutomaticAppDiscountData](ctx, c, "discountAutomaticAppCreate", createAutomaticAppDiscountMutation,
		map[string]any{"automaticAppDiscount": newAutomaticAppDiscountInput(req)},
		withIdempotencyKey(req.IdempotencyKey),
	)
	if err != nil {
		return nil, err
	}

	result := &discount.CreateResult{}
	payload := data.DiscountAutomaticAppCreate
	if payload == nil {
		return result, nil
	}

	for _, ue := range payload.UserErrors {
		result.UserErrors = append(result.UserErrors, discount.UserError{Field: ue.Field, Message: ue.Message})
	}
	if created := payload.AutomaticAppDiscount; created != nil {
		result.Discount = &discount.CreatedDiscount{
			DiscountID: created.DiscountID,
			Title:      created.Title,
			StartsAt:   created.StartsAt,
		}
	}
	return result, nil
}
