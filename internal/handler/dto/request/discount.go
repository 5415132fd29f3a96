package request

import (
	"volume-discount-admin/internal/domain/discount"
	"volume-discount-admin/internal/pkg/patch"
)

// CreateVolumeDiscountRequest is the admin page form. Both fields may be omitted.
type CreateVolumeDiscountRequest struct {
	Title      *string `json:"title,omitempty" binding:"omitempty,max=255"`
	FunctionID *string `json:"functionId,omitempty" binding:"omitempty,max=255"`
}

func (r CreateVolumeDiscountRequest) GetTitle() string {
	return patch.Coalesce(r.Title, "")
}

// GetFunctionID returns the identifier the page cached from its last load.
func (r CreateVolumeDiscountRequest) GetFunctionID() discount.ExtensionID {
	return discount.ExtensionID(patch.TrimmedString(r.FunctionID))
}
