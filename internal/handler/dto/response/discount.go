package response

import (
	"volume-discount-admin/internal/domain/discount"
	"volume-discount-admin/internal/usecase/queries"
)

type ViewState string

const (
	StateExtensionMissing    ViewState = "extension_missing"
	StateExtensionReady      ViewState = "extension_ready"
	StateSubmissionFailed    ViewState = "submission_failed"
	StateSubmissionSucceeded ViewState = "submission_succeeded"
)

type BannerTone string

const (
	ToneWarning  BannerTone = "warning"
	ToneInfo     BannerTone = "info"
	ToneCritical BannerTone = "critical"
	ToneSuccess  BannerTone = "success"
)

// DiscountsAdminURL is where the page navigates after a successful submission.
const DiscountsAdminURL = "shopify://admin/discounts"

type BannerResponse struct {
	Tone    BannerTone `json:"tone"`
	Title   string     `json:"title"`
	Message string     `json:"message,omitempty"`
}

type CreatedDiscountResponse struct {
	DiscountID string `json:"discountId"`
	Title      string `json:"title"`
}

type VolumeDiscountPageResponse struct {
	State      ViewState      `json:"state"`
	Banner     BannerResponse `json:"banner"`
	FunctionID string         `json:"functionId,omitempty"`
}

type VolumeDiscountSubmitResponse struct {
	State      ViewState                `json:"state"`
	Banner     BannerResponse           `json:"banner"`
	Discount   *CreatedDiscountResponse `json:"discount,omitempty"`
	NavigateTo string                   `json:"navigateTo,omitempty"`
}

func FromResolution(r queries.Resolution) *VolumeDiscountPageResponse {
	if !r.Found() {
		return &VolumeDiscountPageResponse{
			State: StateExtensionMissing,
			Banner: BannerResponse{
				Tone:    ToneWarning,
				Title:   "Volume discount function not found",
				Message: "Deploy the volume discount extension, or set SHOPIFY_VOLUME_LOGIC_ID, before creating a discount.",
			},
		}
	}
	return &VolumeDiscountPageResponse{
		State: StateExtensionReady,
		Banner: BannerResponse{
			Tone:    ToneInfo,
			Title:   "Volume discount function ready",
			Message: "Function ID: " + r.ID.String(),
		},
		FunctionID: r.ID.String(),
	}
}

func FromOutcome(o discount.Outcome) *VolumeDiscountSubmitResponse {
	switch v := o.(type) {
	case discount.Success:
		return &VolumeDiscountSubmitResponse{
			State: StateSubmissionSucceeded,
			Banner: BannerResponse{
				Tone:    ToneSuccess,
				Title:   "Volume discount created",
				Message: v.Title,
			},
			Discount: &CreatedDiscountResponse{
				DiscountID: v.DiscountID,
				Title:      v.Title,
			},
			NavigateTo: DiscountsAdminURL,
		}
	case discount.Failure:
		return submissionFailed(v.Message)
	default:
		return submissionFailed(discount.MsgUnknownError)
	}
}

func submissionFailed(message string) *VolumeDiscountSubmitResponse {
	return &VolumeDiscountSubmitResponse{
		State: StateSubmissionFailed,
		Banner: BannerResponse{
			Tone:    ToneCritical,
			Title:   "Could not create volume discount",
			Message: message,
		},
	}
}
