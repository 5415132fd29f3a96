package discount

import "time"

const (
	MsgExtensionNotFound = "Function ID not found. Please deploy the extension first."
	MsgUnknownError      = "Unknown error occurred"
)

// Outcome is the terminal result of one submission: Success or Failure.
type Outcome interface {
	isOutcome()
}

type Success struct {
	DiscountID string
	Title      string
}

type Failure struct {
	Message string
}

func (Success) isOutcome() {}
func (Failure) isOutcome() {}

// UserError is a validation failure reported by the creation mutation.
type UserError struct {
	Field   []string
	Message string
}

type CreatedDiscount struct {
	DiscountID string
	Title      string
	StartsAt   *time.Time
}

// CreateResult is the decoded response of the creation mutation.
type CreateResult struct {
	Discount   *CreatedDiscount
	UserErrors []UserError
}

// Outcome interprets the result. Only the first user error is surfaced.
func (r *CreateResult) Outcome() Outcome {
	if r == nil {
		return Failure{Message: MsgUnknownError}
	}
	if len(r.UserErrors) > 0 {
		return Failure{Message: r.UserErrors[0].Message}
	}
	if r.Discount != nil {
		return Success{DiscountID: r.Discount.DiscountID, Title: r.Discount.Title}
	}
	return Failure{Message: MsgUnknownError}
}
