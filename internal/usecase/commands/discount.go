package commands

import (
	"context"
	"log/slog"

	"volume-discount-admin/internal/domain/discount"
	"volume-discount-admin/internal/pkg/clock"

	"github.com/google/uuid"
)

type ProvisionParams struct {
	ExtensionID discount.ExtensionID
	Title       string
	// IdempotencyKey is generated when zero.
	IdempotencyKey uuid.UUID
}

type DiscountMutator interface {
	CreateAutomaticAppDiscount(ctx context.Context, req discount.ProvisionRequest) (*discount.CreateResult, error)
}

type DiscountCommands interface {
	Provision(ctx context.Context, params ProvisionParams, mutator DiscountMutator) discount.Outcome
}

type discountCommandsImpl struct {
	clock  clock.Clock
	logger *slog.Logger
}

func NewDiscountCommands(clock clock.Clock, logger *slog.Logger) DiscountCommands {
	return &discountCommandsImpl{
		clock:  clock,
		logger: logger,
	}
}

// Provision submits one creation request and interprets the reply. It never retries.
func (d *discountCommandsImpl) Provision(ctx context.Context, params ProvisionParams, mutator DiscountMutator) discount.Outcome {
	if params.ExtensionID.IsZero() {
		return discount.Failure{Message: discount.MsgExtensionNotFound}
	}

	key := params.IdempotencyKey
	if key == uuid.Nil {
		key = uuid.New()
	}
	req := discount.NewProvisionRequest(params.ExtensionID, params.Title, d.clock.Now(), key)

	result, err := mutator.CreateAutomaticAppDiscount(ctx, req)
	if err != nil {
		d.logger.ErrorContext(ctx, "automatic discount creation failed",
			"error", err,
			"function_id", req.ExtensionID.String(),
			"idempotency_key", key.String(),
		)
		return discount.Failure{Message: err.Error()}
	}

	outcome := result.Outcome()
	switch o := outcome.(type) {
	case discount.Success:
		d.logger.InfoContext(ctx, "automatic discount created", "discount_id", o.DiscountID, "title", o.Title)
	case discount.Failure:
		d.logger.WarnContext(ctx, "automatic discount rejected", "message", o.Message, "title", req.Title)
	}
	return outcome
}
