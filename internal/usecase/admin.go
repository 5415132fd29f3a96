package usecase

import (
	"context"

	"volume-discount-admin/internal/usecase/commands"
	"volume-discount-admin/internal/usecase/queries"
)

// AdminAPI is the authenticated Admin API capability handed to one request.
type AdminAPI interface {
	queries.ExtensionLister
	commands.DiscountMutator
}

// AdminAuthenticator acquires the Admin API capability for a shop.
type AdminAuthenticator interface {
	Authenticate(ctx context.Context, shop string) (AdminAPI, error)
}
