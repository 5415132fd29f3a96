package queries

import (
	"context"
	"log/slog"

	"volume-discount-admin/internal/domain/discount"
)

type ResolutionSource string

const (
	SourceNone       ResolutionSource = "none"
	SourceConfigured ResolutionSource = "configured"
	SourceDiscovered ResolutionSource = "discovered"
)

// Resolution is identifier-or-absent. LookupErr is set when the listing failed
// and the result degraded to absent.
type Resolution struct {
	ID        discount.ExtensionID
	Source    ResolutionSource
	LookupErr error
}

func (r Resolution) Found() bool {
	return !r.ID.IsZero()
}

type ExtensionLister interface {
	ListDiscountExtensions(ctx context.Context, first int) ([]discount.ExtensionDescriptor, error)
}

type ExtensionQueries interface {
	Resolve(ctx context.Context, configured discount.ExtensionID, lister ExtensionLister) Resolution
}

type extensionQueriesImpl struct {
	logger *slog.Logger
}

func NewExtensionQueries(logger *slog.Logger) ExtensionQueries {
	return &extensionQueriesImpl{logger: logger}
}

func (q *extensionQueriesImpl) Resolve(ctx context.Context, configured discount.ExtensionID, lister ExtensionLister) Resolution {
	if !configured.IsZero() {
		return Resolution{ID: configured, Source: SourceConfigured}
	}
	if lister == nil {
		return Resolution{Source: SourceNone}
	}

	descriptors, err := lister.ListDiscountExtensions(ctx, discount.ExtensionListPageSize)
	if err != nil {
		q.logger.WarnContext(ctx, "discount function lookup failed", "error", err)
		return Resolution{Source: SourceNone, LookupErr: err}
	}

	id, ok := discount.SelectVolumeExtension(descriptors)
	if !ok {
		q.logger.InfoContext(ctx, "no volume discount function deployed", "inspected", len(descriptors))
		return Resolution{Source: SourceNone}
	}

	return Resolution{ID: id, Source: SourceDiscovered}
}
