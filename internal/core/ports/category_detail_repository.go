package ports

import (
	"context"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transportorder"
)

// CategoryDetailRepository defines the persistence contract for the itemized
// category breakdown of a transport order.
type CategoryDetailRepository interface {
	// AddAll persists the full breakdown of one order in a single batch.
	AddAll(ctx context.Context, details []*transportorder.CategoryDetail) error

	// GetByOrder retrieves the breakdown recorded for a transport order.
	// An order without recorded details yields an empty slice, not an error.
	GetByOrder(ctx context.Context, transportOrderID kernel.UUID) ([]*transportorder.CategoryDetail, error)
}
