// Package ports defines the persistence and messaging contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transportorder"
)

// TransportOrderRepository defines the persistence contract for transport
// order aggregates.
type TransportOrderRepository interface {
	// Add persists a new transport order aggregate to storage.
	Add(ctx context.Context, aggregate *transportorder.Order) error

	// Update persists changes to an existing transport order, guarded by the
	// stage the caller loaded it in. If the stored stage no longer matches
	// expectedStage the write touches no rows and Update returns
	// errs.StateConflictError, so a concurrent transition loses cleanly
	// instead of overwriting.
	Update(ctx context.Context, aggregate *transportorder.Order, expectedStage transportorder.Stage) error

	// Get retrieves a transport order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*transportorder.Order, error)

	// UpdateItemCategories writes only the denormalized category summary of
	// an order, without touching its lifecycle columns.
	UpdateItemCategories(ctx context.Context, id kernel.UUID, summary string) error
}
