package ports

import (
	"context"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/receipt"
)

// ReceiptRepository defines the persistence contract for warehouse receipts.
type ReceiptRepository interface {
	// Add persists a new receipt. At most one receipt may exist per
	// transport order; a duplicate insert returns errs.StateConflictError.
	Add(ctx context.Context, aggregate *receipt.Receipt) error

	// Update persists changes to an existing receipt.
	Update(ctx context.Context, aggregate *receipt.Receipt) error

	// Get retrieves a receipt by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*receipt.Receipt, error)

	// GetByTransportOrder retrieves the receipt issued for a transport
	// order, or errs.ObjectNotFoundError when none exists.
	GetByTransportOrder(ctx context.Context, transportOrderID kernel.UUID) (*receipt.Receipt, error)
}
