package ports

import (
	"context"

	"recycling/internal/core/domain/model/inventory"
	"recycling/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for the inventory
// custody ledger. Custody transitions are bulk recycler-scoped updates and
// must run inside the same unit of work as the order transition that
// triggers them.
type InventoryRepository interface {
	// AddAll persists a batch of new inventory records.
	AddAll(ctx context.Context, records []*inventory.Record) error

	// MoveAllToInTransit flips every StoragePoint record of the recycler to
	// InTransit and returns the number of records moved. Zero is a valid
	// result, the recycler may simply have nothing at the storage point.
	MoveAllToInTransit(ctx context.Context, recyclerID kernel.UUID) (int64, error)

	// RetireForReceipt flips every InTransit record of the recycler to
	// Warehouse custody and returns the number of records retired.
	RetireForReceipt(ctx context.Context, recyclerID kernel.UUID) (int64, error)
}
