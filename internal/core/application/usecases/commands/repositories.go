// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"recycling/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest unit of work that covers its writes.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TransportOrderRepoFactory provides access to the transport order repository within a transaction.
	TransportOrderRepoFactory interface {
		TransportOrderRepository() ports.TransportOrderRepository
	}

	// InventoryRepoFactory provides access to the inventory ledger within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// ReceiptRepoFactory provides access to the receipt repository within a transaction.
	ReceiptRepoFactory interface {
		ReceiptRepository() ports.ReceiptRepository
	}

	// CategoryDetailRepoFactory provides access to the category breakdown repository within a transaction.
	CategoryDetailRepoFactory interface {
		CategoryDetailRepository() ports.CategoryDetailRepository
	}

	// NumberSequenceFactory provides a document number allocator bound to the transaction.
	NumberSequenceFactory interface {
		NumberSequence() ports.NumberSequence
	}

	// OrderUoW manages transactions for order-only lifecycle transitions.
	OrderUoW interface {
		TxManager
		TransportOrderRepoFactory
	}

	// OrderUoWFactory creates unit of work instances for order transitions.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions for order creation, which also
	// allocates the order number.
	CreateOrderUoW interface {
		TxManager
		TransportOrderRepoFactory
		NumberSequenceFactory
	}

	// CreateOrderUoWFactory creates unit of work instances for order creation.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// LoadingUoW manages the loading transition together with the inventory
	// custody move. Both writes must commit or roll back as one.
	LoadingUoW interface {
		TxManager
		TransportOrderRepoFactory
		InventoryRepoFactory
	}

	// LoadingUoWFactory creates unit of work instances for the loading step.
	LoadingUoWFactory interface {
		Create() LoadingUoW
	}

	// InventoryUoW manages inventory-only operations.
	InventoryUoW interface {
		TxManager
		InventoryRepoFactory
	}

	// InventoryUoWFactory creates unit of work instances for inventory intake.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// CategoryUoW manages the itemized category breakdown of an order
	// together with the order's denormalized summary.
	CategoryUoW interface {
		TxManager
		TransportOrderRepoFactory
		CategoryDetailRepoFactory
	}

	// CategoryUoWFactory creates unit of work instances for category recording.
	CategoryUoWFactory interface {
		Create() CategoryUoW
	}

	// ReceiptUoW manages warehouse receipt creation, which spans the order,
	// the receipt, the inventory ledger, and the number sequence.
	ReceiptUoW interface {
		TxManager
		TransportOrderRepoFactory
		ReceiptRepoFactory
		InventoryRepoFactory
		NumberSequenceFactory
	}

	// ReceiptUoWFactory creates unit of work instances for receipt creation.
	ReceiptUoWFactory interface {
		Create() ReceiptUoW
	}
)
