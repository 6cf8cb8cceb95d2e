package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// TransportOrderRepository returns a repository bound to the current
	// transaction started by Begin().
	TransportOrderRepository() TransportOrderRepository

	// InventoryRepository returns a repository bound to the current transaction.
	InventoryRepository() InventoryRepository

	// ReceiptRepository returns a repository bound to the current transaction.
	ReceiptRepository() ReceiptRepository

	// CategoryDetailRepository returns a repository bound to the current transaction.
	CategoryDetailRepository() CategoryDetailRepository

	// NumberSequence returns a document number allocator bound to the
	// current transaction, so an allocated number rolls back together with
	// the document it was issued for.
	NumberSequence() NumberSequence
}
