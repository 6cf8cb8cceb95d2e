// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work maintains the set of aggregates touched by one
// business transaction and coordinates writing out changes in a single
// database transaction.
//
// The custody workflow depends on this: an order-lifecycle transition and the
// inventory custody move it triggers, or a receipt insert and the inventory
// retirement it implies, must commit or roll back together. Handlers never
// talk to gorm directly; they Begin a unit of work, use the repositories it
// hands out, and Commit.
package postgres

import (
	"context"

	"recycling/internal/adapters/out/postgres/categoryrepo"
	"recycling/internal/adapters/out/postgres/inventoryrepo"
	"recycling/internal/adapters/out/postgres/receiptrepo"
	"recycling/internal/adapters/out/postgres/sequence"
	"recycling/internal/adapters/out/postgres/transportorderrepo"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Useful for implementing patterns like event sourcing or the outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a GORM database
// connection. Each business operation gets a fresh unit of work with proper
// isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided connection is shared by all created instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for business transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks aggregate
// changes made within it. Instances are not safe for concurrent use; each
// goroutine takes its own from the factory.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin again on an instance with an open transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// TransportOrderRepository returns an order repository bound to the current
// transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) TransportOrderRepository() ports.TransportOrderRepository {
	return transportorderrepo.NewGormTransportOrderRepository(uow.conn(), uow)
}

// InventoryRepository returns an inventory ledger repository bound to the
// current transaction.
func (uow *GormUnitOfWork) InventoryRepository() ports.InventoryRepository {
	return inventoryrepo.NewGormInventoryRepository(uow.conn())
}

// ReceiptRepository returns a receipt repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ReceiptRepository() ports.ReceiptRepository {
	return receiptrepo.NewGormReceiptRepository(uow.conn(), uow)
}

// CategoryDetailRepository returns a category breakdown repository bound to
// the current transaction.
func (uow *GormUnitOfWork) CategoryDetailRepository() ports.CategoryDetailRepository {
	return categoryrepo.NewGormCategoryDetailRepository(uow.conn())
}

// NumberSequence returns a document number allocator bound to the current
// transaction, so an allocated number rolls back with the document it was
// issued for.
func (uow *GormUnitOfWork) NumberSequence() ports.NumberSequence {
	return sequence.NewGormNumberSequence(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by repository implementations on add and update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
