package inventoryrepo

import (
	"context"

	"recycling/internal/core/domain/model/inventory"
	"recycling/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory ledger repository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// AddAll persists a batch of new ledger records in one insert.
func (r *GormInventoryRepository) AddAll(ctx context.Context, records []*inventory.Record) error {
	dtos := make([]RecordDTO, 0, len(records))
	for _, record := range records {
		if err := record.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(record))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// MoveAllToInTransit flips every StoragePoint row of the recycler to
// InTransit. The WHERE clause on the custody column makes the operation
// idempotent: a retry after a commit finds nothing left to move.
func (r *GormInventoryRepository) MoveAllToInTransit(ctx context.Context, recyclerID kernel.UUID) (int64, error) {
	return r.moveAll(ctx, recyclerID, inventory.CustodyStoragePoint, inventory.CustodyInTransit)
}

// RetireForReceipt flips every InTransit row of the recycler to Warehouse.
func (r *GormInventoryRepository) RetireForReceipt(ctx context.Context, recyclerID kernel.UUID) (int64, error) {
	return r.moveAll(ctx, recyclerID, inventory.CustodyInTransit, inventory.CustodyWarehouse)
}

func (r *GormInventoryRepository) moveAll(
	ctx context.Context, recyclerID kernel.UUID, from, to inventory.CustodyType,
) (int64, error) {
	if err := recyclerID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&RecordDTO{}).
		Where("recycler_id = ? AND custody = ?", recyclerID.Bytes(), from.String()).
		Update("custody", to.String())
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
