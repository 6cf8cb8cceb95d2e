// Package inventoryrepo persists the inventory custody ledger. Besides the
// usual add and read operations it implements the bulk custody transitions
// of the transport workflow, which are plain guarded UPDATEs over the
// custody column.
package inventoryrepo

import (
	"time"

	"recycling/internal/core/domain/model/inventory"
	"recycling/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordDTO represents the database structure for one ledger row. The
// custody column is the sole discriminator of where the material is; a
// StoragePoint row and an InTransit row for the same source order and
// category never coexist because the transitions flip rows in place.
type RecordDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RecyclerID    uuid.UUID       `gorm:"type:uuid;index:idx_inventory_recycler_custody"`
	SourceOrderID uuid.UUID       `gorm:"type:uuid;index"`
	Category      string          `gorm:"index"`
	Custody       string          `gorm:"index:idx_inventory_recycler_custody"`
	Weight        float64
	Price         decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt     time.Time
}

// TableName specifies the database table name for ledger rows.
func (RecordDTO) TableName() string {
	return "inventory_records"
}

// fromDomain converts a ledger record to its database representation.
func fromDomain(record *inventory.Record) RecordDTO {
	return RecordDTO{
		ID:            record.ID().Bytes(),
		RecyclerID:    record.RecyclerID().Bytes(),
		SourceOrderID: record.SourceOrderID().Bytes(),
		Category:      record.Category(),
		Custody:       record.Custody().String(),
		Weight:        record.Weight().Kilograms(),
		Price:         record.Price(),
		CreatedAt:     record.CreatedAt(),
	}
}

// toDomain converts a database row to a ledger record.
func toDomain(dto RecordDTO) (*inventory.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recyclerID, err := kernel.UUIDFromBytes(dto.RecyclerID[:])
	if err != nil {
		return nil, err
	}

	sourceOrderID, err := kernel.UUIDFromBytes(dto.SourceOrderID[:])
	if err != nil {
		return nil, err
	}

	custody, err := inventory.CustodyTypeFromString(dto.Custody)
	if err != nil {
		return nil, err
	}

	weight, err := kernel.NewWeight(dto.Weight)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreRecord(
		id, recyclerID, sourceOrderID, dto.Category, custody, weight, dto.Price, dto.CreatedAt)
}
