// Package receiptrepo persists warehouse receipts. The unique index on
// transport_order_id enforces the one-receipt-per-order rule at the store
// level; the resulting unique violation is surfaced as a state conflict.
package receiptrepo

import (
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/receipt"

	"github.com/google/uuid"
)

// ReceiptDTO represents the database structure for a warehouse receipt.
type ReceiptDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number           string    `gorm:"uniqueIndex"`
	TransportOrderID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	RecyclerID       uuid.UUID `gorm:"type:uuid;index"`
	WorkerID         uuid.UUID `gorm:"type:uuid"`
	TotalWeight      float64
	CategorySummary  string
	Notes            string
	Status           int
	CreatedAt        time.Time
}

// TableName specifies the database table name for receipts.
func (ReceiptDTO) TableName() string {
	return "warehouse_receipts"
}

// fromDomain converts a receipt aggregate to its database representation.
func fromDomain(aggregate *receipt.Receipt) ReceiptDTO {
	return ReceiptDTO{
		ID:               aggregate.ID().Bytes(),
		Number:           aggregate.Number(),
		TransportOrderID: aggregate.TransportOrderID().Bytes(),
		RecyclerID:       aggregate.RecyclerID().Bytes(),
		WorkerID:         aggregate.WorkerID().Bytes(),
		TotalWeight:      aggregate.TotalWeight().Kilograms(),
		CategorySummary:  aggregate.CategorySummary(),
		Notes:            aggregate.Notes(),
		Status:           int(aggregate.Status()),
		CreatedAt:        aggregate.CreatedAt(),
	}
}

// toDomain converts a database row to a receipt aggregate.
func toDomain(dto ReceiptDTO) (*receipt.Receipt, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	transportOrderID, err := kernel.UUIDFromBytes(dto.TransportOrderID[:])
	if err != nil {
		return nil, err
	}

	recyclerID, err := kernel.UUIDFromBytes(dto.RecyclerID[:])
	if err != nil {
		return nil, err
	}

	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}

	totalWeight, err := kernel.NewWeight(dto.TotalWeight)
	if err != nil {
		return nil, err
	}

	return receipt.RestoreReceipt(
		id, dto.Number, transportOrderID, recyclerID, workerID,
		totalWeight, dto.CategorySummary, dto.Notes,
		receipt.Status(dto.Status), dto.CreatedAt)
}
