// Package categoryrepo persists the itemized category breakdown of
// transport orders. These rows are the source of truth for category-level
// reporting; the order's item_categories column is a denormalized cache.
package categoryrepo

import (
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transportorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryDetailDTO represents the database structure for one breakdown line.
type CategoryDetailDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TransportOrderID uuid.UUID       `gorm:"type:uuid;index"`
	CategoryKey      string
	CategoryName     string
	Weight           float64
	PricePerKg       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Amount           decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt        time.Time
}

// TableName specifies the database table name for breakdown lines.
func (CategoryDetailDTO) TableName() string {
	return "transport_order_categories"
}

// fromDomain converts a breakdown line to its database representation.
func fromDomain(detail *transportorder.CategoryDetail) CategoryDetailDTO {
	return CategoryDetailDTO{
		ID:               detail.ID().Bytes(),
		TransportOrderID: detail.TransportOrderID().Bytes(),
		CategoryKey:      detail.CategoryKey(),
		CategoryName:     detail.CategoryName(),
		Weight:           detail.Weight().Kilograms(),
		PricePerKg:       detail.PricePerKg(),
		Amount:           detail.Amount(),
		CreatedAt:        detail.CreatedAt(),
	}
}

// toDomain converts a database row to a breakdown line.
func toDomain(dto CategoryDetailDTO) (*transportorder.CategoryDetail, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	transportOrderID, err := kernel.UUIDFromBytes(dto.TransportOrderID[:])
	if err != nil {
		return nil, err
	}

	weight, err := kernel.NewWeight(dto.Weight)
	if err != nil {
		return nil, err
	}

	return transportorder.RestoreCategoryDetail(
		id, transportOrderID, dto.CategoryKey, dto.CategoryName,
		weight, dto.PricePerKg, dto.Amount, dto.CreatedAt)
}
