package categoryrepo

import (
	"context"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transportorder"

	"gorm.io/gorm"
)

// GormCategoryDetailRepository implements CategoryDetailRepository using GORM.
type GormCategoryDetailRepository struct {
	db *gorm.DB
}

// NewGormCategoryDetailRepository creates a new GORM breakdown repository.
func NewGormCategoryDetailRepository(db *gorm.DB) *GormCategoryDetailRepository {
	return &GormCategoryDetailRepository{db: db}
}

// AddAll persists the full breakdown of one order in a single insert.
func (r *GormCategoryDetailRepository) AddAll(
	ctx context.Context, details []*transportorder.CategoryDetail,
) error {
	dtos := make([]CategoryDetailDTO, 0, len(details))
	for _, detail := range details {
		if err := detail.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(detail))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetByOrder retrieves the breakdown of one order in insertion order.
func (r *GormCategoryDetailRepository) GetByOrder(
	ctx context.Context, transportOrderID kernel.UUID,
) ([]*transportorder.CategoryDetail, error) {
	if err := transportOrderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CategoryDetailDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "transport_order_id = ?", transportOrderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	details := make([]*transportorder.CategoryDetail, 0, len(dtos))
	for _, dto := range dtos {
		detail, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	return details, nil
}
