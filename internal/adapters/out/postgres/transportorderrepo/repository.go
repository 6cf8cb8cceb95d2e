package transportorderrepo

import (
	"context"
	"errors"
	"fmt"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transportorder"
	"recycling/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransportOrderRepository implements TransportOrderRepository using GORM.
type GormTransportOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTransportOrderRepository creates a new GORM transport order repository.
func NewGormTransportOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormTransportOrderRepository {
	return &GormTransportOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new transport order to the database.
func (r *GormTransportOrderRepository) Add(ctx context.Context, aggregate *transportorder.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the order back guarded by the stage the caller loaded it in.
// Save uses a full-row write rather than Updates so that columns going to
// NULL or zero are not silently skipped. Zero affected rows means another
// transaction advanced the order first.
func (r *GormTransportOrderRepository) Update(
	ctx context.Context, aggregate *transportorder.Order, expectedStage transportorder.Stage,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND stage = ?", dto.ID, int(expectedStage)).
		Select("*").
		Omit("created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStateConflictError("Update",
			fmt.Sprintf("order %s is no longer in stage %s", aggregate.ID(), expectedStage))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a transport order by ID.
func (r *GormTransportOrderRepository) Get(ctx context.Context, id kernel.UUID) (*transportorder.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transport order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateItemCategories writes only the denormalized category summary,
// leaving the lifecycle columns alone.
func (r *GormTransportOrderRepository) UpdateItemCategories(
	ctx context.Context, id kernel.UUID, summary string,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Update("item_categories", summary)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("transport order", id.String())
	}

	return nil
}
