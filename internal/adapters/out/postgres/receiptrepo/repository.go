package receiptrepo

import (
	"context"
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/receipt"
	"recycling/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error code for unique constraint violations.
const uniqueViolationCode = "23505"

// GormReceiptRepository implements ReceiptRepository using GORM.
type GormReceiptRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReceiptRepository creates a new GORM receipt repository.
func NewGormReceiptRepository(db *gorm.DB, tracker aggregateTracker) *GormReceiptRepository {
	return &GormReceiptRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new receipt. Two workers racing on the same order both pass
// the handler's precondition read; the unique index on transport_order_id
// decides the winner and the loser gets a state conflict here.
func (r *GormReceiptRepository) Add(ctx context.Context, aggregate *receipt.Receipt) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return errs.NewStateConflictErrorWithCause("Add",
				"a receipt already exists for transport order "+aggregate.TransportOrderID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing receipt.
func (r *GormReceiptRepository) Update(ctx context.Context, aggregate *receipt.Receipt) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReceiptDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("receipt", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a receipt by ID.
func (r *GormReceiptRepository) Get(ctx context.Context, id kernel.UUID) (*receipt.Receipt, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReceiptDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("receipt", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTransportOrder retrieves the receipt issued for a transport order.
func (r *GormReceiptRepository) GetByTransportOrder(
	ctx context.Context, transportOrderID kernel.UUID,
) (*receipt.Receipt, error) {
	if err := transportOrderID.Validate(); err != nil {
		return nil, err
	}

	var dto ReceiptDTO
	err := r.db.WithContext(ctx).First(&dto, "transport_order_id = ?", transportOrderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("receipt for transport order", transportOrderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
