package queries

import (
	"context"

	"recycling/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInventoryDetailQueryHandler lists itemized ledger rows straight from
// the database.
type GetInventoryDetailQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryDetailQueryHandler creates a handler for detail queries.
func NewGetInventoryDetailQueryHandler(db *gorm.DB) GetInventoryDetailQueryHandler {
	return GetInventoryDetailQueryHandler{db: db}
}

// Handle executes the detail query. Rows are ordered by category, then by
// creation time.
func (h GetInventoryDetailQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryDetailQuery,
) ([]GetInventoryDetailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			source_order_id,
			category,
			weight,
			price,
			created_at
		FROM inventory_records
		WHERE recycler_id = ? AND custody = ?
	`
	args := []any{query.RecyclerID().String(), query.Custody().String()}
	if query.CategoryFilter() != "" {
		sql += " AND category = ?"
		args = append(args, query.CategoryFilter())
	}
	sql += " ORDER BY category, created_at"

	details := make([]GetInventoryDetailQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var detail GetInventoryDetailQueryResponse
		var id, sourceOrderID uuid.UUID

		err = rows.Scan(
			&id,
			&sourceOrderID,
			&detail.Category,
			&detail.WeightKg,
			&detail.Price,
			&detail.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if detail.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if detail.SourceOrderID, err = kernel.UUIDFromBytes(sourceOrderID[:]); err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}
