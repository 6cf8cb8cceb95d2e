package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderCategoriesQueryHandler lists an order's category breakdown
// straight from the database.
type GetOrderCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderCategoriesQueryHandler creates a handler for breakdown queries.
func NewGetOrderCategoriesQueryHandler(db *gorm.DB) GetOrderCategoriesQueryHandler {
	return GetOrderCategoriesQueryHandler{db: db}
}

// Handle executes the breakdown query, ordered by insertion.
func (h GetOrderCategoriesQueryHandler) Handle(
	ctx context.Context,
	query GetOrderCategoriesQuery,
) ([]GetOrderCategoriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	categories := make([]GetOrderCategoriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			category_key,
			category_name,
			weight,
			price_per_kg,
			amount,
			created_at
		FROM transport_order_categories
		WHERE transport_order_id = ?
		ORDER BY created_at
	`, query.TransportOrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var category GetOrderCategoriesQueryResponse
		err = rows.Scan(
			&category.CategoryKey,
			&category.CategoryName,
			&category.WeightKg,
			&category.PricePerKg,
			&category.Amount,
			&category.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
