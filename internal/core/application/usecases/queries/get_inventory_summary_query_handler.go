package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetInventorySummaryQueryHandler aggregates ledger balances straight from
// the database. Uses direct SQL for optimal read performance in the CQRS
// pattern.
type GetInventorySummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetInventorySummaryQueryHandler creates a handler for summary queries.
// Requires a GORM database connection for query execution.
func NewGetInventorySummaryQueryHandler(db *gorm.DB) GetInventorySummaryQueryHandler {
	return GetInventorySummaryQueryHandler{db: db}
}

// Handle executes the summary query. Returns one row per category with a
// non-zero balance, ordered by category.
func (h GetInventorySummaryQueryHandler) Handle(
	ctx context.Context,
	query GetInventorySummaryQuery,
) ([]GetInventorySummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summaries := make([]GetInventorySummaryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			category,
			SUM(weight)  AS total_weight,
			SUM(price)   AS total_price
		FROM inventory_records
		WHERE recycler_id = ? AND custody = ?
		GROUP BY category
		ORDER BY category
	`, query.RecyclerID().String(), query.Custody().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary GetInventorySummaryQueryResponse
		if err = rows.Scan(&summary.Category, &summary.TotalWeightKg, &summary.TotalPrice); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
