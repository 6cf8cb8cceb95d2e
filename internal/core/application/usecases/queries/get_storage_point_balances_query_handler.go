package queries

import (
	"context"

	"recycling/internal/core/domain/model/inventory"
	"recycling/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStoragePointBalancesQueryHandler aggregates storage-point balances
// across all recyclers.
type GetStoragePointBalancesQueryHandler struct {
	db *gorm.DB
}

// NewGetStoragePointBalancesQueryHandler creates a handler for the balance report.
func NewGetStoragePointBalancesQueryHandler(db *gorm.DB) GetStoragePointBalancesQueryHandler {
	return GetStoragePointBalancesQueryHandler{db: db}
}

// Handle executes the balance query, ordered by recycler, then category.
func (h GetStoragePointBalancesQueryHandler) Handle(
	ctx context.Context,
	query GetStoragePointBalancesQuery,
) ([]GetStoragePointBalancesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	balances := make([]GetStoragePointBalancesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			recycler_id,
			category,
			SUM(weight) AS total_weight,
			SUM(price)  AS total_price
		FROM inventory_records
		WHERE custody = ?
		GROUP BY recycler_id, category
		ORDER BY recycler_id, category
	`, inventory.CustodyStoragePoint.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var balance GetStoragePointBalancesQueryResponse
		var recyclerID uuid.UUID

		err = rows.Scan(&recyclerID, &balance.Category, &balance.TotalWeightKg, &balance.TotalPrice)
		if err != nil {
			return nil, err
		}

		if balance.RecyclerID, err = kernel.UUIDFromBytes(recyclerID[:]); err != nil {
			return nil, err
		}
		balances = append(balances, balance)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return balances, nil
}
