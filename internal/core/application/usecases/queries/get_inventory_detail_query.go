package queries

import (
	"errors"
	"time"

	"recycling/internal/core/domain/model/inventory"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetInventoryDetailQueryIsNotConstructed = errors.New(
	"GetInventoryDetailQuery must be created via NewGetInventoryDetailQuery constructor",
)

// GetInventoryDetailQuery retrieves the itemized ledger rows of a recycler
// in one custody state, optionally narrowed to a single category.
type GetInventoryDetailQuery struct {
	recyclerID     kernel.UUID
	custody        inventory.CustodyType
	categoryFilter string

	guard guard.ConstructorGuard
}

// NewGetInventoryDetailQuery creates a detail query. An empty categoryFilter
// returns every category.
func NewGetInventoryDetailQuery(
	recyclerID kernel.UUID, custody inventory.CustodyType, categoryFilter string,
) (GetInventoryDetailQuery, error) {
	if err := errors.Join(recyclerID.Validate(), custody.Validate()); err != nil {
		return GetInventoryDetailQuery{}, err
	}

	return GetInventoryDetailQuery{
		recyclerID:     recyclerID,
		custody:        custody,
		categoryFilter: categoryFilter,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInventoryDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryDetailQueryIsNotConstructed)
}

// RecyclerID returns the recycler whose rows are listed.
func (q GetInventoryDetailQuery) RecyclerID() kernel.UUID { return q.recyclerID }

// Custody returns the custody state being listed.
func (q GetInventoryDetailQuery) Custody() inventory.CustodyType { return q.custody }

// CategoryFilter returns the optional category narrowing, empty for all.
func (q GetInventoryDetailQuery) CategoryFilter() string { return q.categoryFilter }

// GetInventoryDetailQueryResponse is one itemized ledger row.
type GetInventoryDetailQueryResponse struct {
	ID            kernel.UUID
	SourceOrderID kernel.UUID
	Category      string
	WeightKg      float64
	Price         decimal.Decimal
	CreatedAt     time.Time
}
