// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases and must only
// ever read; custody transitions belong to the command side.
package queries

import (
	"errors"

	"recycling/internal/core/domain/model/inventory"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetInventorySummaryQueryIsNotConstructed = errors.New(
	"GetInventorySummaryQuery must be created via NewGetInventorySummaryQuery constructor",
)

// GetInventorySummaryQuery retrieves a recycler's ledger balances in one
// custody state, aggregated per category. Used by dashboards.
type GetInventorySummaryQuery struct {
	recyclerID kernel.UUID
	custody    inventory.CustodyType

	guard guard.ConstructorGuard
}

// NewGetInventorySummaryQuery creates a summary query for one recycler and
// custody state.
func NewGetInventorySummaryQuery(
	recyclerID kernel.UUID, custody inventory.CustodyType,
) (GetInventorySummaryQuery, error) {
	if err := errors.Join(recyclerID.Validate(), custody.Validate()); err != nil {
		return GetInventorySummaryQuery{}, err
	}

	return GetInventorySummaryQuery{
		recyclerID: recyclerID,
		custody:    custody,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInventorySummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetInventorySummaryQueryIsNotConstructed)
}

// RecyclerID returns the recycler whose balances are summarized.
func (q GetInventorySummaryQuery) RecyclerID() kernel.UUID { return q.recyclerID }

// Custody returns the custody state being summarized.
func (q GetInventorySummaryQuery) Custody() inventory.CustodyType { return q.custody }

// GetInventorySummaryQueryResponse is one aggregated category balance.
type GetInventorySummaryQueryResponse struct {
	Category      string
	TotalWeightKg float64
	TotalPrice    decimal.Decimal
}
