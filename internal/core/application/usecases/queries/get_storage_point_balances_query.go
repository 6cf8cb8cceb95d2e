package queries

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetStoragePointBalancesQueryIsNotConstructed = errors.New(
	"GetStoragePointBalancesQuery must be created via NewGetStoragePointBalancesQuery constructor",
)

// GetStoragePointBalancesQuery retrieves the StoragePoint balances of every
// recycler, aggregated per recycler and category. Used by the periodic
// balance report.
type GetStoragePointBalancesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStoragePointBalancesQuery creates a parameterless balance query.
func NewGetStoragePointBalancesQuery() GetStoragePointBalancesQuery {
	return GetStoragePointBalancesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStoragePointBalancesQuery) Validate() error {
	return q.guard.Validate(ErrGetStoragePointBalancesQueryIsNotConstructed)
}

// GetStoragePointBalancesQueryResponse is one recycler's balance in one
// category.
type GetStoragePointBalancesQueryResponse struct {
	RecyclerID    kernel.UUID
	Category      string
	TotalWeightKg float64
	TotalPrice    decimal.Decimal
}
