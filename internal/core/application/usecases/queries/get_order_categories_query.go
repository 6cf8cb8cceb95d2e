package queries

import (
	"errors"
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderCategoriesQueryIsNotConstructed = errors.New(
	"GetOrderCategoriesQuery must be created via NewGetOrderCategoriesQuery constructor",
)

// GetOrderCategoriesQuery retrieves the itemized category breakdown of a
// transport order, in insertion order. These rows are the source of truth
// for category-level reporting.
type GetOrderCategoriesQuery struct {
	transportOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderCategoriesQuery creates a breakdown query for one order.
func NewGetOrderCategoriesQuery(transportOrderID kernel.UUID) (GetOrderCategoriesQuery, error) {
	if err := transportOrderID.Validate(); err != nil {
		return GetOrderCategoriesQuery{}, err
	}

	return GetOrderCategoriesQuery{
		transportOrderID: transportOrderID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderCategoriesQueryIsNotConstructed)
}

// TransportOrderID returns the order whose breakdown is listed.
func (q GetOrderCategoriesQuery) TransportOrderID() kernel.UUID { return q.transportOrderID }

// GetOrderCategoriesQueryResponse is one line of the breakdown.
type GetOrderCategoriesQueryResponse struct {
	CategoryKey  string
	CategoryName string
	WeightKg     float64
	PricePerKg   decimal.Decimal
	Amount       decimal.Decimal
	CreatedAt    time.Time
}
