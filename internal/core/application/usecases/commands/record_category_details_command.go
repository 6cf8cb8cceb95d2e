package commands

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordCategoryDetailsCommandIsNotConstructed = errors.New(
		"RecordCategoryDetailsCommand must be created via NewRecordCategoryDetailsCommand constructor",
	)
	ErrCategoryItemsAreRequired = errors.New("at least one category item is required")
	ErrPricePerKgIsNegative     = errors.New("price per kg must not be negative")
)

// CategoryDetailItem is one line of an order's itemized breakdown as
// submitted by the caller.
type CategoryDetailItem struct {
	Key        string
	Name       string
	WeightKg   float64
	PricePerKg decimal.Decimal
}

// RecordCategoryDetailsCommand represents the itemized category breakdown
// being attached to a transport order.
type RecordCategoryDetailsCommand struct { //nolint:recvcheck //using for validation
	transportOrderID kernel.UUID
	items            []CategoryDetailItem

	guard guard.ConstructorGuard
}

// NewRecordCategoryDetailsCommand creates a command to record an order's
// category breakdown. The weight-conservation check against the order's
// declared weight happens in the handler, where the order is loaded.
func NewRecordCategoryDetailsCommand(
	transportOrderID kernel.UUID, items []CategoryDetailItem,
) (RecordCategoryDetailsCommand, error) {
	if err := transportOrderID.Validate(); err != nil {
		return RecordCategoryDetailsCommand{}, err
	}
	if len(items) == 0 {
		return RecordCategoryDetailsCommand{}, ErrCategoryItemsAreRequired
	}
	for _, item := range items {
		if item.Key == "" {
			return RecordCategoryDetailsCommand{}, ErrCategoryKeyIsRequired
		}
		if item.WeightKg <= 0 {
			return RecordCategoryDetailsCommand{}, ErrItemWeightIsInvalid
		}
		if item.PricePerKg.IsNegative() {
			return RecordCategoryDetailsCommand{}, ErrPricePerKgIsNegative
		}
	}

	return RecordCategoryDetailsCommand{
		transportOrderID: transportOrderID,
		items:            items,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordCategoryDetailsCommand) Validate() error {
	return c.guard.Validate(ErrRecordCategoryDetailsCommandIsNotConstructed)
}

// TransportOrderID returns the order the breakdown belongs to.
func (c RecordCategoryDetailsCommand) TransportOrderID() kernel.UUID { return c.transportOrderID }

// Items returns the submitted category lines.
func (c RecordCategoryDetailsCommand) Items() []CategoryDetailItem { return c.items }
