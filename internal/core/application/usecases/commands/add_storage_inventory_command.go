package commands

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAddStorageInventoryCommandIsNotConstructed = errors.New(
		"AddStorageInventoryCommand must be created via NewAddStorageInventoryCommand constructor",
	)
	ErrCategoryKeyIsRequired = errors.New("category key is required")
	ErrItemWeightIsInvalid   = errors.New("item weight must be greater than 0")
)

// CategoryWeightItem is one category line of a completed appointment:
// the material category and the weight collected.
type CategoryWeightItem struct {
	Category string
	WeightKg float64
}

// AddStorageInventoryCommand represents the record of a completed pickup
// appointment entering the inventory ledger: the appointment's category
// weights and total price, to be placed in StoragePoint custody.
type AddStorageInventoryCommand struct { //nolint:recvcheck //using for validation
	appointmentID kernel.UUID
	recyclerID    kernel.UUID
	items         []CategoryWeightItem
	totalPrice    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewAddStorageInventoryCommand creates a command to add a completed
// appointment's material to the ledger. An appointment without category data
// cannot produce ledger rows, so an empty item list is rejected here.
func NewAddStorageInventoryCommand(
	appointmentID kernel.UUID,
	recyclerID kernel.UUID,
	items []CategoryWeightItem,
	totalPrice decimal.Decimal,
) (AddStorageInventoryCommand, error) {
	if err := errors.Join(appointmentID.Validate(), recyclerID.Validate()); err != nil {
		return AddStorageInventoryCommand{}, err
	}
	if totalPrice.IsNegative() {
		return AddStorageInventoryCommand{}, ErrTotalPriceIsNegative
	}
	for _, item := range items {
		if item.Category == "" {
			return AddStorageInventoryCommand{}, ErrCategoryKeyIsRequired
		}
		if item.WeightKg <= 0 {
			return AddStorageInventoryCommand{}, ErrItemWeightIsInvalid
		}
	}

	return AddStorageInventoryCommand{
		appointmentID: appointmentID,
		recyclerID:    recyclerID,
		items:         items,
		totalPrice:    totalPrice,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddStorageInventoryCommand) Validate() error {
	return c.guard.Validate(ErrAddStorageInventoryCommandIsNotConstructed)
}

// AppointmentID returns the source appointment order.
func (c AddStorageInventoryCommand) AppointmentID() kernel.UUID { return c.appointmentID }

// RecyclerID returns the recycler who owns the material.
func (c AddStorageInventoryCommand) RecyclerID() kernel.UUID { return c.recyclerID }

// Items returns the category weight breakdown.
func (c AddStorageInventoryCommand) Items() []CategoryWeightItem { return c.items }

// TotalPrice returns the appointment's monetary total.
func (c AddStorageInventoryCommand) TotalPrice() decimal.Decimal { return c.totalPrice }
