package commands

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transportorder"
	"recycling/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateTransportOrderCommandIsNotConstructed = errors.New(
		"CreateTransportOrderCommand must be created via NewCreateTransportOrderCommand constructor",
	)
	ErrPickupAddressIsRequired      = errors.New("pickup address is required")
	ErrDestinationAddressIsRequired = errors.New("destination address is required")
	ErrEstimatedWeightIsInvalid     = errors.New("estimated weight must be greater than 0")
	ErrTotalPriceIsNegative         = errors.New("total price must not be negative")
)

// CreateTransportOrderCommand represents a recycler's request for a pickup:
// where to collect, where to deliver, who to call at each end, and the
// declared weight and price of the batch.
//
// Example:
//
//	cmd, err := NewCreateTransportOrderCommand(
//	    kernel.NewUUID(), recyclerID,
//	    "12 Harbor Rd", "Sorting Center 3",
//	    transportorder.Contacts{RecyclerName: "Wang", RecyclerPhone: "555-0101"},
//	    120.5, decimal.NewFromFloat(240.00))
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateTransportOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	recyclerID         kernel.UUID
	pickupAddress      string
	destinationAddress string
	contacts           transportorder.Contacts
	estimatedWeightKg  float64
	totalPrice         decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateTransportOrderCommand creates a command to register a new
// transport order. Validates identifiers, addresses, weight and price.
func NewCreateTransportOrderCommand(
	orderID kernel.UUID,
	recyclerID kernel.UUID,
	pickupAddress string,
	destinationAddress string,
	contacts transportorder.Contacts,
	estimatedWeightKg float64,
	totalPrice decimal.Decimal,
) (CreateTransportOrderCommand, error) {
	cmd := CreateTransportOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRecyclerID(recyclerID),
		cmd.setAddresses(pickupAddress, destinationAddress),
		cmd.setEstimatedWeightKg(estimatedWeightKg),
		cmd.setTotalPrice(totalPrice),
	); err != nil {
		return CreateTransportOrderCommand{}, err
	}

	cmd.contacts = contacts
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTransportOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransportOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateTransportOrderCommand) OrderID() kernel.UUID { return c.orderID }

// RecyclerID returns the requesting recycler.
func (c CreateTransportOrderCommand) RecyclerID() kernel.UUID { return c.recyclerID }

// PickupAddress returns the storage-point address.
func (c CreateTransportOrderCommand) PickupAddress() string { return c.pickupAddress }

// DestinationAddress returns the base-warehouse address.
func (c CreateTransportOrderCommand) DestinationAddress() string { return c.destinationAddress }

// Contacts returns the contact persons for both ends of the assignment.
func (c CreateTransportOrderCommand) Contacts() transportorder.Contacts { return c.contacts }

// EstimatedWeightKg returns the declared batch weight in kilograms.
func (c CreateTransportOrderCommand) EstimatedWeightKg() float64 { return c.estimatedWeightKg }

// TotalPrice returns the agreed monetary total.
func (c CreateTransportOrderCommand) TotalPrice() decimal.Decimal { return c.totalPrice }

func (c *CreateTransportOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateTransportOrderCommand) setRecyclerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.recyclerID = id
	return nil
}

func (c *CreateTransportOrderCommand) setAddresses(pickup, destination string) error {
	if pickup == "" {
		return ErrPickupAddressIsRequired
	}
	if destination == "" {
		return ErrDestinationAddressIsRequired
	}
	c.pickupAddress = pickup
	c.destinationAddress = destination
	return nil
}

func (c *CreateTransportOrderCommand) setEstimatedWeightKg(kg float64) error {
	if kg <= 0 {
		return ErrEstimatedWeightIsInvalid
	}
	c.estimatedWeightKg = kg
	return nil
}

func (c *CreateTransportOrderCommand) setTotalPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrTotalPriceIsNegative
	}
	c.totalPrice = price
	return nil
}
