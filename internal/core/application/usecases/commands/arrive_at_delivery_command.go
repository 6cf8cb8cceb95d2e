package commands

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"
)

var ErrArriveAtDeliveryCommandIsNotConstructed = errors.New(
	"ArriveAtDeliveryCommand must be created via NewArriveAtDeliveryCommand constructor",
)

// ArriveAtDeliveryCommand represents the transporter reporting arrival at
// the base warehouse.
type ArriveAtDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewArriveAtDeliveryCommand creates a command to record arrival at the warehouse.
func NewArriveAtDeliveryCommand(orderID kernel.UUID) (ArriveAtDeliveryCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ArriveAtDeliveryCommand{}, err
	}

	return ArriveAtDeliveryCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ArriveAtDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrArriveAtDeliveryCommandIsNotConstructed)
}

// OrderID returns the order being advanced.
func (c ArriveAtDeliveryCommand) OrderID() kernel.UUID { return c.orderID }
