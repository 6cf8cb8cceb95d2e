package commands

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"
)

var ErrArriveAtPickupCommandIsNotConstructed = errors.New(
	"ArriveAtPickupCommand must be created via NewArriveAtPickupCommand constructor",
)

// ArriveAtPickupCommand represents the transporter reporting arrival at the
// recycler's storage point.
type ArriveAtPickupCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewArriveAtPickupCommand creates a command to record arrival at the pickup point.
func NewArriveAtPickupCommand(orderID kernel.UUID) (ArriveAtPickupCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ArriveAtPickupCommand{}, err
	}

	return ArriveAtPickupCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ArriveAtPickupCommand) Validate() error {
	return c.guard.Validate(ErrArriveAtPickupCommandIsNotConstructed)
}

// OrderID returns the order being advanced.
func (c ArriveAtPickupCommand) OrderID() kernel.UUID { return c.orderID }
