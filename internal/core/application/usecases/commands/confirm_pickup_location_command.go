package commands

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"
)

var ErrConfirmPickupLocationCommandIsNotConstructed = errors.New(
	"ConfirmPickupLocationCommand must be created via NewConfirmPickupLocationCommand constructor",
)

// ConfirmPickupLocationCommand represents the transporter confirming the
// pickup location, the first in-transit sub-stage.
type ConfirmPickupLocationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmPickupLocationCommand creates a command to confirm the pickup location.
func NewConfirmPickupLocationCommand(orderID kernel.UUID) (ConfirmPickupLocationCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmPickupLocationCommand{}, err
	}

	return ConfirmPickupLocationCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPickupLocationCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupLocationCommandIsNotConstructed)
}

// OrderID returns the order being advanced.
func (c ConfirmPickupLocationCommand) OrderID() kernel.UUID { return c.orderID }
